package main

import (
	"loocate/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.UserBanModel{},
		model.UserBlockModel{},
		model.UserPositionModel{},
		model.PushTokenModel{},
		model.DispatchLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
