package main

import (
	"context"
	"log/slog"
	"os"

	"loocate/config"
	"loocate/internal/delivery"
	"loocate/internal/delivery/http"
	"loocate/internal/delivery/http/middleware"
	"loocate/internal/delivery/http/router/handler"
	"loocate/internal/domain/service"
	"loocate/internal/infra/auth"
	"loocate/internal/infra/cache"
	logs "loocate/internal/infra/log"
	"loocate/internal/infra/persistence/postgres"
	"loocate/internal/infra/presence"
	"loocate/internal/infra/pubsub"
	"loocate/internal/infra/push"
	"loocate/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPositionRepository,
			postgres.NewProfileRepository,
			postgres.NewPushTokenRepository,
			postgres.NewDispatchLogRepository,
			postgres.NewTransactionManager,
			cache.NewGeoPositionCache,
			cache.NewDedupLedger,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			presence.NewRegistry,
			newPresenceTracker,
			newPushSenders,
		),
	)
}

// newPresenceTracker exposes the registry under its domain interface
func newPresenceTracker(registry *presence.Registry) service.PresenceTracker {
	return registry
}

// newPushSenders assembles the provider fan-out set. Expo is always
// available; FCM joins when Firebase credentials are configured.
func newPushSenders(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]service.PushSender, error) {
	senders := []service.PushSender{push.NewExpoSender(cfg, logger)}

	if cfg.Firebase != nil {
		fcm, err := push.NewFCMSender(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		senders = append(senders, fcm)
	}

	return senders, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPositionService,
			impl.NewProximityService,
			impl.NewTokenService,
			impl.NewDispatchService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPositionHandler,
			handler.NewTokenHandler,
			handler.NewEventHandler,
			handler.NewPresenceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
