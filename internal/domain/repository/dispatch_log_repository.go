package repository

import (
	"context"

	"loocate/internal/domain/entity"
)

// DispatchLogRepository persists per-provider delivery outcomes for audit.
// Writes are best effort; a failed audit write never fails the dispatch.
type DispatchLogRepository interface {
	SaveLog(ctx context.Context, log *entity.DispatchLog) error
}
