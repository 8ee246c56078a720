package repository

import (
	"context"

	"bloodlink-api/internal/domain/entity"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
}
