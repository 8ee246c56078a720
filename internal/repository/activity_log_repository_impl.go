package repository

import (
	"context"

	"bloodlink-api/internal/domain/entity"
	domainRepo "bloodlink-api/internal/domain/repository"

	"gorm.io/gorm"
)

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) domainRepo.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	return dbFrom(ctx, r.db).Create(log).Error
}
