package repository

import (
	"context"

	"bloodlink-api/internal/domain/entity"
	domainRepo "bloodlink-api/internal/domain/repository"

	"gorm.io/gorm"
)

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) domainRepo.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *entity.BloodRequest) error {
	return dbFrom(ctx, r.db).Create(request).Error
}

func (r *requestRepository) FindAll(ctx context.Context) ([]entity.BloodRequest, error) {
	var requests []entity.BloodRequest
	err := dbFrom(ctx, r.db).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) FindByEmail(ctx context.Context, email string) ([]entity.BloodRequest, error) {
	var requests []entity.BloodRequest
	err := dbFrom(ctx, r.db).Where("email = ?", email).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) FindByUrgency(ctx context.Context, urgency string) ([]entity.BloodRequest, error) {
	var requests []entity.BloodRequest
	err := dbFrom(ctx, r.db).Where("urgency = ?", urgency).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
