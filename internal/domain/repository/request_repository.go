package repository

import (
	"context"

	"bloodlink-api/internal/domain/entity"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.BloodRequest) error
	// FindAll returns every request row ordered by created_at descending.
	FindAll(ctx context.Context) ([]entity.BloodRequest, error)
	FindByEmail(ctx context.Context, email string) ([]entity.BloodRequest, error)
	FindByUrgency(ctx context.Context, urgency string) ([]entity.BloodRequest, error)
}
