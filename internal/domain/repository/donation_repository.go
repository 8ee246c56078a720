package repository

import (
	"context"

	"bloodlink-api/internal/domain/entity"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *entity.BloodDonation) error
	// FindAll returns every donation row ordered by created_at descending.
	FindAll(ctx context.Context) ([]entity.BloodDonation, error)
	FindByEmail(ctx context.Context, email string) ([]entity.BloodDonation, error)
}
