package repository

import (
	"context"

	"bloodlink-api/internal/domain/entity"
	domainRepo "bloodlink-api/internal/domain/repository"

	"gorm.io/gorm"
)

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) domainRepo.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *entity.BloodDonation) error {
	return dbFrom(ctx, r.db).Create(donation).Error
}

func (r *donationRepository) FindAll(ctx context.Context) ([]entity.BloodDonation, error) {
	var donations []entity.BloodDonation
	err := dbFrom(ctx, r.db).Order("created_at DESC").Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) FindByEmail(ctx context.Context, email string) ([]entity.BloodDonation, error) {
	var donations []entity.BloodDonation
	err := dbFrom(ctx, r.db).Where("email = ?", email).Order("created_at DESC").Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}
