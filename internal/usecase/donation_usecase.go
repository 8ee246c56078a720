package usecase

import (
	"context"
	"time"

	"bloodlink-api/internal/converter"
	"bloodlink-api/internal/delivery/dto"
	"bloodlink-api/internal/domain/entity"
	"bloodlink-api/internal/domain/repository"
	"bloodlink-api/internal/matching"
	"bloodlink-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DonationUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, email string, req *dto.SubmitDonationRequest) (*dto.DonationResponse, error)
	List(ctx context.Context, filter entity.DonationFilter) (*dto.DonationListResponse, error)
	ListMine(ctx context.Context, email string) (*dto.DonationListResponse, error)
}

type donationUsecase struct {
	log          *logrus.Logger
	donationRepo repository.DonationRepository
	activity     service.ActivityService
	notifier     service.Publisher
}

func NewDonationUsecase(
	log *logrus.Logger,
	donationRepo repository.DonationRepository,
	activity service.ActivityService,
	notifier service.Publisher,
) DonationUsecase {
	return &donationUsecase{
		log:          log,
		donationRepo: donationRepo,
		activity:     activity,
		notifier:     notifier,
	}
}

// Submit records a new donation offer for the signed-in donor. Each call
// appends a row; donating again is a new event, not an update.
func (u *donationUsecase) Submit(ctx context.Context, userID uuid.UUID, email string, req *dto.SubmitDonationRequest) (*dto.DonationResponse, error) {
	donation := &entity.BloodDonation{
		UserID:      userID,
		Email:       email,
		Name:        req.Name,
		BloodGroup:  req.BloodGroup,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
	}

	if err := u.donationRepo.Create(ctx, donation); err != nil {
		u.log.Warnf("Failed to create donation: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, &userID, entity.ActivityActionDonationSubmit, entity.JSON{
		"blood_group": donation.BloodGroup,
	})

	ev := service.ChangeEvent{
		Table:  entity.BloodDonation{}.TableName(),
		Action: service.ChangeActionInsert,
		At:     time.Now(),
	}
	if err := u.notifier.Publish(ctx, ev); err != nil {
		u.log.Warnf("Failed to publish donation change event: %+v", err)
	}

	return converter.DonationToResponse(donation), nil
}

// List fetches every donation and applies the filter in memory, newest
// first.
func (u *donationUsecase) List(ctx context.Context, filter entity.DonationFilter) (*dto.DonationListResponse, error) {
	donations, err := u.donationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list donations: %+v", err)
		return nil, err
	}

	filtered := matching.FilterDonations(donations, filter)
	return &dto.DonationListResponse{
		Donations: converter.DonationsToResponses(filtered),
		Count:     len(filtered),
	}, nil
}

// ListMine returns the signed-in donor's own submissions.
func (u *donationUsecase) ListMine(ctx context.Context, email string) (*dto.DonationListResponse, error) {
	donations, err := u.donationRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to list own donations: %+v", err)
		return nil, err
	}

	return &dto.DonationListResponse{
		Donations: converter.DonationsToResponses(donations),
		Count:     len(donations),
	}, nil
}
