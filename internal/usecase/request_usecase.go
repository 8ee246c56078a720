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

type RequestUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, email string, req *dto.SubmitRequestRequest) (*dto.RequestResponse, error)
	List(ctx context.Context, filter entity.RequestFilter) (*dto.RequestListResponse, error)
	ListMine(ctx context.Context, email string) (*dto.RequestListResponse, error)
	Urgent(ctx context.Context) (*dto.RequestListResponse, error)
}

type requestUsecase struct {
	log         *logrus.Logger
	requestRepo repository.RequestRepository
	activity    service.ActivityService
	notifier    service.Publisher
}

func NewRequestUsecase(
	log *logrus.Logger,
	requestRepo repository.RequestRepository,
	activity service.ActivityService,
	notifier service.Publisher,
) RequestUsecase {
	return &requestUsecase{
		log:         log,
		requestRepo: requestRepo,
		activity:    activity,
		notifier:    notifier,
	}
}

// Submit records a new blood request for the signed-in hospital account.
func (u *requestUsecase) Submit(ctx context.Context, userID uuid.UUID, email string, req *dto.SubmitRequestRequest) (*dto.RequestResponse, error) {
	request := &entity.BloodRequest{
		UserID:     userID,
		Email:      email,
		Name:       req.Name,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
		Quantity:   req.Quantity,
		Urgency:    req.Urgency,
	}

	if err := u.requestRepo.Create(ctx, request); err != nil {
		u.log.Warnf("Failed to create request: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, &userID, entity.ActivityActionRequestSubmit, entity.JSON{
		"blood_group": request.BloodGroup,
		"urgency":     request.Urgency,
	})

	ev := service.ChangeEvent{
		Table:  entity.BloodRequest{}.TableName(),
		Action: service.ChangeActionInsert,
		At:     time.Now(),
	}
	if err := u.notifier.Publish(ctx, ev); err != nil {
		u.log.Warnf("Failed to publish request change event: %+v", err)
	}

	return converter.RequestToResponse(request), nil
}

// List fetches every request and applies the filter in memory, newest
// first.
func (u *requestUsecase) List(ctx context.Context, filter entity.RequestFilter) (*dto.RequestListResponse, error) {
	requests, err := u.requestRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list requests: %+v", err)
		return nil, err
	}

	filtered := matching.FilterRequests(requests, filter)
	return &dto.RequestListResponse{
		Requests: converter.RequestsToResponses(filtered),
		Count:    len(filtered),
	}, nil
}

// ListMine returns the signed-in hospital's own requests.
func (u *requestUsecase) ListMine(ctx context.Context, email string) (*dto.RequestListResponse, error) {
	requests, err := u.requestRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to list own requests: %+v", err)
		return nil, err
	}

	return &dto.RequestListResponse{
		Requests: converter.RequestsToResponses(requests),
		Count:    len(requests),
	}, nil
}

// Urgent returns only the High urgency requests, for the emergency view.
func (u *requestUsecase) Urgent(ctx context.Context) (*dto.RequestListResponse, error) {
	requests, err := u.requestRepo.FindByUrgency(ctx, entity.UrgencyHigh)
	if err != nil {
		u.log.Warnf("Failed to list urgent requests: %+v", err)
		return nil, err
	}

	return &dto.RequestListResponse{
		Requests: converter.RequestsToResponses(requests),
		Count:    len(requests),
	}, nil
}
