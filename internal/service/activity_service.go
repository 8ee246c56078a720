package service

import (
	"context"

	"bloodlink-api/internal/domain/entity"
	"bloodlink-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ActivityService appends account and submission events to the activity
// log. Recording is best-effort: a failed write is logged and swallowed so
// it never fails the operation it annotates.
type ActivityService interface {
	Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON)
}

type activityService struct {
	log          *logrus.Logger
	activityRepo repository.ActivityLogRepository
}

func NewActivityService(log *logrus.Logger, activityRepo repository.ActivityLogRepository) ActivityService {
	return &activityService{
		log:          log,
		activityRepo: activityRepo,
	}
}

func (s *activityService) Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) {
	entry := &entity.ActivityLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.activityRepo.Create(ctx, entry); err != nil {
		s.log.Warnf("Failed to record activity %s: %+v", action, err)
	}
}
