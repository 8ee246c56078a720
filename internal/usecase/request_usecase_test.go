package usecase

import (
	"context"
	"testing"

	"bloodlink-api/internal/delivery/dto"
	"bloodlink-api/internal/domain/entity"
	"bloodlink-api/internal/mocks"
	"bloodlink-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestFixture struct {
	requestRepo  *mocks.MockRequestRepository
	activityRepo *mocks.MockActivityLogRepository
	notifier     *mocks.MockNotifier
	uc           RequestUsecase
}

func newRequestFixture() *requestFixture {
	log := testLogger()
	f := &requestFixture{
		requestRepo:  mocks.NewMockRequestRepository(),
		activityRepo: mocks.NewMockActivityLogRepository(),
		notifier:     mocks.NewMockNotifier(),
	}
	f.uc = NewRequestUsecase(log, f.requestRepo, service.NewActivityService(log, f.activityRepo), f.notifier)
	return f
}

func TestSubmitRequestAppearsInList(t *testing.T) {
	f := newRequestFixture()
	ctx := context.Background()
	userID := uuid.New()

	resp, err := f.uc.Submit(ctx, userID, "admin@citygeneral.org", &dto.SubmitRequestRequest{
		Name:       "City General Hospital",
		Address:    "100 Main St",
		BloodGroup: "O-",
		Quantity:   4,
		Urgency:    entity.UrgencyHigh,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	list, err := f.uc.List(ctx, entity.RequestFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, entity.UrgencyHigh, list.Requests[0].Urgency)

	events := f.notifier.PublishedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "blood_requests", events[0].Table)

	require.Len(t, f.activityRepo.Logs, 1)
	assert.Equal(t, entity.ActivityActionRequestSubmit, f.activityRepo.Logs[0].Action)
}

func TestListRequestsAppliesFilter(t *testing.T) {
	f := newRequestFixture()
	ctx := context.Background()

	f.requestRepo.Seed(
		entity.BloodRequest{ID: uuid.New(), Email: "a@x.org", Name: "City General", Address: "100 Main St", BloodGroup: "O-", Urgency: entity.UrgencyHigh},
		entity.BloodRequest{ID: uuid.New(), Email: "b@x.org", Name: "St. Mary", Address: "22 Oak Ave", BloodGroup: "A+", Urgency: entity.UrgencyLow},
	)

	list, err := f.uc.List(ctx, entity.RequestFilter{Urgency: entity.UrgencyLow})
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "St. Mary", list.Requests[0].Name)

	search, err := f.uc.List(ctx, entity.RequestFilter{Search: "oak"})
	require.NoError(t, err)
	require.Equal(t, 1, search.Count)
	assert.Equal(t, "St. Mary", search.Requests[0].Name)
}

func TestUrgentReturnsHighOnly(t *testing.T) {
	f := newRequestFixture()
	ctx := context.Background()

	f.requestRepo.Seed(
		entity.BloodRequest{ID: uuid.New(), Email: "a@x.org", Name: "City General", BloodGroup: "O-", Urgency: entity.UrgencyHigh},
		entity.BloodRequest{ID: uuid.New(), Email: "b@x.org", Name: "St. Mary", BloodGroup: "A+", Urgency: entity.UrgencyMedium},
		entity.BloodRequest{ID: uuid.New(), Email: "c@x.org", Name: "Mercy West", BloodGroup: "B+", Urgency: entity.UrgencyLow},
	)

	urgent, err := f.uc.Urgent(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, urgent.Count)
	assert.Equal(t, "City General", urgent.Requests[0].Name)
}
