package usecase

import (
	"context"
	"testing"
	"time"

	"bloodlink-api/internal/domain/entity"
	"bloodlink-api/internal/mocks"
	"bloodlink-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	donationRepo *mocks.MockDonationRepository
	requestRepo  *mocks.MockRequestRepository
	notifier     *mocks.MockNotifier
	redis        *mocks.MockRedis
	uc           *dashboardUsecase
}

func newDashboardFixture(now time.Time) *dashboardFixture {
	f := &dashboardFixture{
		donationRepo: mocks.NewMockDonationRepository(),
		requestRepo:  mocks.NewMockRequestRepository(),
		notifier:     mocks.NewMockNotifier(),
		redis:        mocks.NewMockRedis(),
	}
	f.uc = NewDashboardUsecase(testLogger(), f.donationRepo, f.requestRepo, f.notifier, f.redis).(*dashboardUsecase)
	f.uc.now = func() time.Time { return now }
	return f
}

func TestDashboardLoadAggregatesStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newDashboardFixture(now)
	ctx := context.Background()

	f.donationRepo.Seed(
		entity.BloodDonation{ID: uuid.New(), Email: "john@example.com", Name: "John Smith", BloodGroup: "A+", Age: 28, CreatedAt: now.Add(-2 * 24 * time.Hour)},
		entity.BloodDonation{ID: uuid.New(), Email: "maria@example.com", Name: "Maria Garcia", BloodGroup: "O-", Age: 45, CreatedAt: now.Add(-10 * 24 * time.Hour)},
	)
	f.requestRepo.Seed(
		entity.BloodRequest{ID: uuid.New(), Email: "admin@citygeneral.org", Name: "City General", BloodGroup: "A+", Urgency: entity.UrgencyHigh, CreatedAt: now.Add(-1 * 24 * time.Hour)},
	)

	resp, err := f.uc.Load(ctx, "john@example.com")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Recent)
	assert.Equal(t, 1, resp.Stats.Matched)

	assert.Len(t, resp.Donations, 2)
	assert.Len(t, resp.Requests, 1)

	require.Len(t, resp.MyDonations, 1)
	assert.Equal(t, "john@example.com", resp.MyDonations[0].Email)
	assert.Empty(t, resp.MyRequests)

	require.Len(t, resp.UrgentRequests, 1)
	assert.Equal(t, entity.UrgencyHigh, resp.UrgentRequests[0].Urgency)
}

func TestDashboardLoadCachesSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newDashboardFixture(now)

	f.donationRepo.Seed(entity.BloodDonation{ID: uuid.New(), Email: "a@x.com", BloodGroup: "B+", CreatedAt: now})

	_, err := f.uc.Load(context.Background(), "a@x.com")
	require.NoError(t, err)

	raw, err := f.redis.Get(context.Background(), statsKey).Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":1,"recent":1,"matched":0}`, raw)
}

func TestDashboardRefreshesOnChangeEvent(t *testing.T) {
	f := newDashboardFixture(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	require.NoError(t, f.uc.Start(context.Background()))
	defer f.uc.Stop()

	f.notifier.Emit(service.ChangeEvent{
		Table:  "blood_donations",
		Action: service.ChangeActionInsert,
		At:     time.Now(),
	})

	require.Eventually(t, func() bool {
		_, err := f.redis.Get(context.Background(), statsKey).Result()
		return err == nil
	}, time.Second, 10*time.Millisecond)
}
