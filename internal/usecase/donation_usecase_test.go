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

type donationFixture struct {
	donationRepo *mocks.MockDonationRepository
	activityRepo *mocks.MockActivityLogRepository
	notifier     *mocks.MockNotifier
	uc           DonationUsecase
}

func newDonationFixture() *donationFixture {
	log := testLogger()
	f := &donationFixture{
		donationRepo: mocks.NewMockDonationRepository(),
		activityRepo: mocks.NewMockActivityLogRepository(),
		notifier:     mocks.NewMockNotifier(),
	}
	f.uc = NewDonationUsecase(log, f.donationRepo, service.NewActivityService(log, f.activityRepo), f.notifier)
	return f
}

func TestSubmitDonationAppearsInList(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()
	userID := uuid.New()

	resp, err := f.uc.Submit(ctx, userID, "john@example.com", &dto.SubmitDonationRequest{
		Name:        "John Smith",
		BloodGroup:  "A+",
		Age:         28,
		PhoneNumber: "555-0101",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "john@example.com", resp.Email)

	list, err := f.uc.List(ctx, entity.DonationFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "John Smith", list.Donations[0].Name)

	events := f.notifier.PublishedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "blood_donations", events[0].Table)

	require.Len(t, f.activityRepo.Logs, 1)
	assert.Equal(t, entity.ActivityActionDonationSubmit, f.activityRepo.Logs[0].Action)
}

func TestListDonationsAppliesFilter(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()

	f.donationRepo.Seed(
		entity.BloodDonation{ID: uuid.New(), Email: "a@x.com", Name: "John Smith", BloodGroup: "A+", Age: 28, PhoneNumber: "555-0101"},
		entity.BloodDonation{ID: uuid.New(), Email: "b@x.com", Name: "Maria Garcia", BloodGroup: "O-", Age: 45, PhoneNumber: "555-0102"},
	)

	list, err := f.uc.List(ctx, entity.DonationFilter{BloodGroup: "O-"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Maria Garcia", list.Donations[0].Name)

	all, err := f.uc.List(ctx, entity.DonationFilter{BloodGroup: entity.BloodGroupAll})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Count)
}

func TestListMineFiltersByEmail(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()

	f.donationRepo.Seed(
		entity.BloodDonation{ID: uuid.New(), Email: "john@example.com", Name: "John Smith", BloodGroup: "A+"},
		entity.BloodDonation{ID: uuid.New(), Email: "other@example.com", Name: "Maria Garcia", BloodGroup: "O-"},
	)

	mine, err := f.uc.ListMine(ctx, "john@example.com")
	require.NoError(t, err)
	require.Equal(t, 1, mine.Count)
	assert.Equal(t, "john@example.com", mine.Donations[0].Email)
}
