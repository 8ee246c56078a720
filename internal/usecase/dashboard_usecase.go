package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"bloodlink-api/internal/converter"
	"bloodlink-api/internal/delivery/dto"
	"bloodlink-api/internal/domain/entity"
	"bloodlink-api/internal/domain/repository"
	"bloodlink-api/internal/matching"
	"bloodlink-api/internal/service"
	"bloodlink-api/internal/session"

	"github.com/sirupsen/logrus"
)

// statsKey holds the latest aggregated stats snapshot so a dashboard load
// on another instance starts from fresh numbers.
const statsKey = "dashboard:stats"

const statsTTL = time.Hour

type DashboardUsecase interface {
	// Load refetches both tables, aggregates the stats and assembles the
	// per-user dashboard view.
	Load(ctx context.Context, email string) (*dto.DashboardResponse, error)
	// Start subscribes to change events and keeps the stats snapshot fresh
	// until Stop or ctx cancellation.
	Start(ctx context.Context) error
	Stop()
}

type dashboardUsecase struct {
	log          *logrus.Logger
	donationRepo repository.DonationRepository
	requestRepo  repository.RequestRepository
	notifier     service.Notifier
	cache        session.RedisCmdable

	now    func() time.Time
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDashboardUsecase(
	log *logrus.Logger,
	donationRepo repository.DonationRepository,
	requestRepo repository.RequestRepository,
	notifier service.Notifier,
	cache session.RedisCmdable,
) DashboardUsecase {
	return &dashboardUsecase{
		log:          log,
		donationRepo: donationRepo,
		requestRepo:  requestRepo,
		notifier:     notifier,
		cache:        cache,
		now:          time.Now,
	}
}

func (u *dashboardUsecase) Load(ctx context.Context, email string) (*dto.DashboardResponse, error) {
	donations, requests, stats, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	mine, err := u.donationRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to load own donations: %+v", err)
		return nil, err
	}

	myRequests, err := u.requestRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to load own requests: %+v", err)
		return nil, err
	}

	urgent := matching.FilterRequests(requests, entity.RequestFilter{Urgency: entity.UrgencyHigh})

	return &dto.DashboardResponse{
		Stats:          stats,
		Donations:      converter.DonationsToResponses(donations),
		Requests:       converter.RequestsToResponses(requests),
		MyDonations:    converter.DonationsToResponses(mine),
		MyRequests:     converter.RequestsToResponses(myRequests),
		UrgentRequests: converter.RequestsToResponses(urgent),
	}, nil
}

func (u *dashboardUsecase) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	u.cancel = cancel

	events, err := u.notifier.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		for ev := range events {
			// Every event triggers a full reload; the event itself carries
			// no row data.
			if _, _, _, err := u.snapshot(ctx); err != nil {
				u.log.Warnf("Failed to refresh stats after %s change: %+v", ev.Table, err)
				continue
			}
			u.log.Debugf("Refreshed dashboard stats after %s %s", ev.Table, ev.Action)
		}
	}()

	return nil
}

func (u *dashboardUsecase) Stop() {
	if u.cancel != nil {
		u.cancel()
	}
	u.wg.Wait()
}

// snapshot refetches both tables, recomputes the stats and caches them.
func (u *dashboardUsecase) snapshot(ctx context.Context) ([]entity.BloodDonation, []entity.BloodRequest, matching.Stats, error) {
	donations, err := u.donationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load donations: %+v", err)
		return nil, nil, matching.Stats{}, err
	}

	requests, err := u.requestRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load requests: %+v", err)
		return nil, nil, matching.Stats{}, err
	}

	stats := matching.Aggregate(donations, requests, u.now())

	payload, err := json.Marshal(stats)
	if err != nil {
		return nil, nil, matching.Stats{}, err
	}
	if err := u.cache.Set(ctx, statsKey, string(payload), statsTTL).Err(); err != nil {
		// The snapshot is an optimization; a cache miss only costs the next
		// reader a recompute.
		u.log.Warnf("Failed to cache stats snapshot: %+v", err)
	}

	return donations, requests, stats, nil
}
