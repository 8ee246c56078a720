package mocks

import (
	"context"
	"strings"
	"sync"

	"bloodlink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MockUserRepository implements repository.UserRepository in memory.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User

	CreateError error
	FindError   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*entity.User)}
}

func (m *MockUserRepository) Seed(user *entity.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[strings.ToLower(user.Email)] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	if _, ok := m.users[strings.ToLower(user.Email)]; ok {
		return gorm.ErrDuplicatedKey
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[strings.ToLower(user.Email)] = user
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}
	user, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// MockDonationRepository implements repository.DonationRepository in memory.
// Rows are kept newest-first, matching the real ordering convention.
type MockDonationRepository struct {
	mu        sync.RWMutex
	donations []entity.BloodDonation

	CreateError error
	FindError   error
}

func NewMockDonationRepository() *MockDonationRepository {
	return &MockDonationRepository{}
}

func (m *MockDonationRepository) Seed(donations ...entity.BloodDonation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.donations = append(donations, m.donations...)
}

func (m *MockDonationRepository) Create(ctx context.Context, donation *entity.BloodDonation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	m.donations = append([]entity.BloodDonation{*donation}, m.donations...)
	return nil
}

func (m *MockDonationRepository) FindAll(ctx context.Context) ([]entity.BloodDonation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}
	out := make([]entity.BloodDonation, len(m.donations))
	copy(out, m.donations)
	return out, nil
}

func (m *MockDonationRepository) FindByEmail(ctx context.Context, email string) ([]entity.BloodDonation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}
	var out []entity.BloodDonation
	for _, d := range m.donations {
		if strings.EqualFold(d.Email, email) {
			out = append(out, d)
		}
	}
	return out, nil
}

// MockRequestRepository implements repository.RequestRepository in memory.
type MockRequestRepository struct {
	mu       sync.RWMutex
	requests []entity.BloodRequest

	CreateError error
	FindError   error
}

func NewMockRequestRepository() *MockRequestRepository {
	return &MockRequestRepository{}
}

func (m *MockRequestRepository) Seed(requests ...entity.BloodRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(requests, m.requests...)
}

func (m *MockRequestRepository) Create(ctx context.Context, request *entity.BloodRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	m.requests = append([]entity.BloodRequest{*request}, m.requests...)
	return nil
}

func (m *MockRequestRepository) FindAll(ctx context.Context) ([]entity.BloodRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}
	out := make([]entity.BloodRequest, len(m.requests))
	copy(out, m.requests)
	return out, nil
}

func (m *MockRequestRepository) FindByEmail(ctx context.Context, email string) ([]entity.BloodRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}
	var out []entity.BloodRequest
	for _, r := range m.requests {
		if strings.EqualFold(r.Email, email) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRequestRepository) FindByUrgency(ctx context.Context, urgency string) ([]entity.BloodRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}
	var out []entity.BloodRequest
	for _, r := range m.requests {
		if r.Urgency == urgency {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockActivityLogRepository records activity rows for assertions.
type MockActivityLogRepository struct {
	mu   sync.Mutex
	Logs []entity.ActivityLog

	CreateError error
}

func NewMockActivityLogRepository() *MockActivityLogRepository {
	return &MockActivityLogRepository{}
}

func (m *MockActivityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	m.Logs = append(m.Logs, *log)
	return nil
}

// MockTxManager runs the function directly; mocks have no transactions.
type MockTxManager struct {
	WithinTxError error
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.WithinTxError != nil {
		return m.WithinTxError
	}
	return fn(ctx)
}
