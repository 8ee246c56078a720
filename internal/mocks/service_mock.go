package mocks

import (
	"context"
	"sync"

	"bloodlink-api/internal/service"
)

// MockNotifier implements service.Notifier with an in-process channel.
type MockNotifier struct {
	mu        sync.Mutex
	Published []service.ChangeEvent

	events chan service.ChangeEvent

	PublishError error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{events: make(chan service.ChangeEvent, 16)}
}

func (m *MockNotifier) Publish(ctx context.Context, ev service.ChangeEvent) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.mu.Lock()
	m.Published = append(m.Published, ev)
	m.mu.Unlock()

	select {
	case m.events <- ev:
	default:
	}
	return nil
}

func (m *MockNotifier) Subscribe(ctx context.Context) (<-chan service.ChangeEvent, error) {
	return m.events, nil
}

// Emit pushes an event to subscribers without recording a publish.
func (m *MockNotifier) Emit(ev service.ChangeEvent) {
	m.events <- ev
}

// PublishedEvents returns a copy of everything published so far.
func (m *MockNotifier) PublishedEvents() []service.ChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]service.ChangeEvent, len(m.Published))
	copy(out, m.Published)
	return out
}
