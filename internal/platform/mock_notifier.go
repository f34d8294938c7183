package platform

import (
	"context"
	"sync"

	"github.com/vigilhub/attention-escalator/internal/domain"
)

// MockNotifier is a hand-written in-memory Notifier used in unit tests.
// No mock-generation library needed.
type MockNotifier struct {
	mu        sync.Mutex
	displayed []Notification

	// Behaviour knobs — set in tests to simulate the host.
	Capability   bool
	State        domain.PushPermission
	PromptResult domain.PushPermission
	PromptErr    error
	DisplayErr   error
}

// NewMockNotifier returns a notifier whose prompt grants permission.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		Capability:   true,
		State:        domain.PushDefault,
		PromptResult: domain.PushGranted,
	}
}

func (m *MockNotifier) Available() bool { return m.Capability }

func (m *MockNotifier) Permission() domain.PushPermission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.State
}

func (m *MockNotifier) RequestPermission(_ context.Context) (domain.PushPermission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PromptErr != nil {
		return domain.PushDefault, m.PromptErr
	}
	m.State = m.PromptResult
	return m.PromptResult, nil
}

func (m *MockNotifier) Display(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DisplayErr != nil {
		return m.DisplayErr
	}
	m.displayed = append(m.displayed, n)
	return nil
}

// Displayed returns a copy of every notification shown so far.
func (m *MockNotifier) Displayed() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notification, len(m.displayed))
	copy(out, m.displayed)
	return out
}

var _ Notifier = (*MockNotifier)(nil)
