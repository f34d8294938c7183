// Package prefs holds the session-scoped notification preferences.
package prefs

import (
	"sync"

	"github.com/vigilhub/attention-escalator/internal/domain"
)

// Store guards the master switch and the four tier toggles. Updates apply
// atomically: the silence hook runs inside the same mutator path as the
// write, so the tab timer's running state can never disagree with the
// preferences that gate it.
type Store struct {
	mu      sync.Mutex
	current domain.NotificationPreferences

	// onSilence stops the active tab alert. Injected so the store stays
	// unaware of the timer implementation.
	onSilence func()
}

// New creates a Store with the session defaults. onSilence is optional
// (nil = no-op).
func New(onSilence func()) *Store {
	if onSilence == nil {
		onSilence = func() {}
	}
	return &Store{
		current:   domain.DefaultPreferences(),
		onSilence: onSilence,
	}
}

func (s *Store) Get() domain.NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update shallow-merges Enabled and deep-merges Tiers: only supplied keys
// change. If the merged result disables escalation entirely or disables the
// tab tier, any active tab alert is stopped before Update returns.
func (s *Store) Update(patch domain.PreferencesPatch) domain.NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Enabled != nil {
		s.current.Enabled = *patch.Enabled
	}
	applyTier(&s.current.Tiers.Visual, patch.Tiers.Visual)
	applyTier(&s.current.Tiers.Tab, patch.Tiers.Tab)
	applyTier(&s.current.Tiers.Push, patch.Tiers.Push)
	applyTier(&s.current.Tiers.Sound, patch.Tiers.Sound)

	if !s.current.Enabled || !s.current.Tiers.Tab {
		s.onSilence()
	}

	return s.current
}

// Reset restores the session defaults. Used on engine teardown.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.DefaultPreferences()
}

func applyTier(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
