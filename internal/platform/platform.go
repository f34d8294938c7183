// Package platform defines the host-environment boundary: the window
// title, the push-notification capability, and the audio output. The host
// owns these resources as process-wide singletons; the engine only ever
// touches them through the interfaces here, so tests can substitute
// in-memory doubles.
package platform

import (
	"context"
	"time"

	"github.com/vigilhub/attention-escalator/internal/domain"
)

// TitleHandle wraps the host's single mutable window/tab title resource.
type TitleHandle interface {
	Title() string
	SetTitle(title string)
}

// Notification is the payload handed to the host's push display API.
type Notification struct {
	Title        string        `json:"title"`
	Body         string        `json:"body"`
	Icon         string        `json:"icon,omitempty"`
	Actions      []string      `json:"actions,omitempty"`
	DismissAfter time.Duration `json:"-"`
}

// Notifier abstracts the host's notification-permission and display APIs.
// Permission is read live on every call: the host may revoke a grant at any
// time, so callers must not cache a previous result.
type Notifier interface {
	// Available reports whether the host has a notification capability at
	// all. When false every other call short-circuits.
	Available() bool

	// Permission returns the host's current permission state.
	Permission() domain.PushPermission

	// RequestPermission shows the host's permission prompt and blocks until
	// the user responds or ctx is cancelled. Platforms do not expose prompt
	// cancellation once shown; cancelling ctx abandons the wait.
	RequestPermission(ctx context.Context) (domain.PushPermission, error)

	// Display shows a notification. Best-effort: errors are for logging,
	// never for control flow at the dispatch site.
	Display(ctx context.Context, n Notification) error
}

// AudioPlayer abstracts a rewind-and-play sound primitive.
type AudioPlayer interface {
	// Rewind seeks the alert sound back to its start position.
	Rewind() error

	// Play starts playback from the current position.
	Play() error

	// Close releases the underlying audio resource.
	Close() error
}
