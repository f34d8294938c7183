// Package dispatcher fans one urgency result out to the alert tiers.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/domain"
	"github.com/vigilhub/attention-escalator/internal/permission"
	"github.com/vigilhub/attention-escalator/internal/platform"
	"github.com/vigilhub/attention-escalator/internal/prefs"
	"github.com/vigilhub/attention-escalator/internal/tabalert"
)

// DefaultDismissAfter is how long a shown push notification stays up.
// In-flight dismissal is not supported, so every notification carries a
// fixed auto-dismiss window instead.
const DefaultDismissAfter = 30 * time.Second

// Tier names used in logs and metric labels.
const (
	TierTab   = "tab"
	TierPush  = "push"
	TierSound = "sound"
)

// Hooks carries the metric callback functions injected by main.
// Using a struct keeps the dispatcher constructor signature clean.
type Hooks struct {
	OnDispatched func(tier string)
	OnSuppressed func(tier, reason string)
	OnFailed     func(tier string)
}

func (h *Hooks) fillNoOps() {
	if h.OnDispatched == nil {
		h.OnDispatched = func(string) {}
	}
	if h.OnSuppressed == nil {
		h.OnSuppressed = func(string, string) {}
	}
	if h.OnFailed == nil {
		h.OnFailed = func(string) {}
	}
}

// Dispatcher drives the tab, push, and sound tiers for a set of urgent
// items. Each tier is gated independently by preferences and permissions,
// and one tier's failure never prevents the others from firing. The visual
// tier has no dispatch call: it is the RequiresAttention flag the
// rendering collaborator reads straight off the classification.
type Dispatcher struct {
	prefs        *prefs.Store
	perms        *permission.Gateway
	blinker      *tabalert.Blinker
	notifier     platform.Notifier
	audio        platform.AudioPlayer
	limits       *TierLimiters
	dismissAfter time.Duration
	logger       *zap.Logger
	hooks        Hooks
}

func New(
	store *prefs.Store,
	perms *permission.Gateway,
	blinker *tabalert.Blinker,
	notifier platform.Notifier,
	audio platform.AudioPlayer,
	limits *TierLimiters,
	dismissAfter time.Duration,
	logger *zap.Logger,
	hooks Hooks,
) *Dispatcher {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	hooks.fillNoOps()
	return &Dispatcher{
		prefs:        store,
		perms:        perms,
		blinker:      blinker,
		notifier:     notifier,
		audio:        audio,
		limits:       limits,
		dismissAfter: dismissAfter,
		logger:       logger,
		hooks:        hooks,
	}
}

// Message renders the human-readable escalation summary.
func Message(count int) string {
	if count == 1 {
		return "1 urgent item requires attention"
	}
	return fmt.Sprintf("%d urgent items require attention", count)
}

// Trigger fires every enabled tier for the given urgent items. No-op when
// escalation is disabled or the set is empty. Failed tiers are logged and
// skipped for this cycle; the next cycle re-attempts if the condition
// persists.
func (d *Dispatcher) Trigger(ctx context.Context, urgent []domain.WorkItem) {
	if len(urgent) == 0 {
		return
	}

	p := d.prefs.Get()
	if !p.Enabled {
		d.hooks.OnSuppressed(TierTab, "disabled")
		return
	}

	msg := Message(len(urgent))

	if p.Tiers.Tab {
		d.blinker.Start(msg)
		d.hooks.OnDispatched(TierTab)
	}

	d.push(ctx, p, msg)
	d.sound(p)
}

func (d *Dispatcher) push(ctx context.Context, p domain.NotificationPreferences, msg string) {
	if !p.Tiers.Push {
		return
	}
	if !d.perms.Pushable() {
		d.hooks.OnSuppressed(TierPush, "permission")
		return
	}
	if !d.limits.AllowPush() {
		d.hooks.OnSuppressed(TierPush, "rate_limited")
		return
	}

	err := d.notifier.Display(ctx, platform.Notification{
		Title:        "Urgent items",
		Body:         msg,
		Icon:         "alert",
		Actions:      []string{"view", "acknowledge"},
		DismissAfter: d.dismissAfter,
	})
	if err != nil {
		d.logger.Warn("push tier failed", zap.Error(err))
		d.hooks.OnFailed(TierPush)
		return
	}
	d.hooks.OnDispatched(TierPush)
}

// sound rewinds before playing so each escalation is audibly distinct even
// when triggers arrive in rapid succession.
func (d *Dispatcher) sound(p domain.NotificationPreferences) {
	if !p.Tiers.Sound {
		return
	}
	if !d.perms.Audible() {
		d.hooks.OnSuppressed(TierSound, "permission")
		return
	}
	if !d.limits.AllowSound() {
		d.hooks.OnSuppressed(TierSound, "rate_limited")
		return
	}

	if err := d.audio.Rewind(); err != nil {
		d.logger.Warn("sound tier rewind failed", zap.Error(err))
		d.hooks.OnFailed(TierSound)
		return
	}
	if err := d.audio.Play(); err != nil {
		d.logger.Warn("sound tier playback failed", zap.Error(err))
		d.hooks.OnFailed(TierSound)
		return
	}
	d.hooks.OnDispatched(TierSound)
}
