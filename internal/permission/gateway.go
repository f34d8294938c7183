// Package permission tracks what the host platform allows the engine to do.
package permission

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/domain"
	"github.com/vigilhub/attention-escalator/internal/platform"
	"github.com/vigilhub/attention-escalator/internal/prefs"
)

// Gateway owns the session's permission state. Both permissions start at
// the most restrictive value and move toward granted only through the
// explicit request operations here; the engine exposes no revoke path.
// Live checks (Pushable) re-read the platform every time, because the host
// can revoke a grant outside the engine's control.
type Gateway struct {
	mu    sync.Mutex
	state domain.PermissionState

	notifier platform.Notifier
	prefs    *prefs.Store
	logger   *zap.Logger
}

func NewGateway(notifier platform.Notifier, store *prefs.Store, logger *zap.Logger) *Gateway {
	return &Gateway{
		state:    domain.PermissionState{Push: domain.PushDefault},
		notifier: notifier,
		prefs:    store,
		logger:   logger,
	}
}

// RequestPush shows the platform permission prompt and blocks until the
// user responds. On grant the push tier preference is flipped on as well:
// an explicit grant implies intent to use the tier. Every failure path
// (no capability, prompt error, denial) returns false with preferences
// untouched.
func (g *Gateway) RequestPush(ctx context.Context) bool {
	if g.notifier == nil || !g.notifier.Available() {
		g.logger.Debug("push permission request skipped: no notification capability")
		return false
	}

	result, err := g.notifier.RequestPermission(ctx)
	if err != nil {
		g.logger.Warn("push permission prompt failed", zap.Error(err))
		return false
	}

	g.mu.Lock()
	g.state.Push = result
	g.mu.Unlock()

	if result != domain.PushGranted {
		return false
	}

	enable := true
	g.prefs.Update(domain.PreferencesPatch{Tiers: domain.TiersPatch{Push: &enable}})
	g.logger.Info("push permission granted")
	return true
}

// GrantAudio marks audio playback as permitted. Callers invoke this after
// a user gesture, which hosts require before any programmatic playback.
// The sound tier preference is flipped on alongside the grant.
func (g *Gateway) GrantAudio() {
	g.mu.Lock()
	g.state.Audio = true
	g.mu.Unlock()

	enable := true
	g.prefs.Update(domain.PreferencesPatch{Tiers: domain.TiersPatch{Sound: &enable}})
	g.logger.Info("audio playback enabled")
}

// State returns the session's recorded permission state.
func (g *Gateway) State() domain.PermissionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Pushable reports whether a push notification can be shown right now.
// It consults the platform, not the recorded grant, so a host-level
// revocation takes effect on the next dispatch cycle.
func (g *Gateway) Pushable() bool {
	return g.notifier != nil &&
		g.notifier.Available() &&
		g.notifier.Permission() == domain.PushGranted
}

// Audible reports whether the sound tier may play.
func (g *Gateway) Audible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Audio
}
