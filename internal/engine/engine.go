// Package engine is the façade the rendering collaborator talks to. It
// owns the session-scoped state (ledger, preferences, permissions) and
// coordinates classification, dispatch, and teardown.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/classifier"
	"github.com/vigilhub/attention-escalator/internal/dispatcher"
	"github.com/vigilhub/attention-escalator/internal/domain"
	"github.com/vigilhub/attention-escalator/internal/ledger"
	"github.com/vigilhub/attention-escalator/internal/permission"
	"github.com/vigilhub/attention-escalator/internal/platform"
	"github.com/vigilhub/attention-escalator/internal/prefs"
	"github.com/vigilhub/attention-escalator/internal/tabalert"
)

// Hooks carries the metric callbacks injected by main (nil = no-op).
type Hooks struct {
	OnClassified    func(urgentCount int, elapsed time.Duration)
	OnLedgerChanged func(size int)
}

func (h *Hooks) fillNoOps() {
	if h.OnClassified == nil {
		h.OnClassified = func(int, time.Duration) {}
	}
	if h.OnLedgerChanged == nil {
		h.OnLedgerChanged = func(int) {}
	}
}

// State is the observable snapshot the rendering collaborator polls.
type State struct {
	Permission        domain.PushPermission          `json:"permission"`
	AudioPermission   bool                           `json:"audio_permission"`
	AcknowledgedItems []string                       `json:"acknowledged_items"`
	Preferences       domain.NotificationPreferences `json:"preferences"`
	Title             string                         `json:"title"`
}

// Engine wires the core components together behind one surface.
type Engine struct {
	classifier *classifier.Classifier
	ledger     *ledger.Ledger
	prefs      *prefs.Store
	perms      *permission.Gateway
	dispatcher *dispatcher.Dispatcher
	blinker    *tabalert.Blinker
	title      platform.TitleHandle
	audio      platform.AudioPlayer
	logger     *zap.Logger
	hooks      Hooks
}

func New(
	cls *classifier.Classifier,
	led *ledger.Ledger,
	store *prefs.Store,
	perms *permission.Gateway,
	disp *dispatcher.Dispatcher,
	blinker *tabalert.Blinker,
	title platform.TitleHandle,
	audio platform.AudioPlayer,
	logger *zap.Logger,
	hooks Hooks,
) *Engine {
	hooks.fillNoOps()
	return &Engine{
		classifier: cls,
		ledger:     led,
		prefs:      store,
		perms:      perms,
		dispatcher: disp,
		blinker:    blinker,
		title:      title,
		audio:      audio,
		logger:     logger,
		hooks:      hooks,
	}
}

// CheckForUrgentItems runs one classification pass over the supplied
// collection. Pure with respect to engine state: repeated calls with
// unchanged inputs yield identical results.
func (e *Engine) CheckForUrgentItems(items []domain.WorkItem) domain.Classification {
	start := time.Now()
	result := e.classifier.Classify(items, e.ledger)
	e.hooks.OnClassified(len(result.UrgentItems), time.Since(start))
	return result
}

// TriggerUrgentNotifications fires the tiered escalation for the given
// urgent subset.
func (e *Engine) TriggerUrgentNotifications(ctx context.Context, urgent []domain.WorkItem) {
	e.dispatcher.Trigger(ctx, urgent)
}

// AcknowledgeItem suppresses further alerting for one item until reset.
func (e *Engine) AcknowledgeItem(id string) {
	e.ledger.Acknowledge(id)
	e.hooks.OnLedgerChanged(e.ledger.Len())
}

// AcknowledgeAll marks every given item as seen and silences the ongoing
// tab alert: bulk acknowledgment is the designated "user has seen
// everything" action.
func (e *Engine) AcknowledgeAll(items []domain.WorkItem) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	e.ledger.AcknowledgeAll(ids)
	e.blinker.Stop()
	e.hooks.OnLedgerChanged(e.ledger.Len())
	e.logger.Info("bulk acknowledgment", zap.Int("count", len(ids)))
}

// ResetAcknowledgedItems clears the ledger, making previously acknowledged
// items eligible for urgency again on the next pass.
func (e *Engine) ResetAcknowledgedItems() {
	e.ledger.Reset()
	e.hooks.OnLedgerChanged(0)
}

// UpdatePreferences applies a partial preferences update and returns the
// merged result. Disabling escalation or the tab tier stops the active tab
// alert as part of the same update.
func (e *Engine) UpdatePreferences(patch domain.PreferencesPatch) domain.NotificationPreferences {
	return e.prefs.Update(patch)
}

// RequestNotificationPermission shows the platform prompt and reports
// whether push permission ended up granted.
func (e *Engine) RequestNotificationPermission(ctx context.Context) bool {
	return e.perms.RequestPush(ctx)
}

// EnableAudioNotifications marks audio as permitted after a user gesture.
func (e *Engine) EnableAudioNotifications() {
	e.perms.GrantAudio()
}

// State returns the observable snapshot.
func (e *Engine) State() State {
	perm := e.perms.State()
	return State{
		Permission:        perm.Push,
		AudioPermission:   perm.Audio,
		AcknowledgedItems: e.ledger.Snapshot(),
		Preferences:       e.prefs.Get(),
		Title:             e.title.Title(),
	}
}

// Close tears the session down: stops any active tab alert (restoring the
// title), releases the audio resource, and discards session state.
func (e *Engine) Close() error {
	e.blinker.Stop()
	err := e.audio.Close()
	e.ledger.Reset()
	e.prefs.Reset()
	e.logger.Info("engine closed")
	return err
}
