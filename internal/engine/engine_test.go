package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/classifier"
	"github.com/vigilhub/attention-escalator/internal/dispatcher"
	"github.com/vigilhub/attention-escalator/internal/domain"
	"github.com/vigilhub/attention-escalator/internal/engine"
	"github.com/vigilhub/attention-escalator/internal/ledger"
	"github.com/vigilhub/attention-escalator/internal/permission"
	"github.com/vigilhub/attention-escalator/internal/platform"
	"github.com/vigilhub/attention-escalator/internal/prefs"
	"github.com/vigilhub/attention-escalator/internal/tabalert"
)

type fixture struct {
	eng      *engine.Engine
	title    *platform.WindowTitle
	blinker  *tabalert.Blinker
	notifier *platform.MockNotifier
	audio    *platform.ChimePlayer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	title := platform.NewWindowTitle("Inbox")
	blinker := tabalert.New(title, 5*time.Millisecond, zap.NewNop())
	t.Cleanup(blinker.Stop)

	store := prefs.New(blinker.Stop)
	notifier := platform.NewMockNotifier()
	perms := permission.NewGateway(notifier, store, zap.NewNop())
	audio := platform.NewChimePlayer()
	led := ledger.New()
	cls := classifier.New(500, zap.NewNop())

	disp := dispatcher.New(
		store, perms, blinker, notifier, audio,
		dispatcher.NewTierLimiters(0, 0),
		time.Second,
		zap.NewNop(),
		dispatcher.Hooks{},
	)

	eng := engine.New(cls, led, store, perms, disp, blinker, title, audio, zap.NewNop(), engine.Hooks{})
	return &fixture{eng: eng, title: title, blinker: blinker, notifier: notifier, audio: audio}
}

func amt(v float64) *float64 { return &v }

func highPriority(id string) domain.WorkItem {
	return domain.WorkItem{ID: id, Status: domain.StatusPending, Priority: domain.PriorityHigh}
}

func TestEngine_CheckThenTriggerThenAcknowledgeAll(t *testing.T) {
	f := newFixture(t)
	items := []domain.WorkItem{
		highPriority("a"),
		{ID: "b", Status: domain.StatusPending, Priority: domain.PriorityLow, Amount: amt(600), Currency: "USD"},
	}

	result := f.eng.CheckForUrgentItems(items)
	require.Len(t, result.UrgentItems, 2)
	require.True(t, result.RequiresAttention)

	f.eng.TriggerUrgentNotifications(context.Background(), result.UrgentItems)
	require.True(t, f.blinker.Active())

	f.eng.AcknowledgeAll(result.UrgentItems)

	assert.False(t, f.blinker.Active(), "bulk acknowledgment must silence the tab alert")
	assert.Equal(t, "Inbox", f.title.Title(), "title must be restored")

	after := f.eng.CheckForUrgentItems(items)
	assert.Empty(t, after.UrgentItems, "acknowledged items must not re-classify as urgent")
	assert.False(t, after.RequiresAttention)
}

func TestEngine_AcknowledgeSingleItem(t *testing.T) {
	f := newFixture(t)
	items := []domain.WorkItem{highPriority("a"), highPriority("b")}

	f.eng.AcknowledgeItem("a")

	result := f.eng.CheckForUrgentItems(items)
	require.Len(t, result.UrgentItems, 1)
	assert.Equal(t, "b", result.UrgentItems[0].ID)
}

func TestEngine_ResetRestoresEligibility(t *testing.T) {
	f := newFixture(t)
	items := []domain.WorkItem{highPriority("a")}

	f.eng.AcknowledgeItem("a")
	require.Empty(t, f.eng.CheckForUrgentItems(items).UrgentItems)

	f.eng.ResetAcknowledgedItems()

	assert.Len(t, f.eng.CheckForUrgentItems(items).UrgentItems, 1)
}

func TestEngine_DisablingPreferencesStopsActiveAlert(t *testing.T) {
	f := newFixture(t)

	f.eng.TriggerUrgentNotifications(context.Background(), []domain.WorkItem{highPriority("a")})
	require.True(t, f.blinker.Active())

	off := false
	f.eng.UpdatePreferences(domain.PreferencesPatch{Enabled: &off})

	assert.False(t, f.blinker.Active())
	assert.Equal(t, "Inbox", f.title.Title())

	// Any further trigger is a no-op.
	f.eng.TriggerUrgentNotifications(context.Background(), []domain.WorkItem{highPriority("b")})
	assert.False(t, f.blinker.Active())
	assert.Empty(t, f.notifier.Displayed())
	assert.Zero(t, f.audio.Plays())
}

func TestEngine_StateSnapshot(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.eng.RequestNotificationPermission(context.Background()))
	f.eng.EnableAudioNotifications()
	f.eng.AcknowledgeItem("z")
	f.eng.AcknowledgeItem("a")

	s := f.eng.State()

	assert.Equal(t, domain.PushGranted, s.Permission)
	assert.True(t, s.AudioPermission)
	assert.Equal(t, []string{"a", "z"}, s.AcknowledgedItems)
	assert.True(t, s.Preferences.Tiers.Push, "grant must flip the push tier")
	assert.True(t, s.Preferences.Tiers.Sound, "audio grant must flip the sound tier")
	assert.Equal(t, "Inbox", s.Title)
}

func TestEngine_CloseTearsDownSession(t *testing.T) {
	f := newFixture(t)

	f.eng.TriggerUrgentNotifications(context.Background(), []domain.WorkItem{highPriority("a")})
	f.eng.AcknowledgeItem("a")
	require.True(t, f.blinker.Active())

	require.NoError(t, f.eng.Close())

	assert.False(t, f.blinker.Active())
	assert.Equal(t, "Inbox", f.title.Title())
	assert.True(t, f.audio.Closed())
	assert.Empty(t, f.eng.State().AcknowledgedItems)
	assert.Equal(t, domain.DefaultPreferences(), f.eng.State().Preferences)
}
