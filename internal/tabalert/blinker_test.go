package tabalert_test

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/platform"
	"github.com/vigilhub/attention-escalator/internal/tabalert"
)

const testInterval = 10 * time.Millisecond

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

func TestBlinker_StartSetsAlertTitle(t *testing.T) {
	title := platform.NewWindowTitle("Inbox")
	b := tabalert.New(title, testInterval, zap.NewNop())
	defer b.Stop()

	b.Start("2 urgent items require attention")

	if got := title.Title(); got == "Inbox" {
		t.Fatal("expected title to switch to the alert form immediately")
	}
	if !b.Active() {
		t.Fatal("expected blinker to be active after Start")
	}
}

func TestBlinker_TicksFlipTitle(t *testing.T) {
	title := platform.NewWindowTitle("Inbox")
	b := tabalert.New(title, testInterval, zap.NewNop())
	defer b.Stop()

	b.Start("1 urgent item requires attention")
	alert := title.Title()

	// First tick flips back to the original, the next to the alert again.
	waitFor(t, func() bool { return title.Title() == "Inbox" }, "expected a tick to restore the original phase")
	waitFor(t, func() bool { return title.Title() == alert }, "expected a tick to flip back to the alert phase")
}

func TestBlinker_StopRestoresOriginalTitle(t *testing.T) {
	title := platform.NewWindowTitle("Inbox")
	b := tabalert.New(title, testInterval, zap.NewNop())

	b.Start("2 urgent items require attention")
	time.Sleep(3 * testInterval)
	b.Stop()

	if got := title.Title(); got != "Inbox" {
		t.Fatalf("expected pre-start title to be restored exactly, got %q", got)
	}
	if b.Active() {
		t.Fatal("expected blinker to be idle after Stop")
	}

	// No stale ticker may touch the title after Stop returns.
	writes := title.Writes()
	time.Sleep(3 * testInterval)
	if title.Writes() != writes {
		t.Fatal("expected no title writes after Stop")
	}
}

func TestBlinker_StopWhileIdleIsNoOp(t *testing.T) {
	title := platform.NewWindowTitle("Inbox")
	b := tabalert.New(title, testInterval, zap.NewNop())

	b.Stop()
	b.Stop()

	if got := title.Title(); got != "Inbox" {
		t.Fatalf("expected title untouched, got %q", got)
	}
}

func TestBlinker_RestartReplacesTicker(t *testing.T) {
	title := platform.NewWindowTitle("Inbox")
	b := tabalert.New(title, testInterval, zap.NewNop())
	defer b.Stop()

	b.Start("1 urgent item requires attention")
	b.Start("5 urgent items require attention")

	// The restart must begin from the alert phase of the new message.
	if got := title.Title(); got != "⚠ 5 urgent items require attention" {
		t.Fatalf("expected new alert title after restart, got %q", got)
	}

	b.Stop()
	if got := title.Title(); got != "Inbox" {
		t.Fatalf("expected the title captured before the first Start, got %q", got)
	}
}
