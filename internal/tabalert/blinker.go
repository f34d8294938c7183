// Package tabalert blinks the window title while urgent items await
// acknowledgment.
package tabalert

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/platform"
)

// DefaultInterval is the title flip cadence.
const DefaultInterval = time.Second

// Blinker is a two-state machine: idle, or blinking between the alert form
// of a message and the title captured before the first Start of the
// session. At most one ticker is ever live; Start tears down the previous
// one before installing its own so two tickers can never race on the
// shared title resource.
type Blinker struct {
	mu       sync.Mutex
	title    platform.TitleHandle
	interval time.Duration
	logger   *zap.Logger

	cancel   context.CancelFunc // nil while idle
	done     chan struct{}
	original string
	captured bool
}

func New(title platform.TitleHandle, interval time.Duration, logger *zap.Logger) *Blinker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Blinker{title: title, interval: interval, logger: logger}
}

// Start begins blinking with the given message, restarting the cycle from
// the alert phase if already blinking. The title switches to the alert
// form immediately; each tick thereafter flips between alert and original.
func (b *Blinker) Start(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked(false)

	if !b.captured {
		b.original = b.title.Title()
		b.captured = true
	}

	alert := "⚠ " + message
	b.title.SetTitle(alert)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	b.cancel = cancel
	b.done = done

	go b.run(ctx, done, alert, b.original)
	b.logger.Debug("tab alert started", zap.String("message", message))
}

// Stop cancels the blink cycle and restores the pre-start title.
// Calling Stop while idle is a no-op.
func (b *Blinker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked(true)
}

// Active reports whether a blink cycle is running.
func (b *Blinker) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancel != nil
}

// stopLocked cancels the current ticker, waiting for its goroutine to exit
// so no stale tick can touch the title afterwards. The goroutine never
// takes b.mu, so waiting under the lock cannot deadlock.
func (b *Blinker) stopLocked(restore bool) {
	if b.cancel == nil {
		return
	}
	b.cancel()
	<-b.done
	b.cancel = nil
	b.done = nil

	if restore {
		b.title.SetTitle(b.original)
		b.logger.Debug("tab alert stopped, title restored")
	}
}

func (b *Blinker) run(ctx context.Context, done chan struct{}, alert, original string) {
	defer close(done)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	showingAlert := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			showingAlert = !showingAlert
			if showingAlert {
				b.title.SetTitle(alert)
			} else {
				b.title.SetTitle(original)
			}
		}
	}
}
