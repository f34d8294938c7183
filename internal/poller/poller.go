// Package poller drives the periodic classify-and-escalate cycle.
package poller

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/directory"
	"github.com/vigilhub/attention-escalator/internal/engine"
)

// Poller pulls the current work-item collection from the directory service
// at a fixed cadence, classifies it, and triggers escalation when anything
// urgent remains unacknowledged. Classification is idempotent, so a tick
// that finds nothing new changes nothing.
type Poller struct {
	dir      *directory.Client
	eng      *engine.Engine
	interval time.Duration
	logger   *zap.Logger
}

func New(dir *directory.Client, eng *engine.Engine, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{dir: dir, eng: eng, interval: interval, logger: logger}
}

// Run ticks every interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("poller started", zap.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopping")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	items, err := p.dir.ListWorkItems(ctx)
	if err != nil {
		p.logger.Error("work item fetch failed", zap.Error(err))
		return
	}

	result := p.eng.CheckForUrgentItems(items)
	if !result.RequiresAttention {
		return
	}

	p.eng.TriggerUrgentNotifications(ctx, result.UrgentItems)
	p.logger.Info("escalation triggered",
		zap.Int("urgent", len(result.UrgentItems)),
		zap.Int("high_priority", result.HighPriorityCount),
		zap.Int("large_amount", result.LargeAmountCount),
	)
}
