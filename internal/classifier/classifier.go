// Package classifier selects the work items that currently require the
// user's attention.
package classifier

import (
	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/currency"
	"github.com/vigilhub/attention-escalator/internal/domain"
)

// DefaultThresholdUSD is the reference-currency amount above which an item
// becomes amount-urgent. Strictly exceeding it triggers, reaching it does not.
const DefaultThresholdUSD = 500

// Membership is the acknowledged-id lookup the classifier consults.
// Satisfied by *ledger.Ledger.
type Membership interface {
	Contains(id string) bool
}

// Classifier performs the urgency pass. Classify is a pure function of the
// item collection and the acknowledgment set: calling it twice with
// identical inputs yields identical output, which the poll loop relies on.
type Classifier struct {
	thresholdUSD float64
	logger       *zap.Logger
}

func New(thresholdUSD float64, logger *zap.Logger) *Classifier {
	if thresholdUSD <= 0 {
		thresholdUSD = DefaultThresholdUSD
	}
	return &Classifier{thresholdUSD: thresholdUSD, logger: logger}
}

// Classify filters items to those eligible (pending and not deleted), not
// yet acknowledged, and urgent by amount or priority. The two counts record
// trigger reasons independently: an item can contribute to both.
func (c *Classifier) Classify(items []domain.WorkItem, acked Membership) domain.Classification {
	var out domain.Classification

	for _, item := range items {
		if !item.Eligible() || acked.Contains(item.ID) {
			continue
		}

		large := c.exceedsThreshold(item)
		high := item.Priority == domain.PriorityHigh
		if !large && !high {
			continue
		}

		out.UrgentItems = append(out.UrgentItems, item)
		if high {
			out.HighPriorityCount++
		}
		if large {
			out.LargeAmountCount++
		}
	}

	out.RequiresAttention = len(out.UrgentItems) > 0
	return out
}

func (c *Classifier) exceedsThreshold(item domain.WorkItem) bool {
	if item.Amount == nil {
		return false
	}
	if !currency.Known(item.Currency) {
		c.logger.Debug("unknown currency, comparing amount as reference units",
			zap.String("item_id", item.ID),
			zap.String("currency", string(item.Currency)),
		)
	}
	return currency.Normalize(*item.Amount, item.Currency, currency.Reference) > c.thresholdUSD
}
