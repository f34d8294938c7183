package domain

import "github.com/vigilhub/attention-escalator/internal/currency"

// Status tracks the lifecycle of a work item. The set is open: the
// work-queue collaborator may introduce states the engine has never seen,
// and only StatusPending participates in urgency evaluation.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusArchived Status = "archived"
)

// Priority is assigned by the work-queue collaborator. PriorityHigh is a
// first-class urgency trigger independent of any monetary amount.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// WorkItem is a read-only record owned by the external work-queue service.
// The engine never mutates items, it only classifies them.
type WorkItem struct {
	ID       string        `json:"id"`
	Status   Status        `json:"status"`
	Deleted  bool          `json:"deleted"`
	Priority Priority      `json:"priority"`
	Amount   *float64      `json:"amount,omitempty"`
	Currency currency.Code `json:"currency,omitempty"`
}

// Eligible reports whether the item participates in urgency evaluation.
// Deleted items and items in any non-pending state never do.
func (w WorkItem) Eligible() bool {
	return w.Status == StatusPending && !w.Deleted
}

func (w *WorkItem) Validate() error {
	if w.ID == "" {
		return ErrMissingItemID
	}
	if w.Amount != nil && w.Currency == "" {
		return ErrMissingCurrency
	}
	return nil
}

// Classification is the result of one urgency pass over a work-item
// collection. HighPriorityCount and LargeAmountCount are independent
// trigger-reason counts: an item satisfying both conditions appears in
// both, so the counts do not partition UrgentItems.
type Classification struct {
	UrgentItems       []WorkItem `json:"urgent_items"`
	RequiresAttention bool       `json:"requires_attention"`
	HighPriorityCount int        `json:"high_priority_count"`
	LargeAmountCount  int        `json:"large_amount_count"`
}
