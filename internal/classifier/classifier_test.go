package classifier_test

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/classifier"
	"github.com/vigilhub/attention-escalator/internal/currency"
	"github.com/vigilhub/attention-escalator/internal/domain"
	"github.com/vigilhub/attention-escalator/internal/ledger"
)

func amt(v float64) *float64 { return &v }

func pending(id string, priority domain.Priority, amount *float64, code currency.Code) domain.WorkItem {
	return domain.WorkItem{
		ID:       id,
		Status:   domain.StatusPending,
		Priority: priority,
		Amount:   amount,
		Currency: code,
	}
}

func TestClassify_AmountDriven(t *testing.T) {
	c := classifier.New(500, zap.NewNop())
	items := []domain.WorkItem{
		pending("a", domain.PriorityLow, amt(600), currency.USD),
	}

	got := c.Classify(items, ledger.New())

	if !got.RequiresAttention || len(got.UrgentItems) != 1 {
		t.Fatalf("expected one urgent item, got %+v", got)
	}
	if got.LargeAmountCount != 1 || got.HighPriorityCount != 0 {
		t.Fatalf("expected amount-driven counts 1/0, got %d/%d", got.LargeAmountCount, got.HighPriorityCount)
	}
}

func TestClassify_PriorityDrivenWithoutAmount(t *testing.T) {
	c := classifier.New(500, zap.NewNop())
	items := []domain.WorkItem{
		pending("b", domain.PriorityHigh, nil, currency.USD),
	}

	got := c.Classify(items, ledger.New())

	if len(got.UrgentItems) != 1 {
		t.Fatalf("expected high-priority item to be urgent, got %+v", got)
	}
	if got.HighPriorityCount != 1 || got.LargeAmountCount != 0 {
		t.Fatalf("expected priority-driven counts 1/0, got %d/%d", got.HighPriorityCount, got.LargeAmountCount)
	}
}

func TestClassify_BothTriggersCountIndependently(t *testing.T) {
	c := classifier.New(500, zap.NewNop())
	items := []domain.WorkItem{
		pending("both", domain.PriorityHigh, amt(900), currency.USD),
	}

	got := c.Classify(items, ledger.New())

	if len(got.UrgentItems) != 1 {
		t.Fatalf("expected a single urgent item, got %d", len(got.UrgentItems))
	}
	if got.HighPriorityCount != 1 || got.LargeAmountCount != 1 {
		t.Fatalf("expected item to count in both partitions, got %d/%d", got.HighPriorityCount, got.LargeAmountCount)
	}
}

func TestClassify_EligibilityFilter(t *testing.T) {
	c := classifier.New(500, zap.NewNop())

	resolved := pending("c", domain.PriorityHigh, amt(9999), currency.USD)
	resolved.Status = domain.StatusResolved
	deleted := pending("d", domain.PriorityHigh, amt(9999), currency.USD)
	deleted.Deleted = true

	got := c.Classify([]domain.WorkItem{resolved, deleted}, ledger.New())

	if got.RequiresAttention || len(got.UrgentItems) != 0 {
		t.Fatalf("expected no urgent items from ineligible records, got %+v", got)
	}
}

func TestClassify_ThresholdIsStrict(t *testing.T) {
	c := classifier.New(500, zap.NewNop())
	items := []domain.WorkItem{
		pending("exact", domain.PriorityLow, amt(500), currency.USD),
		pending("above", domain.PriorityLow, amt(500.01), currency.USD),
	}

	got := c.Classify(items, ledger.New())

	if len(got.UrgentItems) != 1 || got.UrgentItems[0].ID != "above" {
		t.Fatalf("expected only the strictly-above item, got %+v", got.UrgentItems)
	}
}

func TestClassify_NormalizesCurrencyBeforeComparing(t *testing.T) {
	c := classifier.New(500, zap.NewNop())
	// 470 EUR ≈ 510.87 USD, above threshold; 390 EUR ≈ 423.91 USD stays below.
	items := []domain.WorkItem{
		pending("eur-high", domain.PriorityLow, amt(470), currency.EUR),
		pending("eur-low", domain.PriorityLow, amt(390), currency.EUR),
	}

	got := c.Classify(items, ledger.New())

	if len(got.UrgentItems) != 1 || got.UrgentItems[0].ID != "eur-high" {
		t.Fatalf("expected only the normalized-above item, got %+v", got.UrgentItems)
	}
}

func TestClassify_ExcludesAcknowledged(t *testing.T) {
	c := classifier.New(500, zap.NewNop())
	l := ledger.New()
	l.Acknowledge("b")

	items := []domain.WorkItem{
		pending("a", domain.PriorityHigh, nil, ""),
		pending("b", domain.PriorityHigh, nil, ""),
	}

	got := c.Classify(items, l)

	if len(got.UrgentItems) != 1 || got.UrgentItems[0].ID != "a" {
		t.Fatalf("expected acknowledged item to be suppressed, got %+v", got.UrgentItems)
	}
}

func TestClassify_IsIdempotent(t *testing.T) {
	c := classifier.New(500, zap.NewNop())
	l := ledger.New()
	items := []domain.WorkItem{
		pending("a", domain.PriorityLow, amt(600), currency.USD),
		pending("b", domain.PriorityHigh, nil, ""),
		pending("c", domain.PriorityLow, amt(100), currency.USD),
	}

	first := c.Classify(items, l)
	second := c.Classify(items, l)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on unchanged inputs:\n%+v\n%+v", first, second)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	c := classifier.New(500, zap.NewNop())
	got := c.Classify(nil, ledger.New())
	if got.RequiresAttention {
		t.Fatal("expected no attention required for empty input")
	}
}
