// Package currency converts monetary amounts between a small fixed set of
// currencies. Rates are static: classification runs on every poll tick, so
// conversion must stay pure and deterministic with no live-rate fetch.
package currency

// Code is an ISO-4217-style currency code.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
)

// Reference is the common unit all urgency thresholds are evaluated in.
const Reference = USD

// rates expresses units of each currency per 1 reference unit.
var rates = map[Code]float64{
	USD: 1.0,
	EUR: 0.92,
	GBP: 0.79,
}

// Known reports whether the code has an entry in the rate table. Callers
// that care about precision can surface the approximation for unknown
// codes; Normalize itself never fails.
func Known(c Code) bool {
	_, ok := rates[c]
	return ok
}

// Normalize converts amount from one currency to another. Same-currency
// conversion is exact identity. A code missing from the rate table falls
// back to rate 1.0, so an unknown currency degrades to treating the amount
// as already being in the reference unit rather than poisoning the result.
func Normalize(amount float64, from, to Code) float64 {
	if from == to {
		return amount
	}
	return amount / rateOrUnit(from) * rateOrUnit(to)
}

func rateOrUnit(c Code) float64 {
	if r, ok := rates[c]; ok {
		return r
	}
	return 1.0
}
