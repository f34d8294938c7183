package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrNotFound          = errors.New("not found")
	ErrMissingItemID     = errors.New("work item id must not be empty")
	ErrMissingCurrency   = errors.New("currency is required when an amount is present")
	ErrPromptUnavailable = errors.New("notification platform is unavailable")
)
