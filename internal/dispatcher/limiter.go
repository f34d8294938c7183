package dispatcher

import "golang.org/x/time/rate"

// TierLimiters holds one token bucket per noisy tier so a hot poll loop
// cannot machine-gun the host with pushes or chimes. Burst equals the
// per-minute rate: no saved-up burst beyond the configured maximum.
type TierLimiters struct {
	push  *rate.Limiter
	sound *rate.Limiter
}

// NewTierLimiters creates limiters from per-minute rates. A rate of zero
// or less disables limiting for that tier.
func NewTierLimiters(pushPerMin, soundPerMin int) *TierLimiters {
	return &TierLimiters{
		push:  perMinute(pushPerMin),
		sound: perMinute(soundPerMin),
	}
}

func perMinute(n int) *rate.Limiter {
	if n <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(float64(n)/60.0), n)
}

// AllowPush consumes a push token if one is available. Non-blocking:
// dispatch must never stall the caller, so a missing token suppresses the
// tier for this cycle instead of waiting.
func (t *TierLimiters) AllowPush() bool { return t.push.Allow() }

// AllowSound consumes a sound token if one is available.
func (t *TierLimiters) AllowSound() bool { return t.sound.Allow() }
