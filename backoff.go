package huefy

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy calculates the delay before a retry attempt.
// Implementations must be safe for concurrent use since bulk sends retry
// independently across goroutines.
type BackoffStrategy interface {
	// NextInterval returns the delay before the given retry.
	// Attempt starts at 1 for the first retry.
	NextInterval(attempt int) time.Duration
}

// ExponentialBackoff doubles (by default) the delay on every retry, capped at
// MaxInterval. JitterFactor is zero by default, giving the deterministic
// schedule initial * Multiplier^(attempt-1); set it above zero to spread
// retries when many sends fail at once.
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

// NextInterval computes min(InitialInterval * Multiplier^(attempt-1), MaxInterval),
// optionally scaled by a random factor in [1-JitterFactor, 1+JitterFactor].
func (e ExponentialBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.InitialInterval
	if initial == 0 {
		initial = time.Second
	}

	maxInterval := e.MaxInterval
	if maxInterval == 0 {
		maxInterval = 30 * time.Second
	}

	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))

	if e.JitterFactor > 0 {
		interval *= 1 + (rand.Float64()*2-1)*e.JitterFactor
	}

	if interval > float64(maxInterval) {
		interval = float64(maxInterval)
	}

	return time.Duration(interval)
}

// FixedBackoff waits the same interval before every retry. Mostly useful in
// tests where predictable timing matters.
type FixedBackoff struct {
	Interval time.Duration
}

func (f FixedBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Interval
}

// defaultBackoff builds the client's backoff schedule from the configured
// base retry delay. Jitter is off so the schedule matches the documented
// RetryDelay * 2^attempt progression exactly.
func defaultBackoff(retryDelay time.Duration) BackoffStrategy {
	return ExponentialBackoff{
		InitialInterval: retryDelay,
		MaxInterval:     30 * time.Second,
		Multiplier:      2,
	}
}
