// Package backoff retries transient failures with exponentially growing
// pauses between attempts.
package backoff

import (
	"context"
	"math/rand"
	"time"
)

// Policy describes how attempts are spaced. The zero value is usable:
// unset fields fall back to the Default preset.
type Policy struct {
	// Attempts is the total number of tries, the first one included.
	Attempts int
	// InitialDelay spaces the first retry from the failed attempt.
	InitialDelay time.Duration
	// MaxDelay bounds the grown delay.
	MaxDelay time.Duration
	// Multiplier grows the delay after every retry.
	Multiplier float64
	// Jitter is the largest fraction of a delay that may be randomly
	// shaved off, spreading simultaneous retriers apart. Clamped to [0,1].
	Jitter float64
}

// Default returns the policy tuned for exchange API calls.
func Default() Policy {
	return Policy{
		Attempts:     4,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     8 * time.Second,
		Multiplier:   2,
		Jitter:       0.2,
	}
}

func (p Policy) normalized() Policy {
	d := Default()
	if p.Attempts <= 0 {
		p.Attempts = d.Attempts
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = d.InitialDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = d.MaxDelay
	}
	if p.Multiplier < 1 {
		p.Multiplier = d.Multiplier
	}
	if p.Jitter < 0 {
		p.Jitter = 0
	}
	if p.Jitter > 1 {
		p.Jitter = 1
	}
	return p
}

// Do runs fn until it succeeds or the attempts run out, sleeping between
// tries. A canceled context cuts the wait short and stops further attempts.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p = p.normalized()

	delay := p.InitialDelay
	var err error

	for attempt := 0; attempt < p.Attempts; attempt++ {
		if attempt > 0 {
			sleep := delay
			if p.Jitter > 0 {
				sleep -= time.Duration(rand.Float64() * p.Jitter * float64(delay))
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(sleep):
			}

			delay = time.Duration(float64(delay) * p.Multiplier)
			if delay > p.MaxDelay {
				delay = p.MaxDelay
			}
		}

		if err = fn(ctx); err == nil {
			return nil
		}
	}

	return err
}

// Data runs fn under the same retry rules and hands back its value.
func Data[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := p.Do(ctx, func(ctx context.Context) error {
		var ferr error
		out, ferr = fn(ctx)
		return ferr
	})
	return out, err
}
