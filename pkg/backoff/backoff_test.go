package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPolicyDo(t *testing.T) {
	t.Run("success on first attempt", func(t *testing.T) {
		attempts := 0
		err := Policy{}.Do(context.Background(), func(ctx context.Context) error {
			attempts++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("success after transient failures", func(t *testing.T) {
		p := Policy{Attempts: 4, InitialDelay: time.Millisecond}
		attempts := 0
		err := p.Do(context.Background(), func(ctx context.Context) error {
			attempts++
			if attempts < 3 {
				return errors.New("transient")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("attempts exhausted returns last error", func(t *testing.T) {
		errFinal := errors.New("still down")
		p := Policy{Attempts: 3, InitialDelay: time.Millisecond}
		attempts := 0
		err := p.Do(context.Background(), func(ctx context.Context) error {
			attempts++
			if attempts == 3 {
				return errFinal
			}
			return errors.New("transient")
		})
		assert.ErrorIs(t, err, errFinal)
		assert.Equal(t, 3, attempts)
	})

	t.Run("context cancellation stops retries", func(t *testing.T) {
		p := Policy{Attempts: 5, InitialDelay: 100 * time.Millisecond}
		ctx, cancel := context.WithCancel(context.Background())

		attempts := 0
		err := p.Do(ctx, func(ctx context.Context) error {
			attempts++
			if attempts == 2 {
				cancel()
			}
			return errors.New("transient")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 2, attempts)
	})

	t.Run("delay never exceeds the cap", func(t *testing.T) {
		p := Policy{
			Attempts:     4,
			InitialDelay: time.Millisecond,
			MaxDelay:     2 * time.Millisecond,
			Multiplier:   10,
		}
		start := time.Now()
		err := p.Do(context.Background(), func(ctx context.Context) error {
			return errors.New("transient")
		})
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})
}

func TestData(t *testing.T) {
	t.Run("success returns value", func(t *testing.T) {
		val, err := Data(context.Background(), Policy{}, func(ctx context.Context) (string, error) {
			return "payload", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "payload", val)
	})

	t.Run("failure returns zero value and error", func(t *testing.T) {
		p := Policy{Attempts: 2, InitialDelay: time.Millisecond}
		val, err := Data(context.Background(), p, func(ctx context.Context) (int, error) {
			return 0, errors.New("transient")
		})
		assert.Error(t, err)
		assert.Zero(t, val)
	})
}
