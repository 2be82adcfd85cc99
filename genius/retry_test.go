package genius

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryWithBackoff(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), func() error {
			calls++
			return nil
		}, 3, time.Millisecond, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, 5, time.Millisecond, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := RetryWithBackoff(context.Background(), func() error {
			calls++
			return boom
		}, 3, time.Millisecond, nil)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable errors fail immediately", func(t *testing.T) {
		fatal := errors.New("fatal")
		calls := 0
		err := RetryWithBackoff(context.Background(), func() error {
			calls++
			return fatal
		}, 5, time.Millisecond, func(err error) bool {
			return !errors.Is(err, fatal)
		})
		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("rejects non-positive attempt counts", func(t *testing.T) {
		err := RetryWithBackoff(context.Background(), func() error { return nil }, 0, time.Millisecond, nil)
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
	})

	t.Run("honors context cancellation between attempts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			cancel()
			return errors.New("transient")
		}, 5, 10*time.Second, nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
