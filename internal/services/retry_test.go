package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRateLimitError(t *testing.T) {
	assert.False(t, IsRateLimitError(nil))
	assert.False(t, IsRateLimitError(errors.New("connection refused")))
	assert.True(t, IsRateLimitError(errors.New("provider returned status 429: slow down")))
	assert.True(t, IsRateLimitError(errors.New("Too Many Requests")))
	assert.True(t, IsRateLimitError(errors.New("rpc error: Resource exhausted")))
}

func TestRetryWithBackoff(t *testing.T) {
	rateLimitErr := errors.New("provider returned status 429: rate limited")

	t.Run("returns on first success", func(t *testing.T) {
		calls := 0
		result, err := RetryWithBackoff(context.Background(), func() (string, error) {
			calls++
			return "ok", nil
		}, 3, time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries rate limit errors then succeeds", func(t *testing.T) {
		calls := 0
		start := time.Now()
		result, err := RetryWithBackoff(context.Background(), func() (string, error) {
			calls++
			if calls <= 2 {
				return "", rateLimitErr
			}
			return "ok", nil
		}, 3, 10*time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, calls)
		// Waited 10ms then 20ms between the three attempts.
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		_, err := RetryWithBackoff(context.Background(), func() (string, error) {
			calls++
			return "", boom
		}, 3, time.Millisecond)

		assert.Equal(t, boom, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after maxRetries", func(t *testing.T) {
		calls := 0
		_, err := RetryWithBackoff(context.Background(), func() (string, error) {
			calls++
			return "", rateLimitErr
		}, 3, time.Millisecond)

		assert.Equal(t, rateLimitErr, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("cancellation cuts the wait short", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		go func() {
			time.Sleep(5 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		_, err := RetryWithBackoff(ctx, func() (string, error) {
			calls++
			return "", rateLimitErr
		}, 3, 5*time.Second)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
		assert.Less(t, time.Since(start), time.Second)
	})
}
