package services

import (
	"context"
	"log"
	"strings"
	"time"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = time.Second
)

// IsRateLimitError sniffs the error text for rate-limit indicators. Providers
// disagree on error types, so this is deliberately string-based: HTTP 429,
// OpenAI-style "Too Many Requests" and Gemini-style "Resource exhausted" all
// count.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "Too Many Requests") ||
		strings.Contains(msg, "Resource exhausted")
}

// RetryWithBackoff runs op up to maxRetries times, doubling the wait between
// attempts (initialDelay * 2^attempt). Only rate-limit-shaped errors are
// retried; anything else propagates immediately. The wait is cooperative: it
// respects ctx cancellation and never blocks other invocations. No jitter.
func RetryWithBackoff[T any](ctx context.Context, op func() (T, error), maxRetries int, initialDelay time.Duration) (T, error) {
	var zero T
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if initialDelay <= 0 {
		initialDelay = DefaultInitialDelay
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		if !IsRateLimitError(err) {
			return zero, err
		}

		lastErr = err
		if attempt == maxRetries-1 {
			break
		}

		delay := initialDelay * (1 << attempt)
		log.Printf("⚠️  Rate limit hit, retrying in %v... (Attempt %d/%d)\n", delay, attempt+1, maxRetries)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}
