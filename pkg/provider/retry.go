package provider

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

// RetryableClient wraps a chat client with retry logic for transient failures.
// Construction is never retried, only prompts sent through the client.
type RetryableClient struct {
	client   Client
	repeater *repeater.Repeater
	name     string
}

// RetryOptions configures retry behavior
type RetryOptions struct {
	Attempts int
	Delay    time.Duration
	MaxDelay time.Duration
	Factor   float64
}

// NewRetryableClient creates a client wrapper with retry logic
func NewRetryableClient(c Client, opts RetryOptions) Client {
	if opts.Attempts <= 1 {
		return c
	}

	// create repeater with exponential backoff
	// the Factor controls the backoff type:
	// 1.0 = constant delay (fixed)
	// > 1.0 = exponential backoff
	var rep *repeater.Repeater

	if opts.Factor <= 1.0 {
		// fixed delay strategy
		rep = repeater.NewFixed(opts.Attempts, opts.Delay)
	} else {
		// exponential backoff with jitter
		rep = repeater.NewBackoff(opts.Attempts, opts.Delay,
			repeater.WithMaxDelay(opts.MaxDelay),
			repeater.WithBackoffType(repeater.BackoffExponential),
			repeater.WithJitter(0.1), // 10% jitter to avoid thundering herd
		)
	}

	// set error classifier to determine retryable errors
	rep.SetErrorClassifier(isRetryableError)

	return &RetryableClient{
		client:   c,
		repeater: rep,
		name:     c.Name(),
	}
}

// Name returns the wrapped client name
func (r *RetryableClient) Name() string {
	return r.name
}

// Model returns the wrapped client model
func (r *RetryableClient) Model() string {
	return r.client.Model()
}

// Generate sends a prompt through the wrapped client, retrying transient errors
func (r *RetryableClient) Generate(ctx context.Context, prompt string) (string, error) {
	var result string
	var attempt int32

	err := r.repeater.Do(ctx, func() error {
		currentAttempt := atomic.AddInt32(&attempt, 1)
		text, err := r.client.Generate(ctx, prompt)
		if err != nil {
			// log based on error type (classifier will handle retry decision)
			if !isRetryableError(err) {
				lgr.Printf("[DEBUG] %s: non-retryable error on attempt %d: %v", r.name, currentAttempt, err)
			} else {
				lgr.Printf("[INFO] %s: retryable error on attempt %d: %v", r.name, currentAttempt, err)
			}
			return err
		}

		result = text
		return nil
	})

	if err != nil {
		return "", err
	}

	stats := r.repeater.Stats()
	if stats.Attempts > 1 {
		lgr.Printf("[INFO] %s: succeeded after %d attempts (total duration: %v)",
			r.name, stats.Attempts, stats.TotalDuration)
	}

	return result, nil
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// definitely retryable errors
	retryablePatterns := []string{
		"429",                // rate limit
		"rate limit",         // rate limit exceeded
		"500",                // internal server error
		"502",                // bad gateway
		"503",                // service unavailable
		"504",                // gateway timeout
		"timeout",            // request timeout
		"deadline exceeded",  // context deadline
		"connection refused", // network error
		"connection reset",   // network error
		"broken pipe",        // network error
		"temporary failure",  // generic temporary
		"resource exhausted", // quota/limit
	}

	// check for retryable patterns
	errLower := strings.ToLower(errStr)
	for _, pattern := range retryablePatterns {
		if strings.Contains(errLower, pattern) {
			// special case: context deadline could be from cancellation
			if pattern == "deadline exceeded" && strings.Contains(errLower, "context canceled") {
				return false // don't retry on explicit cancellation
			}
			return true
		}
	}

	// non-retryable errors
	nonRetryablePatterns := []string{
		"401",              // unauthorized
		"authentication",   // auth failed
		"400",              // bad request
		"invalid",          // invalid request/model/etc
		"not found",        // model not found
		"context length",   // token limit
		"token limit",      // token limit
		"maximum context",  // token limit
		"context canceled", // explicit cancellation
		"model",            // model issues (unless it's a timeout)
	}

	// check for non-retryable patterns
	for _, pattern := range nonRetryablePatterns {
		if strings.Contains(errLower, pattern) {
			// exception: if it contains both "model" and "timeout", it's retryable
			if pattern == "model" && strings.Contains(errLower, "timeout") {
				return true
			}
			return false
		}
	}

	// default to not retrying unknown errors
	return false
}

// WrapWithRetry wraps a client with retry logic if configured, filling in delay defaults
func WrapWithRetry(c Client, opts RetryOptions) Client {
	if opts.Attempts <= 1 {
		return c // no retry needed
	}

	if opts.Delay <= 0 {
		opts.Delay = time.Second
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 30 * time.Second
	}
	if opts.Factor <= 0 {
		opts.Factor = 2
	}
	// ensure max delay is at least as large as initial delay
	if opts.MaxDelay < opts.Delay {
		opts.MaxDelay = opts.Delay
	}

	lgr.Printf("[DEBUG] wrapping %s client with retry: attempts=%d, delay=%v, max_delay=%v, factor=%.1f",
		c.Name(), opts.Attempts, opts.Delay, opts.MaxDelay, opts.Factor)

	return NewRetryableClient(c, opts)
}
