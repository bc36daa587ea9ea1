// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retry holds the fixed-interval retry policy applied to every
// outbound API call of an export run.
//
// The policy is an explicit value injected into each call site, so the
// number of attempts and the delay between them are visible where the call is
// made and can be shortened in tests.
package retry

import (
	"context"
	"errors"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

const (
	// DefaultMaxAttempts is the total number of attempts, including the first one.
	DefaultMaxAttempts = 3
	// DefaultDelay is the fixed pause between consecutive attempts.
	DefaultDelay = 2000 * time.Millisecond
)

// Policy retries a failing call a fixed number of times with a fixed delay.
// There is no jitter and no growth of the delay.
type Policy struct {
	// MaxAttempts is the total number of attempts. Values below 1 mean 1.
	MaxAttempts uint64
	// Delay is the pause between two consecutive attempts.
	Delay time.Duration

	// onRetry is called before each pause; used by tests and for logging.
	onRetry func(attempt uint64, err error)
}

// DefaultPolicy returns the policy used by the exporter: 3 attempts, 2s apart.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, Delay: DefaultDelay}
}

// NewPolicy returns a policy with the given attempts and delay.
func NewPolicy(maxAttempts uint64, delay time.Duration) Policy {
	return Policy{MaxAttempts: maxAttempts, Delay: delay}
}

// OnRetry returns a copy of p that calls fn after every failed attempt that
// will be retried. attempt is 1-based.
func (p Policy) OnRetry(fn func(attempt uint64, err error)) Policy {
	p.onRetry = fn
	return p
}

// Do runs fn until it succeeds, returns a [Permanent] error, or the attempts
// are exhausted. The error of the last attempt is returned unwrapped.
// Cancelling ctx stops the pause between attempts.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.Delay
	if delay <= 0 {
		// go-retry refuses a non-positive constant delay.
		delay = time.Nanosecond
	}

	backoff := goretry.WithMaxRetries(attempts-1, goretry.NewConstant(delay))

	var attempt uint64
	err := goretry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		if ctx.Err() != nil {
			return err
		}

		if attempt < attempts && p.onRetry != nil {
			p.onRetry(attempt, err)
		}
		return goretry.RetryableError(err)
	})

	return err
}

// Permanent marks err as not worth retrying: [Policy.Do] returns it at once.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}
