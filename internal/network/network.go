// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package network implements the retry and rate limiting layer of the Open
// Cloud transport.
package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/trace"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// defNumAttempts is the default number of retry attempts.
const (
	defNumAttempts = 3
)

var (
	// maxAllowedWaitTime is the maximum time to wait for a transient error.
	// The wait time for a transient error depends on the current retry
	// attempt number and is calculated as: (attempt+2)^3 seconds, capped at
	// maxAllowedWaitTime.
	maxAllowedWaitTime = 5 * time.Minute
	lg                 = slog.Default()
	// waitFn returns the amount of time to wait before retrying depending on
	// the current attempt.  This variable exists to reduce the test time.
	waitFn    = cubicWait
	netWaitFn = expWait

	mu sync.RWMutex
)

// ErrRetryFailed is returned if number of retry attempts exceeded the retry
// attempts limit and function wasn't able to complete without errors.  The
// error returned by the last attempt is wrapped alongside it.
var ErrRetryFailed = errors.New("callback was unable to complete without errors within the allowed number of retries")

// RateLimitedError is returned by the callback when the server responded
// with 429 Too Many Requests.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// StatusCodeError is returned by the callback when the server responded with
// the unexpected HTTP status.
type StatusCodeError struct {
	Code   int
	Status string
}

func (e StatusCodeError) Error() string {
	return fmt.Sprintf("server returned %s", e.Status)
}

// defRetryAfter is used when the server omitted or garbled the Retry-After
// header.
const defRetryAfter = 5 * time.Second

// ParseRetryAfter parses the value of the Retry-After header, which is
// either the number of seconds, or an HTTP date.
func ParseRetryAfter(v string) time.Duration {
	if v == "" {
		return defRetryAfter
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
		return 0
	}
	return defRetryAfter
}

// WithRetry will run the callback function fn. If the function returns
// *RateLimitedError, it will delay, and then call it again up to
// maxAttempts times. Server errors (5xx and 408) and network read/write
// errors are retried with backoff. It will return an error if it runs out of
// attempts.
func WithRetry(ctx context.Context, lim *rate.Limiter, maxAttempts int, fn func() error) error {
	var (
		ok      bool
		lastErr error
	)
	if maxAttempts == 0 {
		maxAttempts = defNumAttempts
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var err error
		trace.WithRegion(ctx, "WithRetry.wait", func() {
			err = lim.Wait(ctx)
		})
		if err != nil {
			return err
		}

		cbErr := fn()
		if cbErr == nil {
			ok = true
			break
		}
		lastErr = cbErr

		tracelogf(ctx, "error", "WithRetry: %[1]s (%[1]T) after %[2]d attempts", cbErr, attempt+1)
		var (
			rle *RateLimitedError
			sce StatusCodeError
			ne  *net.OpError
		)
		var delay time.Duration
		switch {
		case errors.As(cbErr, &rle):
			delay = rle.RetryAfter
			tracelogf(ctx, "info", "got rate limited, sleeping %s", delay)
		case errors.As(cbErr, &sce) && isRecoverable(sce.Code):
			// possibly transient error
			delay = waitFn(attempt)
			tracelogf(ctx, "info", "got server error %d, sleeping %s", sce.Code, delay)
		case errors.As(cbErr, &ne) && (ne.Op == "read" || ne.Op == "write"):
			// possibly transient error
			delay = netWaitFn(attempt)
			tracelogf(ctx, "info", "got network error %s, sleeping %s", ne.Op, delay)
		default:
			return fmt.Errorf("callback error: %w", cbErr)
		}
		if attempt == maxAttempts-1 {
			break
		}
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}
	if !ok {
		return fmt.Errorf("%w: %w", ErrRetryFailed, lastErr)
	}
	return nil
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-t.C:
		return nil
	}
}

// isRecoverable returns true if the status code is a recoverable error.
func isRecoverable(statusCode int) bool {
	return (statusCode >= http.StatusInternalServerError && statusCode <= 599 && statusCode != 501) || statusCode == 408
}

// cubicWait is the wait time function.  Time is calculated as (x+2)^3 seconds,
// where x is the current attempt number. The maximum wait time is capped at 5
// minutes.
func cubicWait(attempt int) time.Duration {
	x := attempt + 2 // this is to ensure that we sleep at least 8 seconds.
	delay := time.Duration(x*x*x) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

func expWait(attempt int) time.Duration {
	delay := time.Duration(2<<uint(attempt)) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

func tracelogf(ctx context.Context, category string, format string, a ...any) {
	mu.RLock()
	defer mu.RUnlock()

	trace.Logf(ctx, category, format, a...)
	lg.DebugContext(ctx, fmt.Sprintf(format, a...), "category", category)
}

// SetLogger sets the package logger.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = slog.Default()
	}
	lg = l
}

// SetMaxAllowedWaitTime sets the maximum time to wait for a transient error.
func SetMaxAllowedWaitTime(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	maxAllowedWaitTime = d
}
