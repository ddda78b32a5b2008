package llm

import (
	"context"
	"errors"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

// permanentError stops the repeater
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

func (e *permanentError) Is(target error) bool {
	_, ok := target.(*permanentError)
	return ok
}

// withRetry calls fn up to retries+1 times. Only transient provider errors are retried,
// anything else is returned right away.
func withRetry(ctx context.Context, name string, retries int, base time.Duration, fn func() error) error {
	attempt := 0
	// linear backoff without jitter or cap: base, 2*base, 3*base...
	rpt := repeater.NewBackoff(retries+1, base, repeater.WithBackoffType(repeater.BackoffLinear),
		repeater.WithJitter(0), repeater.WithMaxDelay(0))
	err := rpt.Do(ctx, func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if !IsTransient(err) || attempt > retries {
			return &permanentError{err: err}
		}
		lgr.Printf("[WARN] %s failed on attempt %d, retrying in %v: %v", name, attempt, time.Duration(attempt)*base, err)
		return err
	}, &permanentError{})

	var perm *permanentError
	if errors.As(err, &perm) {
		return perm.err
	}
	return err
}
