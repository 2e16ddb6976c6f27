package blockingqueue

import (
	"context"
	"errors"

	base "github.com/xyhelper/boundedqueue"
)

var (
	// ErrInvalidCapacity is returned by New when capacity <= 0.
	ErrInvalidCapacity = base.ErrInvalidCapacity

	// ErrClosed is returned by Put, Take, TryPut and TryTake once the queue
	// has been closed. Callers should treat it as a normal termination signal.
	ErrClosed = errors.New("blockingqueue: queue closed")

	// ErrCanceled is returned by Put and Take when the caller's context ended
	// while waiting. The returned error also wraps the context's error, so
	// errors.Is(err, context.DeadlineExceeded) and the like still work.
	ErrCanceled = errors.New("blockingqueue: wait canceled")
)

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsTerminal reports whether err is one of the errors that should end a
// producer or consumer loop cleanly: ErrClosed or ErrCanceled.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrClosed) || errors.Is(err, ErrCanceled)
}
