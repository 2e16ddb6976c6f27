// Package blockingqueue provides a bounded FIFO queue for producer/consumer
// coordination.
//
// Put blocks while the queue is full and Take blocks while it is empty. The
// queue is a monitor: one mutex guards the elements, and two condition
// variables (not full, not empty) park waiters. Waiters always re-check their
// condition after waking, and every state change broadcasts, so any number of
// producers and consumers may share one Queue.
//
// Blocking calls accept a context. Cancellation while parked returns an error
// matching ErrCanceled; Close wakes everyone with ErrClosed.
package blockingqueue
