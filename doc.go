// Package boundedqueue provides a generic fixed-capacity FIFO ring buffer.
//
// Buffer is the storage layer: it never grows, Push reports false when full
// and Pop reports false when empty. It performs no locking. For a
// goroutine-safe queue whose Put blocks while full and whose Take blocks while
// empty, see the blockingqueue subpackage, which wraps a Buffer with a mutex
// and two condition variables.
package boundedqueue
