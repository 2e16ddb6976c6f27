package boundedqueue

// Blocking: the monitor pattern
//
// Buffer itself never blocks. blockingqueue.Queue layers blocking semantics on
// top using one sync.Mutex and two sync.Cond values bound to it:
//
//   - notFull parks producers while Len() == Cap().
//   - notEmpty parks consumers while Len() == 0.
//
// Rules the implementation follows:
//   - Wait in a loop. A woken goroutine re-acquires the mutex and re-checks
//     its predicate; another goroutine may have taken the slot or item first.
//   - Broadcast after every successful state change. With several consumers
//     parked on notEmpty, a single Signal can wake one that loses the race
//     while another satisfiable waiter stays parked.
//   - Never hold the mutex while parked. sync.Cond.Wait releases it.
//   - Closing broadcasts both conditions so that no goroutine stays parked.
//   - Context cancellation is delivered by context.AfterFunc, which takes the
//     mutex and broadcasts the condition the caller is waiting on.
//
// Minimal outline:
//
//	type BQ struct {
//	    mu       sync.Mutex
//	    notFull  *sync.Cond
//	    notEmpty *sync.Cond
//	    buf      *boundedqueue.Buffer[string]
//	}
//
//	func (b *BQ) Put(v string) {
//	    b.mu.Lock()
//	    defer b.mu.Unlock()
//	    for b.buf.IsFull() {
//	        b.notFull.Wait()
//	    }
//	    b.buf.Push(v)
//	    b.notEmpty.Broadcast()
//	}
//
//	func (b *BQ) Take() string {
//	    b.mu.Lock()
//	    defer b.mu.Unlock()
//	    for b.buf.IsEmpty() {
//	        b.notEmpty.Wait()
//	    }
//	    v, _ := b.buf.Pop()
//	    b.notFull.Broadcast()
//	    return v
//	}
