// Package dispatch hands work from background goroutines back to the game
// goroutine, which owns all renderer state.
package dispatch

import "sync"

// Queue is a FIFO of closures. Post may be called from any goroutine; Drain
// runs on the game goroutine once per tick.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	wg      sync.WaitGroup
}

func NewQueue() *Queue {
	return &Queue{}
}

// Post enqueues fn.
func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Go runs task on its own goroutine and posts the closure it returns.
// There is no cancellation: a slow task finishing after a newer one still
// gets its closure run, so the last completion wins.
func (q *Queue) Go(task func() func()) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if fn := task(); fn != nil {
			q.Post(fn)
		}
	}()
}

// Drain runs every closure posted so far, in post order, and returns how
// many ran. Closures posted while draining wait for the next call.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Wait blocks until every task started with Go has finished and posted.
func (q *Queue) Wait() {
	q.wg.Wait()
}
