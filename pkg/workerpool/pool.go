// Package workerpool runs a handler over submitted jobs on a fixed number of
// goroutines.
package workerpool

import (
	"context"
	"sync"
)

type Pool[T any] struct {
	ctx    context.Context
	cancel context.CancelFunc
	jobs   chan T
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

type Handler[T any] func(ctx context.Context, job T)

// New starts workers goroutines (at least one) running h.
func New[T any](ctx context.Context, workers int, h Handler[T]) *Pool[T] {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &Pool[T]{
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(chan T, workers*2+8),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-p.ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok || p.ctx.Err() != nil {
						return
					}
					h(p.ctx, job)
				}
			}
		}()
	}
	return p
}

// Submit queues job. It returns false once the pool is closed or its
// context is done.
func (p *Pool[T]) Submit(job T) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case <-p.ctx.Done():
		return false
	case p.jobs <- job:
		return true
	}
}

// Close stops accepting jobs and waits for the queued ones to finish.
func (p *Pool[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
	p.cancel()
}

// Stop abandons queued jobs and waits for running handlers to return.
func (p *Pool[T]) Stop() {
	p.cancel()
	p.Close()
}
