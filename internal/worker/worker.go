package worker

import (
	"context"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool bounds how many tasks run at once. The gateway uses it to cap
// concurrent calls to the AI provider.
type Pool interface {
	Submit(Task)
	Do(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

// Submit enqueues a task without waiting for it to run.
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Do enqueues a task and waits for it to finish. If ctx ends first, Do
// returns ctx.Err(); an already-running task is abandoned, not interrupted.
func (p *pool) Do(ctx context.Context, t Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	wrapped := func() {
		defer close(done)
		t()
	}

	select {
	case p.jobs <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
