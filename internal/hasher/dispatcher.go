// Package hasher runs password hashing and verification on a fixed pool of
// worker goroutines so that Argon2id work is bounded regardless of how many
// requests are in flight.
package hasher

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

var ErrStopped = errors.New("hasher: dispatcher stopped")

// Job is a closed interface; only types in this package can implement it.
type Job interface {
	execute()
}

// Dispatcher manages a fixed pool of worker goroutines that process hash jobs.
type Dispatcher struct {
	workers  int
	jobs     chan Job
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with the given number of workers
// (runtime.NumCPU() when workers <= 0) and a job buffer twice that size.
func NewDispatcher(workers int) *Dispatcher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Dispatcher{
		workers: workers,
		jobs:    make(chan Job, 2*workers),
		quit:    make(chan struct{}),
	}
}

// Start launches the worker goroutines.
func (d *Dispatcher) Start() {
	d.wg.Add(d.workers)
	for range d.workers {
		go d.worker()
	}
}

// Stop signals the workers to exit and waits for them. Jobs still queued are
// dropped; their submitters observe ErrStopped. Safe to call more than once.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.quit) })
	d.wg.Wait()
}

// Submit enqueues a job, waiting for buffer space until ctx is done or the
// dispatcher is stopped.
func (d *Dispatcher) Submit(ctx context.Context, job Job) error {
	select {
	case <-d.quit:
		return ErrStopped
	default:
	}

	select {
	case d.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.quit:
		return ErrStopped
	}
}

// Hash hashes password on the pool and waits for the result.
func (d *Dispatcher) Hash(ctx context.Context, password string) (string, error) {
	result := make(chan HashResult, 1)
	if err := d.Submit(ctx, HashJob{Password: password, Result: result}); err != nil {
		return "", err
	}

	select {
	case hr := <-result:
		return hr.Hash, hr.Err
	case <-ctx.Done():
		return "", ctx.Err()
	case <-d.quit:
		return "", ErrStopped
	}
}

// Verify checks password against storedHash on the pool and waits for the result.
func (d *Dispatcher) Verify(ctx context.Context, password, storedHash string) (bool, error) {
	result := make(chan VerifyResult, 1)
	if err := d.Submit(ctx, VerifyJob{Password: password, StoredHash: storedHash, Result: result}); err != nil {
		return false, err
	}

	select {
	case vr := <-result:
		return vr.Match, vr.Err
	case <-ctx.Done():
		return false, ctx.Err()
	case <-d.quit:
		return false, ErrStopped
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case <-d.quit:
			return
		case job := <-d.jobs:
			job.execute()
		}
	}
}
