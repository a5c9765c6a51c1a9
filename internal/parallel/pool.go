// Package parallel provides the bounded worker pool used to run independent
// solver-backed jobs (such as drawing many solvable hands) concurrently,
// with backpressure so a large batch never queues unbounded work.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when trying to submit tasks to a shutdown pool.
var ErrPoolShutdown = errors.New("worker pool has been shutdown")

// WorkerPool manages a fixed set of goroutines pulling tasks from a
// buffered channel. Submit blocks once the buffer is full.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	pending      sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2), // Buffered channel for backpressure
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// Workers returns the number of worker goroutines.
func (wp *WorkerPool) Workers() int {
	return wp.maxWorkers
}

// worker is the main worker loop that processes tasks from the channel.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			task()
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit queues task for execution. If the queue is full, the call blocks
// until a worker frees a slot, ctx is done, or the pool shuts down.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	if task == nil {
		return nil
	}
	select {
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	default:
	}

	wp.pending.Add(1)
	wrapped := func() {
		defer wp.pending.Done()
		task()
	}
	select {
	case wp.taskChan <- wrapped:
		return nil
	case <-ctx.Done():
		wp.pending.Done()
		return ctx.Err()
	case <-wp.shutdownChan:
		wp.pending.Done()
		return ErrPoolShutdown
	}
}

// Wait blocks until every successfully submitted task has finished.
func (wp *WorkerPool) Wait() {
	wp.pending.Wait()
}

// Shutdown stops the workers after their current task. Tasks still queued
// are not run; call Wait first to drain them.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}
