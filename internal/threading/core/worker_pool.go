package core

import (
	"context"
	"runtime"
	"sync"

	"spellarena/internal/mathutil"
)

// inlineThreshold is the workload below which ranges run on the caller's goroutine.
const inlineThreshold = 8

// WorkerPool manages a pool of worker goroutines for parallel processing
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// CreateDefaultWorkerPool creates and starts a pool sized to the CPU count
func CreateDefaultWorkerPool() *WorkerPool {
	pool := NewWorkerPool(0)
	pool.Start()
	return pool
}

// Start initializes and starts all worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
		case <-wp.quit:
			wp.drain()
			return
		}
	}
}

// drain runs whatever is still queued, without blocking.
func (wp *WorkerPool) drain() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
		default:
			return
		}
	}
}

// Stop shuts down the worker pool. Safe to call more than once.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

func (wp *WorkerPool) stopped() bool {
	select {
	case <-wp.quit:
		return true
	default:
		return false
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// ParallelFor executes fn for every index in [start, end) and waits for completion.
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	wp.ParallelForWithContext(context.Background(), start, end, fn)
}

// ParallelForWithContext executes fn for every index in [start, end), stopping
// early when ctx is cancelled. Each index is visited by exactly one worker.
func (wp *WorkerPool) ParallelForWithContext(ctx context.Context, start, end int, fn func(int)) {
	if start >= end {
		return
	}

	total := end - start
	if total <= inlineThreshold {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			fn(i)
		}
		return
	}

	// Batches of 4..32 keep the queue short without starving workers
	batchSize := mathutil.IntClamp(total/wp.numWorkers, 4, 32)

	var wg sync.WaitGroup
	for i := start; i < end; i += batchSize {
		chunkStart := i
		chunkEnd := mathutil.IntMin(i+batchSize, end)

		wg.Add(1)
		job := func() {
			defer wg.Done()
			for j := chunkStart; j < chunkEnd; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					fn(j)
				}
			}
		}

		if wp.stopped() {
			job()
			continue
		}
		select {
		case wp.jobQueue <- job:
		case <-wp.quit:
			job()
		}
	}

	// A send can win the select against a closed quit, so jobs may land
	// after the workers have drained and exited.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-wp.quit:
		wp.drain()
		<-done
	}
}
