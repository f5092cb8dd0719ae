package threading

import (
	"spellarena/internal/config"
	"spellarena/internal/threading/core"
	"spellarena/internal/threading/monitoring"
)

// ThreadingComponents holds the worker pool and the performance monitor
type ThreadingComponents struct {
	WorkerPool         *core.WorkerPool
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents starts a worker pool when parallel raycasting is enabled
func NewThreadingComponents(cfg config.ThreadingConfig) *ThreadingComponents {
	tc := &ThreadingComponents{
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
	switch {
	case !cfg.ParallelRaycast:
	case cfg.Workers <= 0:
		tc.WorkerPool = core.CreateDefaultWorkerPool()
	default:
		tc.WorkerPool = core.NewWorkerPool(cfg.Workers)
		tc.WorkerPool.Start()
	}
	return tc
}

// Shutdown gracefully shuts down all threading components
func (tc *ThreadingComponents) Shutdown() {
	if tc.WorkerPool != nil {
		tc.WorkerPool.Stop()
	}
}
