package monitoring

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame timing and arena population counters
type PerformanceMonitor struct {
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame

	raycastTime      atomic.Uint64
	entityUpdateTime atomic.Uint64

	enemiesAlive      atomic.Int32
	bossesAlive       atomic.Int32
	projectilesActive atomic.Int32
	kills             atomic.Uint64

	mutex        sync.RWMutex
	totalFrameNs float64
	startTime    time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{startTime: time.Now()}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: pm, startTime: time.Now()}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	frameTime := time.Since(ft.startTime)
	ft.monitor.frameTime.Store(uint64(frameTime.Nanoseconds()))
	ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.totalFrameNs += float64(frameTime.Nanoseconds())
	ft.monitor.mutex.Unlock()
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	switch name {
	case "raycast":
		pm.raycastTime.Store(uint64(duration.Nanoseconds()))
	case "entity_update":
		pm.entityUpdateTime.Store(uint64(duration.Nanoseconds()))
	}
	return duration
}

// UpdateGameMetrics records the live population after a tick
func (pm *PerformanceMonitor) UpdateGameMetrics(enemies, bosses, projectiles int) {
	pm.enemiesAlive.Store(int32(enemies))
	pm.bossesAlive.Store(int32(bosses))
	pm.projectilesActive.Store(int32(projectiles))
}

// AddKills adds to the running kill counter
func (pm *PerformanceMonitor) AddKills(n int) {
	if n > 0 {
		pm.kills.Add(uint64(n))
	}
}

// GameMetrics is a point-in-time copy of the counters
type GameMetrics struct {
	Frames            uint64
	LastFrame         time.Duration
	AverageFrame      time.Duration
	LastRaycast       time.Duration
	LastEntityUpdate  time.Duration
	EnemiesAlive      int
	BossesAlive       int
	ProjectilesActive int
	Kills             uint64
	FramesPerSecond   float64
	Uptime            time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() GameMetrics {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	frames := pm.frameCount.Load()
	frameTime := pm.frameTime.Load()

	fps := 0.0
	if frameTime > 0 {
		fps = 1e9 / float64(frameTime)
	}
	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(pm.totalFrameNs / float64(frames))
	}

	return GameMetrics{
		Frames:            frames,
		LastFrame:         time.Duration(frameTime),
		AverageFrame:      avg,
		LastRaycast:       time.Duration(pm.raycastTime.Load()),
		LastEntityUpdate:  time.Duration(pm.entityUpdateTime.Load()),
		EnemiesAlive:      int(pm.enemiesAlive.Load()),
		BossesAlive:       int(pm.bossesAlive.Load()),
		ProjectilesActive: int(pm.projectilesActive.Load()),
		Kills:             pm.kills.Load(),
		FramesPerSecond:   fps,
		Uptime:            time.Since(pm.startTime),
	}
}

// Summary formats the metrics for a log line
func (m GameMetrics) Summary() string {
	return fmt.Sprintf("frames=%d avg_frame=%s raycast=%s enemies=%d bosses=%d projectiles=%d kills=%d",
		m.Frames, m.AverageFrame.Round(time.Microsecond), m.LastRaycast.Round(time.Microsecond),
		m.EnemiesAlive, m.BossesAlive, m.ProjectilesActive, m.Kills)
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.entityUpdateTime.Store(0)
	pm.enemiesAlive.Store(0)
	pm.bossesAlive.Store(0)
	pm.projectilesActive.Store(0)
	pm.kills.Store(0)

	pm.mutex.Lock()
	pm.totalFrameNs = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
