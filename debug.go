package kestrel

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when the engine runs in debug mode.
type debugStats struct {
	buildTime   time.Duration
	sortTime    time.Duration
	submitTime  time.Duration
	bufferCount int
	drawCount   int
	skipped     int
}

// debugLog writes frame stats at debug level.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	total := stats.buildTime + stats.sortTime + stats.submitTime
	e.log.Debug("frame",
		zap.Uint64("frame", e.sched.Frame()),
		zap.Duration("build", stats.buildTime),
		zap.Duration("sort", stats.sortTime),
		zap.Duration("submit", stats.submitTime),
		zap.Duration("total", total),
		zap.Int("buffers", stats.bufferCount),
		zap.Int("draws", stats.drawCount),
		zap.Int("skipped", stats.skipped),
	)
}

// debugMaxTimelines is the registry size that triggers a leak warning.
const debugMaxTimelines = 4096

// debugMaxObjects is the object count that triggers a warning.
const debugMaxObjects = 10000

func (e *Engine) debugCheckObjectCount() {
	if len(e.objects) == debugMaxObjects {
		e.log.Warn("object count reached threshold",
			zap.Int("objects", len(e.objects)),
			zap.Int("threshold", debugMaxObjects))
	}
}
