package viewer

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Scheduler owns the frame loop. It ticks at a fixed rate whether or not a
// model is active; idle ticks are cheap no-ops inside the viewer. Stopping
// the scheduler stops the schedule itself, not just the per-tick work: the
// running flag is checked before and after every tick.
type Scheduler struct {
	viewer   *Viewer
	log      *zap.Logger
	interval time.Duration
	frames   chan Frame
	running  atomic.Bool
}

// NewScheduler creates a scheduler ticking at ticksPerSecond.
func NewScheduler(v *Viewer, ticksPerSecond int, log *zap.Logger) *Scheduler {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &Scheduler{
		viewer:   v,
		log:      log,
		interval: time.Second / time.Duration(ticksPerSecond),
		frames:   make(chan Frame, 64),
	}
}

// Frames returns the channel on which non-idle frames are sent.
func (s *Scheduler) Frames() <-chan Frame {
	return s.frames
}

// Running reports whether the loop is scheduled.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Run drives the frame loop until the context is cancelled or Stop is
// called. Should be run in a goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	s.running.Store(true)
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("frame loop started", zap.Duration("interval", s.interval))
	for {
		if !s.running.Load() {
			s.log.Info("frame loop stopped")
			return
		}

		select {
		case <-ctx.Done():
			s.log.Info("frame loop cancelled")
			return
		case <-ticker.C:
			frame := s.viewer.Tick()
			if !s.running.Load() {
				s.log.Info("frame loop stopped")
				return
			}
			if frame == nil {
				continue
			}
			select {
			case s.frames <- frame:
			default:
				// Drop the frame rather than stall the loop; the
				// broadcaster resynchronizes with periodic full syncs.
			}
		}
	}
}

// Stop halts the schedule. Safe to call from any goroutine.
func (s *Scheduler) Stop() {
	s.running.Store(false)
}
