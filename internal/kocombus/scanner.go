package kocombus

import (
	"context"
	"time"

	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
	"github.com/kkweon/kocom-bridge/internal/xlog"
)

// scanTarget is one device the Scanner periodically re-checks.
type scanTarget struct {
	kind     kocomasdu.DeviceKind
	target   FrameEncoder
	lastScan time.Time
}

// Scanner periodically enqueues a low-priority CHECK for every
// registered device that hasn't been scanned within Interval. The
// elevator is never scanned this way — it has no polled state to
// report.
type Scanner struct {
	interval time.Duration
	queue    *Queue
	log      *xlog.Logger
	targets  []*scanTarget
}

// NewScanner builds a Scanner that checks every registered target
// once per interval, enqueued onto queue.
func NewScanner(interval time.Duration, queue *Queue, log *xlog.Logger) *Scanner {
	return &Scanner{interval: interval, queue: queue, log: log}
}

// Register adds a device to the scan rotation.
func (s *Scanner) Register(kind kocomasdu.DeviceKind, target FrameEncoder) {
	s.targets = append(s.targets, &scanTarget{kind: kind, target: target})
}

// Run ticks every interval/4 (fine enough granularity to catch each
// target's own due time without a dedicated timer per device) until
// ctx is cancelled.
func (s *Scanner) Run(ctx context.Context) {
	tick := s.interval / 4
	if tick <= 0 {
		tick = time.Second
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.scanDue(now)
		}
	}
}

func (s *Scanner) scanDue(now time.Time) {
	for _, t := range s.targets {
		if t.kind == kocomasdu.Elevator {
			continue
		}
		if now.Sub(t.lastScan) < s.interval {
			continue
		}
		t.lastScan = now
		s.log.Debugf("scan due for %s", t.kind)
		s.queue.Put(PriorityLow, t.target, kocomasdu.Check)
	}
}
