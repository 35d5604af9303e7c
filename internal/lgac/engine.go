package lgac

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/kkweon/kocom-bridge/internal/xlog"
)

// ErrMaxReadRetries is returned by Transact once more than
// MaxReadRetry consecutive transactions have failed. The original collector treats
// this as unrecoverable and exits the process after logging and a
// short pause; Engine only reports the condition and leaves the exit
// decision to its caller (see internal/supervisor).
var ErrMaxReadRetries = errors.New("lgac: exceeded max consecutive read retries")

// Target addresses one aircon unit on the bus.
type Target struct {
	Group byte
	ID    byte
}

// Engine runs aircon bus transactions. Unlike kocombus.Engine it keeps
// no persistent connection: every transaction dials, writes, waits,
// reads and closes, matching the bus's own one-shot-per-command
// behavior.
type Engine struct {
	cfg Config
	log *xlog.Logger

	mu          sync.Mutex
	consecutive int
}

// NewEngine builds an Engine bound to cfg.
func NewEngine(cfg Config, log *xlog.Logger) *Engine {
	return &Engine{cfg: cfg, log: log}
}

// Transact sends one command to t and returns its decoded response.
// On failure it counts toward the consecutive-failure budget; once
// that budget is exceeded it returns ErrMaxReadRetries (wrapping the
// underlying cause), which callers must treat as fatal.
func (e *Engine) Transact(ctx context.Context, t Target, action Action, mode Mode, swing bool, fan FanSpeed, targetTemp int) (Status, error) {
	status, err := e.transactOnce(ctx, t, action, mode, swing, fan, targetTemp)
	if err != nil {
		return Status{}, e.recordFailure(err)
	}
	e.recordSuccess()
	return status, nil
}

func (e *Engine) transactOnce(ctx context.Context, t Target, action Action, mode Mode, swing bool, fan FanSpeed, targetTemp int) (Status, error) {
	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Status{}, fmt.Errorf("lgac: dial %s: %w", addr, err)
	}
	defer conn.Close()

	req := EncodeRequest(t.Group, t.ID, action, mode, swing, fan, targetTemp)
	if _, err := conn.Write(req); err != nil {
		return Status{}, fmt.Errorf("lgac: write: %w", err)
	}

	select {
	case <-ctx.Done():
		return Status{}, ctx.Err()
	case <-time.After(e.cfg.WriteInterval):
	}

	resp := make([]byte, ResponseLen)
	if _, err := io.ReadFull(conn, resp); err != nil {
		return Status{}, fmt.Errorf("lgac: read: %w", err)
	}
	if !VerifyChecksum(resp) {
		return Status{}, ErrChecksum
	}
	return DecodeResponse(resp, e.cfg.TempAdjust)
}

// recordFailure counts every failed transaction toward the retry
// limit, not just read timeouts: a size or checksum mismatch is just
// as much a sign the unit isn't answering as a dead socket, and
// lgac485.py's retry loop treats any None return from its read step
// the same way.
func (e *Engine) recordFailure(cause error) error {
	e.mu.Lock()
	e.consecutive++
	n := e.consecutive
	e.mu.Unlock()

	e.log.Warnf("transaction failed (%d/%d consecutive): %v", n, e.cfg.MaxReadRetry, cause)
	if n > e.cfg.MaxReadRetry {
		return fmt.Errorf("%w: %v", ErrMaxReadRetries, cause)
	}
	return cause
}

func (e *Engine) recordSuccess() {
	e.mu.Lock()
	e.consecutive = 0
	e.mu.Unlock()
}

// ScanLoop polls every target in turn, once per cfg.ScanInterval,
// calling onStatus with each successful result. It returns when ctx is
// cancelled or when a transaction reports ErrMaxReadRetries.
func (e *Engine) ScanLoop(ctx context.Context, targets []Target, onStatus func(Target, Status)) error {
	if len(targets) == 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(e.cfg.ScanInterval / time.Duration(len(targets)))
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t := targets[i%len(targets)]
			i++
			status, err := e.Transact(ctx, t, ActionStatus, ModeCool, false, FanAuto, 0)
			if err != nil {
				if errors.Is(err, ErrMaxReadRetries) {
					return err
				}
				continue
			}
			onStatus(t, status)
		}
	}
}
