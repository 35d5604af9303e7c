package kocombus

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
	"github.com/kkweon/kocom-bridge/internal/xlog"
)

// Decoded is one complete, classified wallpad bus frame handed to the
// engine's consumer.
type Decoded struct {
	Kind     HeaderKind
	Frame    kocomasdu.Frame
	Envelope kocomasdu.Envelope
}

// Engine owns the wallpad bus TCP connection and drives its reader and
// writer goroutines, reconnecting on socket errors the way the
// original collector's reconnect_socket does: close, wait three resend
// intervals, redial.
type Engine struct {
	cfg   Config
	log   *xlog.Logger
	queue *Queue
	onRx  func(Decoded)

	reconnect chan struct{}
}

// NewEngine builds an Engine that delivers decoded frames to onRx.
// onRx is called from the reader goroutine — it must not block for
// long.
func NewEngine(cfg Config, log *xlog.Logger, queue *Queue, onRx func(Decoded)) *Engine {
	return &Engine{cfg: cfg, log: log, queue: queue, onRx: onRx, reconnect: make(chan struct{}, 1)}
}

// Reconnect forces the current connection closed and redialed, for
// the MQTT control topic that asks the bridge to reconnect its EW11
// gateways on demand.
func (e *Engine) Reconnect() {
	select {
	case e.reconnect <- struct{}{}:
	default:
	}
}

// Queue returns the engine's command queue, for producers (the MQTT
// adapter, the scanner) to Put onto.
func (e *Engine) Queue() *Queue { return e.queue }

// Run connects and serves until ctx is cancelled. It never returns
// nil: it returns ctx.Err() once ctx is cancelled, and the dial error
// if connecting or reconnecting fails.
func (e *Engine) Run(ctx context.Context) error {
	for {
		conn, err := e.dial(ctx)
		if err != nil {
			return err
		}

		connCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{}, 2)
		go func() {
			e.readLoop(connCtx, conn)
			done <- struct{}{}
		}()
		go func() {
			e.writeLoop(connCtx, conn)
			done <- struct{}{}
		}()

		select {
		case <-ctx.Done():
			cancel()
			conn.Close()
			return ctx.Err()
		case <-e.reconnect:
			e.log.Infof("forced reconnect requested")
			cancel()
			conn.Close()
			<-done
			<-done
		case <-done:
			cancel()
			conn.Close()
			<-done
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(3 * e.cfg.ResendInterval):
		}
		e.log.Warnf("reconnecting to %s:%d", e.cfg.Host, e.cfg.Port)
	}
}

func (e *Engine) dial(ctx context.Context) (net.Conn, error) {
	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("kocombus: dial %s: %w", addr, err)
	}
	e.log.Infof("connected to %s", addr)
	return conn, nil
}

func (e *Engine) readLoop(ctx context.Context, conn net.Conn) {
	br := bufio.NewReaderSize(conn, e.cfg.MaxSocketBuffer)
	for {
		if ctx.Err() != nil {
			return
		}
		kind, frame, err := NextFrame(br)
		if err != nil {
			e.log.Warnf("read error: %v", err)
			return
		}
		e.dispatch(kind, frame)
	}
}

func (e *Engine) dispatch(kind HeaderKind, frame kocomasdu.Frame) {
	env, ok := kocomasdu.Classify(frame)
	if !ok {
		e.log.Debugf("unrecognised type-and-sequence 0x%04x", frame.TypeAndSeq)
		return
	}
	env.SwapIfNeeded()
	// A self-addressed Fan frame (source == destination) carries the
	// CO2 sensor's reading rather than the fan's own on/speed state;
	// Envelope.IsFakeDeviceForFan tells the device layer which payload
	// decoder to use for this one frame. There is exactly one publish
	// per frame either way.
	e.onRx(Decoded{Kind: kind, Frame: frame, Envelope: env})
}

func (e *Engine) writeLoop(ctx context.Context, conn net.Conn) {
	for {
		job := e.queue.GetContext(ctx)
		if job == nil {
			return
		}
		frame := job.Target.EncodeFrame(job.Command)
		raw, err := frame.MarshalBinary()
		if err != nil {
			e.log.Warnf("encode error: %v", err)
			continue
		}
		if _, err := conn.Write(raw); err != nil {
			e.log.Warnf("write error: %v", err)
			return
		}

		pause := e.cfg.ResendInterval
		if e.cfg.WriteInterval > pause {
			pause = e.cfg.WriteInterval
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(pause):
		}
	}
}

