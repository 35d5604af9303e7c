// Package kocombus runs the wallpad bus: the byte-stream framer with
// its legacy-header recovery transforms, a two-priority command
// queue, and the TCP engine that drives both.
package kocombus

import (
	"errors"
	"time"
)

// defines a kocom bus tuning range.
const (
	// "write interval" range [1, 60]s default 1s. Minimum spacing
	// between two writes onto the bus so the panel's own controllers
	// get a fair chance at the line.
	WriteIntervalMin = 1 * time.Second
	WriteIntervalMax = 60 * time.Second

	// "scan interval" range [2, 3600]s default twice the write
	// interval. How often each enabled device is re-checked when
	// nothing else is driving traffic.
	ScanIntervalMin = 2 * time.Second
	ScanIntervalMax = 3600 * time.Second

	// "resend interval" range [1, 60]s default 1s. Delay after every
	// write before the writer goroutine is allowed to send again.
	ResendIntervalMin = 1 * time.Second
	ResendIntervalMax = 60 * time.Second

	// "max socket buffer" range [256, 65536] bytes default 4096.
	MaxSocketBufferMin = 256
	MaxSocketBufferMax = 65536
)

// Config defines a wallpad bus connection's tuning. The default is
// applied for each unspecified value.
type Config struct {
	// Host and Port address the EW11-style TCP-to-serial gateway.
	Host string
	Port int

	// WriteInterval is the minimum spacing between writes.
	WriteInterval time.Duration

	// ScanInterval is how often an idle device is re-checked. Zero
	// defaults to twice WriteInterval, matching the original
	// collector's WALLPAD_SCAN_INTERVAL_TIME = RS485_WRITE_INTERVAL_SEC*2.
	ScanInterval time.Duration

	// ResendInterval paces the writer goroutine between queue pops.
	ResendInterval time.Duration

	// MaxSocketBuffer bounds how much unconsumed data the framer will
	// buffer from one read before applying backpressure.
	MaxSocketBuffer int
}

// Valid applies the default for each unspecified value and rejects
// anything outside the allowed range.
func (c *Config) Valid() error {
	if c == nil {
		return errors.New("kocombus: invalid pointer")
	}
	if c.Host == "" {
		return errors.New("kocombus: Host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("kocombus: Port not in [1, 65535]")
	}

	if c.WriteInterval == 0 {
		c.WriteInterval = 1 * time.Second
	} else if c.WriteInterval < WriteIntervalMin || c.WriteInterval > WriteIntervalMax {
		return errors.New("kocombus: WriteInterval not in [1, 60]s")
	}

	if c.ScanInterval == 0 {
		c.ScanInterval = 2 * c.WriteInterval
	} else if c.ScanInterval < ScanIntervalMin || c.ScanInterval > ScanIntervalMax {
		return errors.New("kocombus: ScanInterval not in [2, 3600]s")
	}

	if c.ResendInterval == 0 {
		c.ResendInterval = 1 * time.Second
	} else if c.ResendInterval < ResendIntervalMin || c.ResendInterval > ResendIntervalMax {
		return errors.New("kocombus: ResendInterval not in [1, 60]s")
	}

	if c.MaxSocketBuffer == 0 {
		c.MaxSocketBuffer = 4096
	} else if c.MaxSocketBuffer < MaxSocketBufferMin || c.MaxSocketBuffer > MaxSocketBufferMax {
		return errors.New("kocombus: MaxSocketBuffer not in [256, 65536] bytes")
	}

	return nil
}

// DefaultConfig returns a Config with every tunable at its default,
// addressing host:port.
func DefaultConfig(host string, port int) Config {
	return Config{
		Host:            host,
		Port:            port,
		WriteInterval:   1 * time.Second,
		ScanInterval:    2 * time.Second,
		ResendInterval:  1 * time.Second,
		MaxSocketBuffer: 4096,
	}
}
