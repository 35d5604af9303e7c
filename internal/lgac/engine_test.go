package lgac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kkweon/kocom-bridge/internal/xlog"
)

func newTestEngine(maxRetry int) *Engine {
	cfg := Config{Host: "127.0.0.1", Port: 8899, MaxReadRetry: maxRetry}
	return NewEngine(cfg, xlog.New("test"))
}

func TestRecordFailureEscalatesAfterMaxRetry(t *testing.T) {
	e := newTestEngine(2)
	cause := errors.New("boom")

	err := e.recordFailure(cause)
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, ErrMaxReadRetries))

	err = e.recordFailure(cause)
	assert.False(t, errors.Is(err, ErrMaxReadRetries))

	err = e.recordFailure(cause)
	assert.True(t, errors.Is(err, ErrMaxReadRetries))
}

func TestRecordSuccessResetsConsecutiveCount(t *testing.T) {
	e := newTestEngine(1)
	cause := errors.New("boom")

	_ = e.recordFailure(cause)
	e.recordSuccess()

	err := e.recordFailure(cause)
	assert.False(t, errors.Is(err, ErrMaxReadRetries), "success must reset the consecutive counter")
}
