package lgac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidAppliesDefaults(t *testing.T) {
	c := Config{Host: "192.168.1.3"}
	require.NoError(t, c.Valid())
	assert.Equal(t, 8899, c.Port)
	assert.Equal(t, time.Second, c.WriteInterval)
	assert.Equal(t, 60*time.Second, c.ScanInterval)
	assert.Equal(t, TempAdjustDefault, c.TempAdjust)
	assert.Equal(t, MaxReadRetryDefault, c.MaxReadRetry)
}

func TestConfigValidRejectsMissingHost(t *testing.T) {
	c := Config{}
	assert.Error(t, c.Valid())
}

func TestConfigValidRejectsOutOfRangeWriteInterval(t *testing.T) {
	c := Config{Host: "h", WriteInterval: 20 * time.Second}
	assert.Error(t, c.Valid())
}

func TestConfigValidRejectsOutOfRangeScanInterval(t *testing.T) {
	c := Config{Host: "h", ScanInterval: 1 * time.Second}
	assert.Error(t, c.Valid())
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig("10.0.0.2", 8899)
	assert.Equal(t, "10.0.0.2", c.Host)
	assert.Equal(t, MaxReadRetryDefault, c.MaxReadRetry)
}
