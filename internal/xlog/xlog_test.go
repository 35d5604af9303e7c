package xlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestSetLevelSharedAcrossWith(t *testing.T) {
	root := New("root")
	child := root.With("child")

	root.SetLevel(LevelWarn)
	assert.False(t, child.enabled(LevelInfo))
	assert.True(t, child.enabled(LevelWarn))
}
