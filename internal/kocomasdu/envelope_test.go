package kocomasdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySend(t *testing.T) {
	f := Frame{TypeAndSeq: 0x30bc, Command: On, SrcDevice: Wallpad, DstDevice: Light}
	e, ok := Classify(f)
	require.True(t, ok)
	assert.Equal(t, Send, e.Type)
}

func TestClassifyAck(t *testing.T) {
	f := Frame{TypeAndSeq: 0x30dc, Command: Status, SrcDevice: Light, DestDevice: Wallpad}
	e, ok := Classify(f)
	require.True(t, ok)
	assert.Equal(t, Ack, e.Type)
}

func TestClassifyRejectsUnknownTypeAndSeq(t *testing.T) {
	f := Frame{TypeAndSeq: 0x3099}
	_, ok := Classify(f)
	assert.False(t, ok)
}

func TestSwapIfNeededOnAckFromWallpad(t *testing.T) {
	e := Envelope{Type: Ack, SrcDevice: Wallpad, SrcRoom: 0x00, DstDevice: Light, DstRoom: 0x01}
	e.SwapIfNeeded()
	assert.True(t, e.Swapped)
	assert.Equal(t, Light, e.SrcDevice)
	assert.Equal(t, Wallpad, e.DstDevice)
	assert.Equal(t, byte(0x01), e.SrcRoom)
	assert.Equal(t, byte(0x00), e.DstRoom)
}

func TestSwapIfNeededNoOpWhenNotAckFromWallpad(t *testing.T) {
	e := Envelope{Type: Send, SrcDevice: Wallpad, DstDevice: Elevator}
	e.SwapIfNeeded()
	assert.False(t, e.Swapped)
	assert.Equal(t, Wallpad, e.SrcDevice)
}

func TestIsFakeDeviceForFan(t *testing.T) {
	e := Envelope{SrcDevice: Fan, DstDevice: Fan}
	assert.True(t, e.IsFakeDeviceForFan())

	e2 := Envelope{SrcDevice: Fan, DstDevice: Wallpad}
	assert.False(t, e2.IsFakeDeviceForFan())
}

func TestIsSendToElevator(t *testing.T) {
	e := Envelope{Type: Send, DstDevice: Elevator}
	assert.True(t, e.IsSendToElevator())

	e2 := Envelope{Type: Ack, DstDevice: Elevator}
	assert.False(t, e2.IsSendToElevator())
}
