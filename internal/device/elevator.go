package device

import "github.com/kkweon/kocom-bridge/internal/kocomasdu"

// Elevator is the call button. It has no polled state: an ACK only
// ever confirms a call was accepted, never reports idle status, so
// On is write-only from the bridge's point of view.
type Elevator struct {
	On bool
}

// NewElevator builds an Elevator, idle.
func NewElevator() *Elevator {
	return &Elevator{}
}

// EncodeFrame implements kocombus.FrameEncoder.
func (e *Elevator) EncodeFrame(cmd kocomasdu.CommandCode) kocomasdu.Frame {
	return kocomasdu.EncodeElevatorFrame(cmd)
}

// Call requests the elevator; Clear (the bus has no cancel) just
// clears the local flag after the bridge republishes its state.
func (e *Elevator) Call() { e.On = true }
func (e *Elevator) Clear() { e.On = false }
