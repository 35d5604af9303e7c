package device

import "github.com/kkweon/kocom-bridge/internal/kocomasdu"

// Plug is one room's bank of switched outlets, the same shape as
// Light but addressed as its own device kind on the bus.
type Plug struct {
	Room     byte
	RoomName string
	States   []bool
}

// NewPlug builds a Plug for room with count outlets, all on — outlets
// default to energized, matching the panel's own power-on default.
func NewPlug(room byte, roomName string, count int) *Plug {
	states := make([]bool, count)
	for i := range states {
		states[i] = true
	}
	return &Plug{Room: room, RoomName: roomName, States: states}
}

// EncodeFrame implements kocombus.FrameEncoder.
func (p *Plug) EncodeFrame(cmd kocomasdu.CommandCode) kocomasdu.Frame {
	return kocomasdu.EncodePlugFrame(p.Room, cmd, p.States)
}

// Decode updates States from a status frame's value.
func (p *Plug) Decode(value uint64) {
	p.States = kocomasdu.DecodePlugStates(value, len(p.States))
}

// Set changes outlet index (1-based) and reports whether index was in
// range.
func (p *Plug) Set(index int, on bool) bool {
	i := index - 1
	if i < 0 || i >= len(p.States) {
		return false
	}
	p.States[i] = on
	return true
}

// AnyOn reports whether any outlet in the bank is on.
func (p *Plug) AnyOn() bool {
	for _, s := range p.States {
		if s {
			return true
		}
	}
	return false
}
