package device

import "github.com/kkweon/kocom-bridge/internal/kocomasdu"

// Light is one room's bank of light switches. States[i] is switch i+1;
// there is no stored index-0 entry — the "all lights" aggregate is
// derived, never held as state, since the bus has no command that
// addresses it directly.
type Light struct {
	Room     byte
	RoomName string
	States   []bool
}

// NewLight builds a Light for room with count switches, all off.
func NewLight(room byte, roomName string, count int) *Light {
	return &Light{Room: room, RoomName: roomName, States: make([]bool, count)}
}

// EncodeFrame implements kocombus.FrameEncoder.
func (l *Light) EncodeFrame(cmd kocomasdu.CommandCode) kocomasdu.Frame {
	return kocomasdu.EncodeLightFrame(l.Room, cmd, l.States)
}

// Decode updates States from a status frame's value, keeping the
// currently configured switch count.
func (l *Light) Decode(value uint64) {
	l.States = kocomasdu.DecodeLightStates(value, len(l.States))
}

// Set changes switch index (1-based) and reports whether index was in
// range.
func (l *Light) Set(index int, on bool) bool {
	i := index - 1
	if i < 0 || i >= len(l.States) {
		return false
	}
	l.States[i] = on
	return true
}

// AnyOn reports whether any switch in the bank is on — the aggregate
// "light0" state HA sees is reporting-only, derived straight from
// this.
func (l *Light) AnyOn() bool {
	for _, s := range l.States {
		if s {
			return true
		}
	}
	return false
}
