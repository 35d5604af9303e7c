package device

import "github.com/kkweon/kocom-bridge/internal/kocomasdu"

// Thermostat is one room's heating thermostat.
type Thermostat struct {
	Room     byte
	RoomName string
	InitTemp byte
	State    kocomasdu.ThermostatState
}

// NewThermostat builds a Thermostat for room, starting off at
// initTemp — the panel's own setback temperature, used whenever the
// thermostat isn't actively heating to a set point.
func NewThermostat(room byte, roomName string, initTemp byte) *Thermostat {
	return &Thermostat{
		Room:     room,
		RoomName: roomName,
		InitTemp: initTemp,
		State:    kocomasdu.ThermostatState{Mode: kocomasdu.ThermoOff, CurrentTemp: initTemp, TargetTemp: initTemp},
	}
}

// EncodeFrame implements kocombus.FrameEncoder.
func (t *Thermostat) EncodeFrame(cmd kocomasdu.CommandCode) kocomasdu.Frame {
	return kocomasdu.EncodeThermostatFrame(t.Room, cmd, t.State.Mode, t.State.TargetTemp)
}

// Decode updates State from a status frame's value.
func (t *Thermostat) Decode(value uint64) {
	t.State = kocomasdu.DecodeThermostat(value, t.InitTemp)
}

// SetMode changes the heating mode, leaving TargetTemp untouched.
func (t *Thermostat) SetMode(mode kocomasdu.ThermoMode) {
	t.State.Mode = mode
}

// SetTargetTemp changes the target temperature and switches into heat
// mode, matching the panel's own behavior when a set-point is dialed
// in.
func (t *Thermostat) SetTargetTemp(temp byte) {
	t.State.TargetTemp = temp
	t.State.Mode = kocomasdu.ThermoHeat
}
