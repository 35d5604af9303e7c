package device

import "github.com/kkweon/kocom-bridge/internal/lgac"

// Aircon is one system-aircon unit, addressed by its bus group and id
// rather than a wallpad room number.
type Aircon struct {
	Target   lgac.Target
	RoomName string

	Mode        lgac.Mode
	Swing       bool
	Fan         lgac.FanSpeed
	TargetTemp  int
	CurrentTemp float64
	Pipe1Temp   float64
	Pipe2Temp   float64
	On          bool
}

// NewAircon builds an Aircon for the given unit, off, defaulting to
// cool mode and auto fan — the settings it will carry the first time
// it's turned on before any command has set them explicitly.
func NewAircon(target lgac.Target, roomName string) *Aircon {
	return &Aircon{
		Target:     target,
		RoomName:   roomName,
		Mode:       lgac.ModeCool,
		Fan:        lgac.FanAuto,
		TargetTemp: 24,
	}
}

// Action returns the action this unit's next transaction should carry
// given its current On flag.
func (a *Aircon) Action() lgac.Action {
	if a.On {
		return lgac.ActionOn
	}
	return lgac.ActionOff
}

// ApplyStatus updates an Aircon's reported fields from a decoded
// transaction response.
func (a *Aircon) ApplyStatus(s lgac.Status) {
	a.Mode = s.Mode
	a.Swing = s.Swing
	a.Fan = s.Fan
	a.TargetTemp = s.SetTemp
	a.CurrentTemp = s.CurrentTemp
	a.Pipe1Temp = s.Pipe1Temp
	a.Pipe2Temp = s.Pipe2Temp
	a.On = s.Action == lgac.ActionOn
}
