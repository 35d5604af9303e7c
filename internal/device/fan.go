package device

import "github.com/kkweon/kocom-bridge/internal/kocomasdu"

// Fan is the ventilation fan: a single whole-house device with no
// room addressing.
type Fan struct {
	State kocomasdu.FanState
}

// NewFan builds a Fan, off.
func NewFan() *Fan {
	return &Fan{State: kocomasdu.FanState{Speed: kocomasdu.FanOff}}
}

// EncodeFrame implements kocombus.FrameEncoder.
func (f *Fan) EncodeFrame(cmd kocomasdu.CommandCode) kocomasdu.Frame {
	return kocomasdu.EncodeFanFrame(cmd, f.State.On, f.State.Speed)
}

// Decode updates State from a status frame's value.
func (f *Fan) Decode(value uint64) {
	f.State = kocomasdu.DecodeFan(value)
}

// SetOn turns the fan on or off without changing its speed setting.
func (f *Fan) SetOn(on bool) {
	f.State.On = on
}

// SetSpeed sets the fan's speed and, matching the panel's own
// behavior, turns the fan on unless the speed is off.
func (f *Fan) SetSpeed(speed kocomasdu.FanSpeed) {
	f.State.Speed = speed
	f.State.On = speed != kocomasdu.FanOff
}

// FanSensor is the CO2 sensor riding along on the fan's bus address.
// It has no state to write — it only ever reports.
type FanSensor struct {
	CO2PPM int
}

// Decode reads a self-addressed fan frame's value as a CO2 reading.
func (s *FanSensor) Decode(value uint64) {
	s.CO2PPM = kocomasdu.DecodeFanSensorCO2(value)
}
