package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
	"github.com/kkweon/kocom-bridge/internal/lgac"
)

func TestLightSetAndEncodeRoundTrip(t *testing.T) {
	l := NewLight(0x01, "livingroom", 3)
	assert.True(t, l.Set(2, true))
	assert.False(t, l.Set(0, true), "index 0 is the unaddressable aggregate")
	assert.False(t, l.Set(4, true), "out of range")
	assert.True(t, l.AnyOn())

	frame := l.EncodeFrame(kocomasdu.On)
	assert.Equal(t, kocomasdu.Light, frame.DestDevice)
	assert.Equal(t, l.Room, frame.DestRoom)

	decoded := NewLight(0x01, "livingroom", 3)
	decoded.Decode(frame.Value)
	assert.Equal(t, l.States, decoded.States)
}

func TestLightCheckCommandCarriesNoValue(t *testing.T) {
	l := NewLight(0x01, "livingroom", 2)
	l.Set(1, true)
	frame := l.EncodeFrame(kocomasdu.Check)
	assert.Equal(t, uint64(0), frame.Value)
}

func TestThermostatHeatRoundTrip(t *testing.T) {
	th := NewThermostat(0x02, "bedroom", 18)
	th.SetTargetTemp(23)
	assert.Equal(t, kocomasdu.ThermoHeat, th.State.Mode)

	frame := th.EncodeFrame(kocomasdu.On)
	decoded := NewThermostat(0x02, "bedroom", 18)
	decoded.Decode(frame.Value)
	assert.Equal(t, kocomasdu.ThermoHeat, decoded.State.Mode)
	assert.Equal(t, byte(23), decoded.State.TargetTemp)
}

func TestThermostatOffFallsBackToInitTemp(t *testing.T) {
	th := NewThermostat(0x02, "bedroom", 18)
	frame := th.EncodeFrame(kocomasdu.On)
	decoded := NewThermostat(0x02, "bedroom", 18)
	decoded.Decode(frame.Value)
	assert.Equal(t, kocomasdu.ThermoOff, decoded.State.Mode)
	assert.Equal(t, byte(18), decoded.State.TargetTemp)
}

func TestGasDecodeIsNoOp(t *testing.T) {
	g := NewGas()
	g.Shutoff()
	g.Decode(0x01)
	assert.False(t, g.On, "Decode must never re-derive On from a bus frame")
}

func TestPlugDefaultsToEnergized(t *testing.T) {
	p := NewPlug(0x01, "kitchen", 2)
	assert.True(t, p.AnyOn(), "outlets power on energized by default")
	assert.True(t, p.Set(1, false))
	assert.True(t, p.Set(2, false))
	assert.False(t, p.AnyOn())
}

func TestAirconActionFollowsOnFlag(t *testing.T) {
	a := NewAircon(lgac.Target{Group: 0, ID: 2}, "kitchen")
	assert.Equal(t, lgac.ActionOff, a.Action())
	a.On = true
	assert.Equal(t, lgac.ActionOn, a.Action())
}

func TestAirconApplyStatus(t *testing.T) {
	a := NewAircon(lgac.Target{Group: 0, ID: 2}, "kitchen")
	a.ApplyStatus(lgac.Status{
		Action:      lgac.ActionOn,
		Mode:        lgac.ModeDry,
		Fan:         lgac.FanHigh,
		SetTemp:     21,
		CurrentTemp: 24.5,
	})
	assert.True(t, a.On)
	assert.Equal(t, lgac.ModeDry, a.Mode)
	assert.Equal(t, lgac.FanHigh, a.Fan)
	assert.Equal(t, 21, a.TargetTemp)
	assert.InDelta(t, 24.5, a.CurrentTemp, 0.001)
}

func TestRegistryAirconTargetsUsesGroupZero(t *testing.T) {
	r := &Registry{RoomsAircon: map[byte]string{0: "livingroom", 1: "kitchen"}}
	targets := r.AirconTargets()
	assert.Equal(t, "livingroom", targets[Target{Group: 0, ID: 0}])
	assert.Equal(t, "kitchen", targets[Target{Group: 0, ID: 1}])
	assert.Len(t, targets, 2)
}

func TestRegistryValidateRejectsEmpty(t *testing.T) {
	r := &Registry{}
	assert.Error(t, r.Validate())
}
