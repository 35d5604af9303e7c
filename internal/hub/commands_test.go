package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kkweon/kocom-bridge/internal/device"
	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
	"github.com/kkweon/kocom-bridge/internal/kocombus"
	"github.com/kkweon/kocom-bridge/internal/lgac"
	"github.com/kkweon/kocom-bridge/internal/xlog"
)

func newTestHub() *Hub {
	h := &Hub{
		log:         xlog.New("test"),
		lights:      make(map[byte]*device.Light),
		plugs:       make(map[byte]*device.Plug),
		thermostats: make(map[byte]*device.Thermostat),
		fan:         device.NewFan(),
		fanSensor:   &device.FanSensor{},
		gas:         device.NewGas(),
		elevator:    device.NewElevator(),
		aircons:     make(map[device.Target]*device.Aircon),
		restart:     make(chan struct{}, 1),
	}
	h.lights[0x01] = device.NewLight(0x01, "livingroom", 2)
	h.plugs[0x01] = device.NewPlug(0x01, "livingroom", 2)
	h.thermostats[0x02] = device.NewThermostat(0x02, "bedroom", 18)
	h.aircons[device.Target{Group: 0, ID: 1}] = device.NewAircon(lgac.Target{Group: 0, ID: 1}, "kitchen")
	h.kocom = kocombus.NewEngine(kocombus.Config{}, xlog.New("kocombus"), kocombus.NewQueue(), func(kocombus.Decoded) {})
	h.lgac = lgac.NewEngine(lgac.Config{Host: "127.0.0.1", Port: 1}, xlog.New("lgac"))
	return h
}

func TestHandleCommandLightSetsStateAndEnqueues(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"homeassistant", "light", "livingroom_light2", "set"}, "ON")

	assert.True(t, h.lights[0x01].States[1])
	assert.Equal(t, 1, h.kocom.Queue().Len())
}

func TestHandleCommandSwitchPlugToggles(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"homeassistant", "switch", "livingroom_plug1", "set"}, "OFF")

	assert.False(t, h.plugs[0x01].States[0])
	assert.Equal(t, 1, h.kocom.Queue().Len())
}

func TestHandleCommandSwitchElevatorCallsAndClears(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"homeassistant", "switch", "wallpad_elevator", "set"}, "ON")
	assert.True(t, h.elevator.On)

	h.HandleCommand([]string{"homeassistant", "switch", "wallpad_elevator", "set"}, "OFF")
	assert.False(t, h.elevator.On)
}

func TestHandleCommandSwitchGasOnlyShutsOff(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"homeassistant", "switch", "wallpad_gas", "set"}, "ON")
	assert.True(t, h.gas.On, "gas has no remote-on path")

	h.HandleCommand([]string{"homeassistant", "switch", "wallpad_gas", "set"}, "OFF")
	assert.False(t, h.gas.On)
}

func TestHandleCommandFanModeAndSpeed(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"homeassistant", "fan", "wallpad", "fan_speed"}, "high")
	assert.Equal(t, kocomasdu.FanHigh, h.fan.State.Speed)
	assert.True(t, h.fan.State.On)

	h.HandleCommand([]string{"homeassistant", "fan", "wallpad", "fan_mode"}, "off")
	assert.False(t, h.fan.State.On)
	assert.Equal(t, kocomasdu.FanHigh, h.fan.State.Speed, "fan_mode leaves the speed setting alone")
}

func TestHandleCommandClimateModeAndTemp(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"homeassistant", "climate", "bedroom", "mode"}, "heat")
	assert.Equal(t, kocomasdu.ThermoHeat, h.thermostats[0x02].State.Mode)

	h.HandleCommand([]string{"homeassistant", "climate", "bedroom", "target_temp"}, "24")
	assert.Equal(t, byte(24), h.thermostats[0x02].State.TargetTemp)
}

func TestHandleCommandIgnoresMalformedTopic(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"homeassistant", "light"}, "ON")
	assert.Equal(t, 0, h.kocom.Queue().Len())
}

func TestHandleAirconCommandModeMutatesTargetBeforeTransacting(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"LGAircon", "climate", "kitchen", "mode"}, "cool")

	a := h.aircons[device.Target{Group: 0, ID: 1}]
	assert.True(t, a.On)
	assert.Equal(t, lgac.ModeCool, a.Mode)
}

func TestHandleAirconCommandTargetTempAndFan(t *testing.T) {
	h := newTestHub()
	h.HandleCommand([]string{"LGAircon", "climate", "kitchen", "target_temp"}, "23")
	h.HandleCommand([]string{"LGAircon", "climate", "kitchen", "fan_mode"}, "high")

	a := h.aircons[device.Target{Group: 0, ID: 1}]
	assert.Equal(t, 23, a.TargetTemp)
	assert.Equal(t, lgac.FanHigh, a.Fan)
}

func TestParseTrailingIndexDefaultsToZero(t *testing.T) {
	assert.Equal(t, 3, parseTrailingIndex("light3"))
	assert.Equal(t, 0, parseTrailingIndex("light"))
}

func TestParseKocomFanSpeedUnknownIsOff(t *testing.T) {
	assert.Equal(t, kocomasdu.FanOff, parseKocomFanSpeed("turbo"))
	assert.Equal(t, kocomasdu.FanLow, parseKocomFanSpeed("low"))
}

func TestParseThermoModeUnknownIsOff(t *testing.T) {
	assert.Equal(t, kocomasdu.ThermoOff, parseThermoMode("eco"))
	assert.Equal(t, kocomasdu.ThermoFanOnly, parseThermoMode("fan_only"))
}
