package hub

import (
	"fmt"

	"github.com/kkweon/kocom-bridge/internal/device"
	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
	"github.com/kkweon/kocom-bridge/internal/lgac"
	"github.com/kkweon/kocom-bridge/internal/mqttbridge"
)

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (h *Hub) publishLight(l *device.Light) {
	payload := map[string]string{"light0": onOff(l.AnyOn())}
	for i, on := range l.States {
		payload[fmt.Sprintf("light%d", i+1)] = onOff(on)
	}
	if err := h.mqtt.PublishJSON(mqttbridge.StateTopic("light", l.RoomName), payload); err != nil {
		h.log.Warnf("publish light %s: %v", l.RoomName, err)
	}
}

func (h *Hub) publishPlug(p *device.Plug) {
	payload := map[string]string{"plug0": onOff(p.AnyOn())}
	for i, on := range p.States {
		payload[fmt.Sprintf("plug%d", i+1)] = onOff(on)
	}
	if err := h.mqtt.PublishJSON(mqttbridge.StateTopic("switch", p.RoomName), payload); err != nil {
		h.log.Warnf("publish plug %s: %v", p.RoomName, err)
	}
}

func thermoModeString(mode kocomasdu.ThermoMode) string {
	switch mode {
	case kocomasdu.ThermoHeat:
		return "heat"
	case kocomasdu.ThermoFanOnly:
		return "fan_only"
	default:
		return "off"
	}
}

func (h *Hub) publishThermostat(t *device.Thermostat) {
	payload := map[string]any{
		"mode":         thermoModeString(t.State.Mode),
		"current_temp": t.State.CurrentTemp,
		"target_temp":  t.State.TargetTemp,
	}
	if err := h.mqtt.PublishJSON(mqttbridge.StateTopic("climate", t.RoomName), payload); err != nil {
		h.log.Warnf("publish thermostat %s: %v", t.RoomName, err)
	}
}

func fanSpeedString(speed kocomasdu.FanSpeed) string {
	switch speed {
	case kocomasdu.FanLow:
		return "low"
	case kocomasdu.FanMedium:
		return "medium"
	case kocomasdu.FanHigh:
		return "high"
	default:
		return "off"
	}
}

func (h *Hub) publishFan() {
	speed := fanSpeedString(h.fan.State.Speed)
	mode := onOff(h.fan.State.On)
	if speed == "off" {
		mode = "off"
	}
	payload := map[string]string{"fan_mode": mode, "fan_speed": speed}
	if err := h.mqtt.PublishJSON(mqttbridge.StateTopic("fan", "wallpad"), payload); err != nil {
		h.log.Warnf("publish fan: %v", err)
	}
}

func (h *Hub) publishFanSensor() {
	payload := map[string]int{"co2": h.fanSensor.CO2PPM}
	if err := h.mqtt.PublishJSON(mqttbridge.SensorStateTopic("co2"), payload); err != nil {
		h.log.Warnf("publish co2 sensor: %v", err)
	}
}

func (h *Hub) publishGas() {
	payload := map[string]string{"gas": onOff(h.gas.On)}
	if err := h.mqtt.PublishJSON(mqttbridge.SensorStateTopic("gas"), payload); err != nil {
		h.log.Warnf("publish gas sensor: %v", err)
	}
	if err := h.mqtt.PublishJSON(mqttbridge.StateTopic("switch", "wallpad"), payload); err != nil {
		h.log.Warnf("publish gas switch: %v", err)
	}
}

// publishElevator always reports "off": the bridge sees its own call
// command echoed back on the shared bus, and that echo is the only
// signal this report ever fires on — it is a momentary bounce, never
// a reflection of h.elevator's locally held call flag.
func (h *Hub) publishElevator() {
	payload := map[string]string{"elevator": "off"}
	if err := h.mqtt.PublishJSON(mqttbridge.StateTopic("switch", "wallpad"), payload); err != nil {
		h.log.Warnf("publish elevator: %v", err)
	}
}

func airconModeString(mode lgac.Mode, on bool) string {
	if !on {
		return "off"
	}
	switch mode {
	case lgac.ModeCool, lgac.ModeAuto:
		return "cool"
	case lgac.ModeDry:
		return "dry"
	case lgac.ModeFanOnly:
		return "fan_only"
	case lgac.ModeHeat:
		return "heat"
	default:
		return "cool"
	}
}

func airconFanModeString(fan lgac.FanSpeed) string {
	switch fan {
	case lgac.FanLow, lgac.FanAuto:
		return "low"
	case lgac.FanMedium:
		return "medium"
	case lgac.FanHigh:
		return "high"
	case lgac.FanSilent:
		return "silent"
	case lgac.FanPower:
		return "power"
	default:
		return "off"
	}
}

func (h *Hub) publishAircon(a *device.Aircon) {
	payload := map[string]any{
		"mode":         airconModeString(a.Mode, a.On),
		"swing_mode":   onOff(a.Swing),
		"fan_mode":     airconFanModeString(a.Fan),
		"current_temp": fmt.Sprintf("%.2f", a.CurrentTemp),
		"target_temp":  a.TargetTemp,
	}
	if err := h.mqtt.PublishJSON(mqttbridge.AirconStateTopic(a.RoomName), payload); err != nil {
		h.log.Warnf("publish aircon %s: %v", a.RoomName, err)
	}
}
