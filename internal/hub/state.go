package hub

import (
	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
	"github.com/kkweon/kocom-bridge/internal/kocombus"
)

// handleKocomFrame is the wallpad bus engine's onRx callback: it turns
// one classified frame into a device state update and, where the
// frame carries state worth reporting, an MQTT publish.
func (h *Hub) handleKocomFrame(d kocombus.Decoded) {
	env := d.Envelope
	if env.IsAckWhenCheck() {
		return
	}
	if env.Type == kocomasdu.Send && !env.IsSendToElevator() {
		// Every other SEND is the bridge's own outgoing command echoed
		// back on the shared bus; it carries nothing new to report.
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch env.SrcDevice {
	case kocomasdu.Fan:
		if env.IsFakeDeviceForFan() {
			h.fanSensor.Decode(d.Frame.Value)
			h.publishFanSensor()
		} else {
			h.fan.Decode(d.Frame.Value)
			h.publishFan()
		}
	case kocomasdu.Light:
		if l, ok := h.lights[env.SrcRoom]; ok {
			l.Decode(d.Frame.Value)
			h.publishLight(l)
		}
	case kocomasdu.Plug:
		if p, ok := h.plugs[env.SrcRoom]; ok {
			p.Decode(d.Frame.Value)
			h.publishPlug(p)
		}
	case kocomasdu.Thermostat:
		if t, ok := h.thermostats[env.SrcRoom]; ok {
			t.Decode(d.Frame.Value)
			h.publishThermostat(t)
		}
	case kocomasdu.Gas:
		h.gas.Decode(d.Frame.Value)
		h.publishGas()
	case kocomasdu.Wallpad:
		if env.IsSendToElevator() {
			h.publishElevator()
		}
	}
}
