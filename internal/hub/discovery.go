package hub

import (
	"strconv"

	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
	"github.com/kkweon/kocom-bridge/internal/kocombus"
	"github.com/kkweon/kocom-bridge/internal/mqttbridge"
)

// registerScanTargets adds every configured wallpad-bus device to the
// scanner's rotation, one FrameEncoder per room/unit.
func (h *Hub) registerScanTargets(scanner *kocombus.Scanner) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, l := range h.lights {
		scanner.Register(kocomasdu.Light, l)
	}
	for _, p := range h.plugs {
		scanner.Register(kocomasdu.Plug, p)
	}
	for _, t := range h.thermostats {
		scanner.Register(kocomasdu.Thermostat, t)
	}
	scanner.Register(kocomasdu.Fan, h.fan)
	scanner.Register(kocomasdu.Gas, h.gas)
	scanner.Register(kocomasdu.Elevator, h.elevator)
}

func (h *Hub) publishAllDiscovery() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.log.Infof("publishing device discovery")

	for _, l := range h.lights {
		for i := range l.States {
			topic, doc := mqttbridge.LightDiscovery(l.RoomName, lightName(i+1))
			h.publishDoc(topic, doc)
		}
	}
	for _, p := range h.plugs {
		for i := range p.States {
			topic, doc := mqttbridge.SwitchDiscovery(p.RoomName, plugName(i+1))
			h.publishDoc(topic, doc)
		}
	}
	for _, t := range h.thermostats {
		topic, doc := mqttbridge.ThermostatDiscovery(t.RoomName)
		h.publishDoc(topic, doc)
	}
	for _, a := range h.aircons {
		if a.RoomName == "" {
			continue
		}
		topic, doc := mqttbridge.AirconDiscovery(a.RoomName)
		h.publishDoc(topic, doc)
	}

	topic, doc := mqttbridge.SwitchDiscovery("wallpad", "elevator")
	h.publishDoc(topic, doc)
	topic, doc = mqttbridge.SwitchDiscovery("wallpad", "gas")
	h.publishDoc(topic, doc)
	topic, doc = mqttbridge.GasSensorDiscovery()
	h.publishDoc(topic, doc)
	topic, doc = mqttbridge.FanDiscovery()
	h.publishDoc(topic, doc)
	topic, doc = mqttbridge.FanSensorDiscovery()
	h.publishDoc(topic, doc)
}

func (h *Hub) publishDoc(topic string, doc mqttbridge.Document) {
	if err := h.mqtt.PublishDiscovery(topic, doc); err != nil {
		h.log.Warnf("publish discovery %s: %v", topic, err)
	}
}

// removeAllDiscovery retracts every entity this bridge has published,
// for the control namespace's "remove" message.
func (h *Hub) removeAllDiscovery() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.log.Infof("removing device discovery")

	for _, l := range h.lights {
		for i := range l.States {
			topic, _ := mqttbridge.LightDiscovery(l.RoomName, lightName(i+1))
			h.removeDoc(topic)
		}
	}
	for _, p := range h.plugs {
		for i := range p.States {
			topic, _ := mqttbridge.SwitchDiscovery(p.RoomName, plugName(i+1))
			h.removeDoc(topic)
		}
	}
	for _, t := range h.thermostats {
		topic, _ := mqttbridge.ThermostatDiscovery(t.RoomName)
		h.removeDoc(topic)
	}
	for _, a := range h.aircons {
		if a.RoomName == "" {
			continue
		}
		topic, _ := mqttbridge.AirconDiscovery(a.RoomName)
		h.removeDoc(topic)
	}

	topic, _ := mqttbridge.SwitchDiscovery("wallpad", "elevator")
	h.removeDoc(topic)
	topic, _ = mqttbridge.SwitchDiscovery("wallpad", "gas")
	h.removeDoc(topic)
	topic, _ = mqttbridge.GasSensorDiscovery()
	h.removeDoc(topic)
	topic, _ = mqttbridge.FanDiscovery()
	h.removeDoc(topic)
	topic, _ = mqttbridge.FanSensorDiscovery()
	h.removeDoc(topic)
}

func (h *Hub) removeDoc(topic string) {
	if err := h.mqtt.RemoveDiscovery(topic); err != nil {
		h.log.Warnf("remove discovery %s: %v", topic, err)
	}
}

func lightName(i int) string { return "light" + strconv.Itoa(i) }
func plugName(i int) string  { return "plug" + strconv.Itoa(i) }
