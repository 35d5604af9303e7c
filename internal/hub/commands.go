package hub

import (
	"context"
	"strconv"
	"strings"

	"github.com/kkweon/kocom-bridge/internal/device"
	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
	"github.com/kkweon/kocom-bridge/internal/kocombus"
	"github.com/kkweon/kocom-bridge/internal/lgac"
)

// airconDeviceName is the first segment of every aircon command topic
// (the LGAircon-branded root mqttbridge builds those topics under).
const airconDeviceName = "LGAircon"

// HandleCommand routes one incoming MQTT command topic (already split
// on '/') and its payload to the matching device, enqueuing a bus
// write where the device is on the wallpad bus, or kicking off an
// aircon transaction where it's on the aircon bus.
func (h *Hub) HandleCommand(topic []string, payload string) {
	if len(topic) < 3 {
		h.log.Debugf("ignoring malformed command topic %v", topic)
		return
	}

	if topic[0] == airconDeviceName {
		h.handleAirconCommand(topic, payload)
		return
	}

	kind := topic[1]
	roomAndDevice := strings.TrimSuffix(topic[2], "/set")
	roomDevice := strings.SplitN(roomAndDevice, "_", 2)
	roomName := roomDevice[0]
	deviceSuffix := ""
	if len(roomDevice) > 1 {
		deviceSuffix = roomDevice[1]
	}

	on := strings.EqualFold(payload, "on")

	h.mu.Lock()
	defer h.mu.Unlock()

	switch kind {
	case "light":
		if l := h.lightByRoomName(roomName); l != nil {
			if l.Set(parseTrailingIndex(deviceSuffix), on) {
				h.kocom.Queue().Put(kocombus.PriorityHigh, l, kocomasdu.On)
			}
		}
	case "switch":
		switch {
		case roomName == "wallpad" && deviceSuffix == "elevator":
			if on {
				h.elevator.Call()
			} else {
				h.elevator.Clear()
			}
			h.kocom.Queue().Put(kocombus.PriorityHigh, h.elevator, kocomasdu.On)
		case roomName == "wallpad" && deviceSuffix == "gas":
			if !on {
				h.gas.Shutoff()
				h.kocom.Queue().Put(kocombus.PriorityHigh, h.gas, kocomasdu.Off)
			}
		default:
			if p := h.plugByRoomName(roomName); p != nil {
				if p.Set(parseTrailingIndex(deviceSuffix), on) {
					h.kocom.Queue().Put(kocombus.PriorityHigh, p, kocomasdu.On)
				}
			}
		}
	case "fan":
		if len(topic) < 4 {
			return
		}
		switch topic[3] {
		case "fan_mode":
			h.fan.SetOn(on)
			h.kocom.Queue().Put(kocombus.PriorityHigh, h.fan, kocomasdu.On)
		case "fan_speed":
			h.fan.SetSpeed(parseKocomFanSpeed(payload))
			h.kocom.Queue().Put(kocombus.PriorityHigh, h.fan, kocomasdu.On)
		}
	case "climate":
		if len(topic) < 4 {
			return
		}
		if t := h.thermostatByRoomName(roomName); t != nil {
			switch topic[3] {
			case "mode":
				t.SetMode(parseThermoMode(payload))
			case "target_temp":
				if v, err := strconv.ParseFloat(payload, 64); err == nil {
					t.SetTargetTemp(byte(v))
				}
			}
			h.kocom.Queue().Put(kocombus.PriorityHigh, t, kocomasdu.On)
		}
	}
}

func (h *Hub) lightByRoomName(name string) *device.Light {
	for _, l := range h.lights {
		if l.RoomName == name {
			return l
		}
	}
	return nil
}

func (h *Hub) plugByRoomName(name string) *device.Plug {
	for _, p := range h.plugs {
		if p.RoomName == name {
			return p
		}
	}
	return nil
}

func (h *Hub) thermostatByRoomName(name string) *device.Thermostat {
	for _, t := range h.thermostats {
		if t.RoomName == name {
			return t
		}
	}
	return nil
}

// parseTrailingIndex reads the trailing digits off a device suffix
// like "light3", returning 0 (the unaddressable aggregate) if none.
func parseTrailingIndex(name string) int {
	for i, r := range name {
		if r >= '0' && r <= '9' {
			n, _ := strconv.Atoi(name[i:])
			return n
		}
	}
	return 0
}

func parseKocomFanSpeed(payload string) kocomasdu.FanSpeed {
	switch payload {
	case "low":
		return kocomasdu.FanLow
	case "medium":
		return kocomasdu.FanMedium
	case "high":
		return kocomasdu.FanHigh
	default:
		return kocomasdu.FanOff
	}
}

func parseThermoMode(payload string) kocomasdu.ThermoMode {
	switch payload {
	case "heat":
		return kocomasdu.ThermoHeat
	case "fan_only":
		return kocomasdu.ThermoFanOnly
	default:
		return kocomasdu.ThermoOff
	}
}

// handleAirconCommand applies a command to the in-memory Aircon
// record and fires off its transaction in the background — the
// aircon bus is a slow one-shot-per-transaction protocol and must
// never block the MQTT callback goroutine.
func (h *Hub) handleAirconCommand(topic []string, payload string) {
	if len(topic) < 4 {
		return
	}
	roomName := topic[2]
	field := topic[3]

	h.mu.Lock()
	var target *device.Aircon
	for _, a := range h.aircons {
		if a.RoomName == roomName {
			target = a
			break
		}
	}
	if target == nil {
		h.mu.Unlock()
		return
	}

	switch field {
	case "mode":
		switch payload {
		case "off":
			target.On = false
		case "cool":
			target.On, target.Mode = true, lgac.ModeCool
		case "dry":
			target.On, target.Mode = true, lgac.ModeDry
		case "fan_only":
			target.On, target.Mode = true, lgac.ModeFanOnly
		}
	case "target_temp":
		if v, err := strconv.Atoi(payload); err == nil {
			target.TargetTemp = v
		}
	case "fan_mode":
		switch payload {
		case "low":
			target.Fan = lgac.FanLow
		case "medium":
			target.Fan = lgac.FanMedium
		case "high":
			target.Fan = lgac.FanHigh
		default:
			target.Fan = lgac.FanAuto
		}
	case "swing_mode":
		target.Swing = strings.EqualFold(payload, "on")
	}

	t := target.Target
	action, mode, swing, fan, temp := target.Action(), target.Mode, target.Swing, target.Fan, target.TargetTemp
	h.mu.Unlock()

	go func() {
		status, err := h.lgac.Transact(context.Background(), t, action, mode, swing, fan, temp)
		if err != nil {
			h.log.Warnf("aircon command to %s: %v", roomName, err)
			return
		}
		h.mu.Lock()
		target.ApplyStatus(status)
		h.mu.Unlock()
		h.publishAircon(target)
	}()
}
