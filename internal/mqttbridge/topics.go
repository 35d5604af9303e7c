// Package mqttbridge publishes device state to, and routes commands
// from, an MQTT broker using Home-Assistant-style auto-discovery.
package mqttbridge

import "fmt"

const (
	haPrefix  = "homeassistant"
	haSwitch  = "switch"
	haLight   = "light"
	haClimate = "climate"
	haSensor  = "sensor"
	haFan     = "fan"

	serviceName     = "kocom"
	airconDeviceName = "LGAircon"

	swVersionString = "rs485-bridge"

	// controlRoot/controlBridge form the reserved namespace the
	// bridge itself listens on for log-level, discovery and
	// reconnect control messages, independent of any device state
	// topic.
	controlRoot   = "rs485"
	controlBridge = "bridge"
)

// ControlWildcard is the single topic filter the bridge subscribes to
// for its own control namespace.
func ControlWildcard() string {
	return fmt.Sprintf("%s/%s/#", controlRoot, controlBridge)
}

// ControlTopic builds one control topic under rs485/bridge/config/*.
func ControlTopic(name string) string {
	return fmt.Sprintf("%s/%s/config/%s", controlRoot, controlBridge, name)
}

// StateTopic is where a device kind's current state is published,
// keyed by Home-Assistant platform and room.
func StateTopic(kind string, room string) string {
	return fmt.Sprintf("%s/%s/%s/state", haPrefix, kind, room)
}

// SensorStateTopic is the fixed sensor state topic used for the
// wallpad-wide gas/CO2 readings, which are not per-room.
func SensorStateTopic(deviceSuffix string) string {
	return fmt.Sprintf("%s/%s/wallpad_state_%s", haPrefix, haSensor, deviceSuffix)
}

// CommandTopic is where Home Assistant publishes a command for an
// on/off device (light switch index, plug outlet index, elevator,
// gas).
func CommandTopic(kind, room, device string) string {
	return fmt.Sprintf("%s/%s/%s_%s/set", haPrefix, kind, room, device)
}

// SubCommandTopic is where Home Assistant publishes one field of a
// multi-field device's command (thermostat mode/temp, aircon
// mode/temp/fan/swing).
func SubCommandTopic(kind, room, field string) string {
	return fmt.Sprintf("%s/%s/%s/%s", haPrefix, kind, room, field)
}

// DiscoveryTopic is where the discovery config document for one
// device is published (unretained) for Home Assistant to pick up.
func DiscoveryTopic(kind, room, device string) string {
	return fmt.Sprintf("%s/%s/%s_%s/config", haPrefix, kind, room, device)
}

// AirconStateTopic and AirconDiscoveryTopic use the separate
// aircon-branded topic root the original collector keeps distinct
// from the wallpad's own homeassistant/ prefix, so the two buses'
// auto-discovery entries never collide on name.
func AirconStateTopic(room string) string {
	return fmt.Sprintf("%s/%s/%s/state", airconDeviceName, haClimate, room)
}

func AirconSubCommandTopic(room, field string) string {
	return fmt.Sprintf("%s/%s/%s/%s", airconDeviceName, haClimate, room, field)
}

func AirconDiscoveryTopic(room string) string {
	return fmt.Sprintf("%s/%s/%s_aircon/config", airconDeviceName, haClimate, room)
}

// Command wildcards are what Adapter subscribes to on connect so every
// discovered entity's command topic reaches Hub.HandleCommand without
// the bridge having to subscribe to each room/device pair individually.

// LightCommandWildcard matches every light switch's /set topic.
func LightCommandWildcard() string { return fmt.Sprintf("%s/%s/+/%s", haPrefix, haLight, "set") }

// SwitchCommandWildcard matches every plain switch's (plug, elevator,
// gas) /set topic.
func SwitchCommandWildcard() string { return fmt.Sprintf("%s/%s/+/%s", haPrefix, haSwitch, "set") }

// FanCommandWildcard matches the ventilation fan's fan_mode/fan_speed
// sub-command topics.
func FanCommandWildcard() string { return fmt.Sprintf("%s/%s/wallpad/+", haPrefix, haFan) }

// ClimateCommandWildcard matches every thermostat's mode/target_temp
// sub-command topics.
func ClimateCommandWildcard() string { return fmt.Sprintf("%s/%s/+/+", haPrefix, haClimate) }

// AirconCommandWildcard matches every aircon's mode/target_temp/
// fan_mode/swing_mode sub-command topics, under the separate
// LGAircon-branded root.
func AirconCommandWildcard() string { return fmt.Sprintf("%s/%s/+/+", airconDeviceName, haClimate) }
