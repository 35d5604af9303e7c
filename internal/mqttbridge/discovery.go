package mqttbridge

// Document is one Home-Assistant MQTT discovery config payload.
// It is marshaled to JSON exactly as built here — HA's discovery
// schema uses short, often abbreviated keys (stat_t, cmd_t, val_tpl)
// that this package reproduces verbatim rather than translating.
type Document map[string]any

func baseDocument(name, uniqueID, model, manufacturer string) Document {
	return Document{
		"name":    name,
		"uniq_id": uniqueID,
		"device": Document{
			"name": name,
			"ids":  uniqueID,
			"mf":   manufacturer,
			"mdl":  model,
			"sw":   swVersionString,
		},
	}
}

// SwitchDiscovery builds the discovery document for a plain on/off
// switch entity: elevator call button, gas valve, one plug outlet.
func SwitchDiscovery(room, device string) (topic string, doc Document) {
	name := serviceName + "_" + room + "_" + device
	doc = baseDocument(name, name, "Wallpad", "KOCOM")
	doc["stat_t"] = StateTopic(haSwitch, room)
	doc["val_tpl"] = "{{ value_json." + device + " }}"
	doc["cmd_t"] = CommandTopic(haSwitch, room, device)
	doc["pl_on"] = "on"
	doc["pl_off"] = "off"
	return DiscoveryTopic(haSwitch, room, device), doc
}

// LightDiscovery builds the discovery document for one light switch
// within a room's bank.
func LightDiscovery(room, device string) (topic string, doc Document) {
	name := serviceName + "_" + room + "_" + device
	doc = baseDocument(name, name, "Wallpad", "KOCOM")
	doc["stat_t"] = StateTopic(haLight, room)
	doc["stat_val_tpl"] = "{{ value_json." + device + " }}"
	doc["cmd_t"] = CommandTopic(haLight, room, device)
	doc["pl_on"] = "on"
	doc["pl_off"] = "off"
	return DiscoveryTopic(haLight, room, device), doc
}

// GasSensorDiscovery builds the wallpad-wide gas valve's sensor
// mirror entity, published alongside its switch entity.
func GasSensorDiscovery() (topic string, doc Document) {
	name := serviceName + "_wallpad_gas"
	doc = baseDocument(name, name, "Wallpad", "KOCOM")
	doc["stat_t"] = SensorStateTopic("gas")
	doc["val_tpl"] = "{{ value_json.gas }}"
	return DiscoveryTopic(haSensor, "wallpad", "gas"), doc
}

// FanDiscovery builds the ventilation fan's discovery document —
// percentage-controlled, with a fixed 4-step speed range matching the
// bus's off/low/medium/high encoding.
func FanDiscovery() (topic string, doc Document) {
	name := serviceName + "_wallpad_fan"
	doc = baseDocument(name, name, "Wallpad", "KOCOM")
	doc["stat_t"] = StateTopic(haFan, "wallpad")
	doc["state_value_template"] = "{{ value_json.fan_mode }}"
	doc["cmd_t"] = SubCommandTopic(haFan, "wallpad", "fan_mode")
	doc["speed_range_min"] = 1
	doc["speed_range_max"] = 4
	doc["percentage_state_topic"] = StateTopic(haFan, "wallpad")
	doc["percentage_value_template"] = "{{ value_json.fan_speed }}"
	doc["percentage_command_topic"] = SubCommandTopic(haFan, "wallpad", "fan_speed")
	return DiscoveryTopic(haFan, "wallpad", "fan"), doc
}

// FanSensorDiscovery builds the CO2 sensor's discovery document.
func FanSensorDiscovery() (topic string, doc Document) {
	name := serviceName + "_wallpad_co2"
	doc = baseDocument(name, name, "Wallpad", "KOCOM")
	doc["stat_t"] = SensorStateTopic("co2")
	doc["unit_of_measurement"] = "ppm"
	doc["val_tpl"] = "{{ value_json.co2 }}"
	return DiscoveryTopic(haSensor, "wallpad", "co2"), doc
}

// ThermostatDiscovery builds a room thermostat's climate entity,
// offering off/heat/fan_only modes over a 5-40°C range.
func ThermostatDiscovery(room string) (topic string, doc Document) {
	name := serviceName + "_" + room + "_thermostat"
	doc = baseDocument(name, name, "Wallpad", "KOCOM")
	doc["mode_stat_t"] = StateTopic(haClimate, room)
	doc["mode_stat_tpl"] = "{{ value_json.mode }}"
	doc["mode_cmd_t"] = SubCommandTopic(haClimate, room, "mode")
	doc["modes"] = []string{"off", "heat", "fan_only"}
	doc["temp_stat_t"] = StateTopic(haClimate, room)
	doc["temp_stat_tpl"] = "{{ value_json.target_temp }}"
	doc["temp_cmd_t"] = SubCommandTopic(haClimate, room, "target_temp")
	doc["curr_temp_t"] = StateTopic(haClimate, room)
	doc["curr_temp_tpl"] = "{{ value_json.current_temp }}"
	doc["min_temp"] = 5
	doc["max_temp"] = 40
	doc["temp_step"] = 1
	return DiscoveryTopic(haClimate, room, "thermostat"), doc
}

// AirconDiscovery builds one aircon unit's climate entity, under the
// LGAircon-branded topic root. It exposes mode, target/current
// temperature, fan mode and swing.
func AirconDiscovery(room string) (topic string, doc Document) {
	name := airconDeviceName + "_" + room + "_aircon"
	doc = baseDocument(name, name, "System Aircon", "LG")
	doc["mode_stat_t"] = AirconStateTopic(room)
	doc["mode_stat_tpl"] = "{{ value_json.mode }}"
	doc["mode_cmd_t"] = AirconSubCommandTopic(room, "mode")
	doc["modes"] = []string{"off", "cool", "dry", "fan_only"}
	doc["temp_stat_t"] = AirconStateTopic(room)
	doc["temp_stat_tpl"] = "{{ value_json.target_temp }}"
	doc["temp_cmd_t"] = AirconSubCommandTopic(room, "target_temp")
	doc["min_temp"] = 18
	doc["max_temp"] = 33
	doc["temp_step"] = 1
	doc["curr_temp_t"] = AirconStateTopic(room)
	doc["curr_temp_tpl"] = "{{ value_json.current_temp }}"
	doc["fan_mode_stat_t"] = AirconStateTopic(room)
	doc["fan_mode_stat_tpl"] = "{{ value_json.fan_mode }}"
	doc["fan_mode_cmd_t"] = AirconSubCommandTopic(room, "fan_mode")
	doc["fan_modes"] = []string{"low", "medium", "high", "off"}
	doc["swing_mode_stat_t"] = AirconStateTopic(room)
	doc["swing_mode_stat_tpl"] = "{{ value_json.swing_mode }}"
	doc["swing_mode_cmd_t"] = AirconSubCommandTopic(room, "swing_mode")
	doc["swing_modes"] = []string{"on", "off"}
	return AirconDiscoveryTopic(room), doc
}
