// Package config loads the bridge's settings from an optional YAML
// file overlaid by environment variables, exactly the two-source-of-truth
// shape the original collector used (an INI file plus os.Getenv
// overrides) — env always wins.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kkweon/kocom-bridge/internal/device"
	"github.com/kkweon/kocom-bridge/internal/kocombus"
	"github.com/kkweon/kocom-bridge/internal/lgac"
	"github.com/kkweon/kocom-bridge/internal/mqttbridge"
	"github.com/kkweon/kocom-bridge/internal/xlog"
)

// File is the on-disk YAML shape config.Load can overlay environment
// variables onto. Every field is optional; an empty file is valid and
// simply means everything comes from the environment.
type File struct {
	LogLevel string `yaml:"log_level"`

	Kocom struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"kocom"`

	Aircon struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"aircon"`

	MQTT struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		ClientID  string `yaml:"client_id"`
		Anonymous bool   `yaml:"anonymous"`
		Username  string `yaml:"username"`
		Password  string `yaml:"password"`
	} `yaml:"mqtt"`

	TemperatureAdjust float64 `yaml:"temperature_adjust"`
	InitTemp          int     `yaml:"init_temp"`

	Rooms             string `yaml:"rooms"`
	RoomsPlugNumbers  string `yaml:"rooms_plug_numbers"`
	RoomsLightNumbers string `yaml:"rooms_light_numbers"`
	RoomsThermostats  string `yaml:"rooms_thermostats"`
	RoomsAircons      string `yaml:"rooms_aircons"`
}

// Config is the fully resolved, validated configuration the bridge
// runs with.
type Config struct {
	LogLevel xlog.Level

	Kocom  kocombus.Config
	Aircon lgac.Config
	MQTT   mqttbridge.Config

	Registry device.Registry
}

// ReadFile loads a YAML file at path. A missing file is not an error —
// it simply yields a zero File, so the bridge can run purely off
// environment variables.
func ReadFile(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, nil
}

// Load builds a Config from f overlaid with environment variables
// (env wins over file, matching appconf.py's load_env_values), then
// validates every sub-config.
func Load(f File) (Config, error) {
	cfg := Config{
		LogLevel: xlog.ParseLevel(firstNonEmpty(os.Getenv("CONF_LOGLEVEL"), f.LogLevel)),
		Kocom: kocombus.Config{
			Host: firstNonEmpty(os.Getenv("KOCOM_SERVER_IP"), f.Kocom.Host),
			Port: firstPositiveInt(os.Getenv("KOCOM_SERVER_PORT"), f.Kocom.Port),
		},
		Aircon: lgac.Config{
			Host: firstNonEmpty(os.Getenv("LGAIRCON_SERVER_IP"), f.Aircon.Host),
			Port: firstPositiveInt(os.Getenv("LGAIRCON_SERVER_PORT"), f.Aircon.Port),
		},
		MQTT: mqttbridge.Config{
			Broker:    firstNonEmpty(os.Getenv("MQTT_SERVER_IP"), f.MQTT.Host),
			Port:      firstPositiveInt(os.Getenv("MQTT_SERVER_PORT"), f.MQTT.Port),
			ClientID:  firstNonEmpty(f.MQTT.ClientID, "kocom-bridge"),
			Anonymous: f.MQTT.Anonymous,
			Username:  f.MQTT.Username,
			Password:  f.MQTT.Password,
		},
	}

	if v := os.Getenv("TEMPERATURE_ADJUST"); v != "" {
		if adj, err := strconv.ParseFloat(v, 64); err == nil {
			f.TemperatureAdjust = adj
		}
	}
	cfg.Aircon.TempAdjust = f.TemperatureAdjust

	registry, err := buildRegistry(f)
	if err != nil {
		return Config{}, err
	}
	cfg.Registry = registry

	if err := cfg.Kocom.Valid(); err != nil {
		return Config{}, err
	}
	if err := cfg.Aircon.Valid(); err != nil {
		return Config{}, err
	}
	if cfg.MQTT.Broker == "" {
		return Config{}, fmt.Errorf("config: MQTT broker address is required")
	}
	if err := cfg.Registry.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// buildRegistry parses the colon-delimited ROOMS* environment
// variables into a device.Registry, matching appconf.py's
// load_env_values room/plug/light/thermostat/aircon parsing: each
// list is indexed, and the index becomes the room's bus byte ("%02x"
// of the index in the original, byte(idx) here).
func buildRegistry(f File) (device.Registry, error) {
	reg := device.Registry{
		Rooms:           map[byte]string{},
		RoomsThermostat: map[byte]string{},
		RoomsAircon:     map[byte]string{},
		LightSize:       map[string]int{},
		PlugSize:        map[string]int{},
	}

	rooms := splitList(firstNonEmpty(os.Getenv("ROOMS"), f.Rooms))
	roomByIdx := map[byte]string{}
	for i, name := range rooms {
		id := byte(i)
		roomByIdx[id] = name
		reg.Rooms[id] = name
	}

	plugNumbers := splitList(firstNonEmpty(os.Getenv("ROOMS_PLUG_NUMBERS"), f.RoomsPlugNumbers))
	for i, s := range plugNumbers {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			continue
		}
		name, ok := roomByIdx[byte(i)]
		if !ok {
			return device.Registry{}, fmt.Errorf("config: ROOMS_PLUG_NUMBERS index %d has no matching room", i)
		}
		reg.PlugSize[name] = n
	}

	lightNumbers := splitList(firstNonEmpty(os.Getenv("ROOMS_LIGHT_NUMBERS"), f.RoomsLightNumbers))
	for i, s := range lightNumbers {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			continue
		}
		name, ok := roomByIdx[byte(i)]
		if !ok {
			return device.Registry{}, fmt.Errorf("config: ROOMS_LIGHT_NUMBERS index %d has no matching room", i)
		}
		reg.LightSize[name] = n
	}

	thermostats := splitList(firstNonEmpty(os.Getenv("ROOMS_THERMOSTATS"), f.RoomsThermostats))
	for i, name := range thermostats {
		reg.RoomsThermostat[byte(i)] = name
	}

	aircons := splitList(firstNonEmpty(os.Getenv("ROOMS_AIRCONS"), f.RoomsAircons))
	for i, name := range aircons {
		reg.RoomsAircon[byte(i)] = name
	}

	reg.InitTemp = byte(firstPositiveInt(os.Getenv("INIT_TEMP"), f.InitTemp))
	if reg.InitTemp == 0 {
		reg.InitTemp = 22
	}

	return reg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ":")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositiveInt(envVal string, fallback int) int {
	if envVal != "" {
		if n, err := strconv.Atoi(envVal); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
