package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkweon/kocom-bridge/internal/lgac"
	"github.com/kkweon/kocom-bridge/internal/xlog"
)

func baseFile() File {
	var f File
	f.Kocom.Host = "10.0.0.1"
	f.Kocom.Port = 8899
	f.Aircon.Host = "10.0.0.2"
	f.Aircon.Port = 8899
	f.MQTT.Host = "10.0.0.3"
	f.MQTT.Port = 1883
	f.Rooms = "livingroom:bedroom"
	f.RoomsAircons = "kitchen"
	return f
}

func TestLoadUsesFileValuesWhenEnvUnset(t *testing.T) {
	cfg, err := Load(baseFile())
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", cfg.Kocom.Host)
	assert.Equal(t, 8899, cfg.Kocom.Port)
	assert.Equal(t, "10.0.0.3", cfg.MQTT.Broker)
	assert.Equal(t, "kocom-bridge", cfg.MQTT.ClientID)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("KOCOM_SERVER_IP", "192.168.0.9")
	t.Setenv("KOCOM_SERVER_PORT", "7777")
	t.Setenv("CONF_LOGLEVEL", "debug")

	cfg, err := Load(baseFile())
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.9", cfg.Kocom.Host)
	assert.Equal(t, 7777, cfg.Kocom.Port)
	assert.Equal(t, xlog.LevelDebug, cfg.LogLevel)
}

func TestLoadRejectsMissingMQTTBroker(t *testing.T) {
	f := baseFile()
	f.MQTT.Host = ""
	_, err := Load(f)
	assert.Error(t, err)
}

func TestLoadBuildsRegistryFromRoomLists(t *testing.T) {
	f := baseFile()
	f.RoomsPlugNumbers = "2:1"
	f.RoomsLightNumbers = "3:2"

	cfg, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, "livingroom", cfg.Registry.Rooms[0])
	assert.Equal(t, "bedroom", cfg.Registry.Rooms[1])
	assert.Equal(t, 2, cfg.Registry.PlugCount("livingroom"))
	assert.Equal(t, 3, cfg.Registry.LightCount("livingroom"))
	assert.Equal(t, "kitchen", cfg.Registry.RoomsAircon[0])
}

func TestLoadDefaultsInitTempTo22(t *testing.T) {
	cfg, err := Load(baseFile())
	require.NoError(t, err)
	assert.Equal(t, byte(22), cfg.Registry.InitTemp)
}

func TestLoadInitTempFromFile(t *testing.T) {
	f := baseFile()
	f.InitTemp = 19
	cfg, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, byte(19), cfg.Registry.InitTemp)
}

func TestLoadInitTempEnvOverridesFile(t *testing.T) {
	t.Setenv("INIT_TEMP", "25")
	f := baseFile()
	f.InitTemp = 19
	cfg, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, byte(25), cfg.Registry.InitTemp)
}

func TestLoadDefaultsTemperatureAdjustToPointFive(t *testing.T) {
	cfg, err := Load(baseFile())
	require.NoError(t, err)
	assert.Equal(t, lgac.TempAdjustDefault, cfg.Aircon.TempAdjust)
}

func TestLoadTemperatureAdjustEnvOverridesFile(t *testing.T) {
	t.Setenv("TEMPERATURE_ADJUST", "1.2")
	f := baseFile()
	f.TemperatureAdjust = 0.8
	cfg, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, 1.2, cfg.Aircon.TempAdjust)
}

func TestLoadRejectsPlugIndexWithNoMatchingRoom(t *testing.T) {
	f := baseFile()
	f.RoomsPlugNumbers = "2:1:3"
	_, err := Load(f)
	assert.Error(t, err)
}

func TestReadFileMissingPathIsNotAnError(t *testing.T) {
	f, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestReadFileEmptyPathIsNotAnError(t *testing.T) {
	f, err := ReadFile("")
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}
