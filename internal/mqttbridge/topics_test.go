package mqttbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlTopicShape(t *testing.T) {
	assert.Equal(t, "rs485/bridge/config/log_level", ControlTopic("log_level"))
	assert.Equal(t, "rs485/bridge/#", ControlWildcard())
}

func TestAirconTopicsUseSeparateBrand(t *testing.T) {
	assert.Equal(t, "LGAircon/climate/kitchen/state", AirconStateTopic("kitchen"))
	assert.Equal(t, "LGAircon/climate/kitchen_aircon/config", AirconDiscoveryTopic("kitchen"))
}

func TestWallpadDiscoveryUsesHomeAssistantRoot(t *testing.T) {
	topic, doc := SwitchDiscovery("livingroom", "plug1")
	assert.Equal(t, "homeassistant/switch/livingroom_plug1/config", topic)
	assert.Equal(t, "homeassistant/switch/livingroom/state", doc["stat_t"])
}

func TestAirconDiscoveryUsesLGBrand(t *testing.T) {
	topic, doc := AirconDiscovery("kitchen")
	assert.Equal(t, "LGAircon/climate/kitchen_aircon/config", topic)
	assert.Equal(t, "LGAircon/climate/kitchen/state", doc["mode_stat_t"])
	assert.Equal(t, []string{"off", "cool", "dry", "fan_only"}, doc["modes"])
}

func TestCommandWildcardsCoverAllPlatforms(t *testing.T) {
	assert.Equal(t, "homeassistant/light/+/set", LightCommandWildcard())
	assert.Equal(t, "homeassistant/switch/+/set", SwitchCommandWildcard())
	assert.Equal(t, "homeassistant/fan/wallpad/+", FanCommandWildcard())
	assert.Equal(t, "homeassistant/climate/+/+", ClimateCommandWildcard())
	assert.Equal(t, "LGAircon/climate/+/+", AirconCommandWildcard())
}
