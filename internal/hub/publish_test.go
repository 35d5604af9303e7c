package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kkweon/kocom-bridge/internal/lgac"
)

func TestOnOffIsLowercase(t *testing.T) {
	assert.Equal(t, "on", onOff(true))
	assert.Equal(t, "off", onOff(false))
}

func TestAirconModeStringOffOverridesMode(t *testing.T) {
	assert.Equal(t, "off", airconModeString(lgac.ModeCool, false))
}

func TestAirconModeStringCases(t *testing.T) {
	assert.Equal(t, "cool", airconModeString(lgac.ModeCool, true))
	assert.Equal(t, "cool", airconModeString(lgac.ModeAuto, true))
	assert.Equal(t, "dry", airconModeString(lgac.ModeDry, true))
	assert.Equal(t, "fan_only", airconModeString(lgac.ModeFanOnly, true))
	assert.Equal(t, "heat", airconModeString(lgac.ModeHeat, true))
}

func TestAirconFanModeStringCases(t *testing.T) {
	assert.Equal(t, "low", airconFanModeString(lgac.FanLow))
	assert.Equal(t, "low", airconFanModeString(lgac.FanAuto))
	assert.Equal(t, "medium", airconFanModeString(lgac.FanMedium))
	assert.Equal(t, "high", airconFanModeString(lgac.FanHigh))
	assert.Equal(t, "silent", airconFanModeString(lgac.FanSilent))
	assert.Equal(t, "power", airconFanModeString(lgac.FanPower))
}
