package kocomasdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	f := Frame{
		DestDevice: Light,
		DestRoom:   0x01,
		SrcDevice:  Wallpad,
		SrcRoom:    0x00,
		Command:    On,
		Value:      0x0102030400000000,
	}

	raw, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, raw, FrameLen)
	assert.Equal(t, HeaderMagic[0], raw[0])
	assert.Equal(t, HeaderMagic[1], raw[1])
	assert.Equal(t, Postfix[0], raw[len(raw)-2])
	assert.Equal(t, Postfix[1], raw[len(raw)-1])

	body := raw[2 : 2+BodyLen]
	require.True(t, VerifyChecksum(body))

	got, err := ParseFrame(body)
	require.NoError(t, err)
	assert.Equal(t, f.DestDevice, got.DestDevice)
	assert.Equal(t, f.DestRoom, got.DestRoom)
	assert.Equal(t, f.SrcDevice, got.SrcDevice)
	assert.Equal(t, f.Command, got.Command)
	assert.Equal(t, f.Value, got.Value)
}

func TestChecksumDetectsCorruption(t *testing.T) {
	f := NewCommandFrame(Plug, Wallpad, 0x02, Status)
	raw, err := f.MarshalBinary()
	require.NoError(t, err)

	body := raw[2 : 2+BodyLen]
	require.True(t, VerifyChecksum(body))

	corrupt := append([]byte(nil), body...)
	corrupt[3] ^= 0xff
	assert.False(t, VerifyChecksum(corrupt))
}

func TestParseFrameRejectsWrongLength(t *testing.T) {
	_, err := ParseFrame(make([]byte, BodyLen-1))
	assert.ErrorIs(t, err, ErrBodyLen)
}

func TestDeviceKindString(t *testing.T) {
	assert.Equal(t, "light", Light.String())
	assert.True(t, Light.Valid())
	assert.False(t, DeviceKind(0xff).Valid())
}
