package kocomasdu

// DecodePlugStates reports, for count plug units in a Plug frame's
// Value, whether each is on. states[0] is unit 1. The bit layout is
// identical to Light; kept as a distinct function because the two
// device kinds are addressed and sized independently.
func DecodePlugStates(value uint64, count int) []bool {
	return DecodeLightStates(value, count)
}

// EncodePlugValue packs per-unit on/off states (states[0] is unit 1)
// into a Plug frame's Value field.
func EncodePlugValue(states []bool) uint64 {
	return EncodeLightValue(states)
}

// EncodePlugFrame builds the command frame a plug unit toggle or
// check sends from the bridge to room dstRoom.
func EncodePlugFrame(dstRoom byte, cmd CommandCode, states []bool) Frame {
	f := NewCommandFrame(Plug, Wallpad, dstRoom, cmd)
	if cmd != Check {
		f.Value = EncodePlugValue(states)
	}
	return f
}
