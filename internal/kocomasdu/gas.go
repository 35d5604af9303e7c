package kocomasdu

// EncodeGasFrame builds the gas valve command frame. The gas valve
// can only ever be commanded off from the bridge — a physical reset
// at the valve itself is required to turn it back on — so any command
// other than Check is forced to Off.
func EncodeGasFrame(cmd CommandCode) Frame {
	effective := cmd
	if cmd != Check {
		effective = Off
	}
	return NewCommandFrame(Gas, Wallpad, 0, effective)
}
