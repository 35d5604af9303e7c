package kocomasdu

// EncodeElevatorFrame builds the elevator call/check frame. Calling
// the elevator is modelled as the wallpad sending an On command to
// the elevator bus slot; a check instead addresses the elevator as
// source, wallpad as destination, mirroring every other device's
// check frame shape.
func EncodeElevatorFrame(cmd CommandCode) Frame {
	if cmd == Check {
		return NewCommandFrame(Elevator, Wallpad, 0, Check)
	}
	return NewCommandFrame(Wallpad, Elevator, 0, On)
}
