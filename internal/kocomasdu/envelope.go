package kocomasdu

// Envelope is a Frame's header fields re-interpreted: packet
// direction, sequence number and the parsed source/destination
// device+room pairs. It does not know about payload formats — that is
// left to each device kind's own decoder.
type Envelope struct {
	Type      PacketType
	Sequence  int
	Command   CommandCode
	SrcDevice DeviceKind
	SrcRoom   byte
	DstDevice DeviceKind
	DstRoom   byte
	Swapped   bool
}

// legacyHeaderSeconds is the set of every header variant's second
// byte. A type-and-sequence field whose top byte falls in this set
// did not come from a panel using the 0x30xx convention; it is
// treated as a bare ACK with sequence zero.
var legacyHeaderSeconds = func() map[byte]struct{} {
	out := make(map[byte]struct{}, len(HeaderTable))
	for _, h := range HeaderTable {
		out[h.B2] = struct{}{}
	}
	return out
}()

// Classify derives an Envelope's Type and Sequence from f.TypeAndSeq,
// and fills in the basic source/destination fields. ok is false for a
// type-and-sequence value this bus has never been observed to use.
func Classify(f Frame) (Envelope, bool) {
	e := Envelope{
		Command:   f.Command,
		SrcDevice: f.SrcDevice,
		SrcRoom:   f.SrcRoom,
		DstDevice: f.DestDevice,
		DstRoom:   f.DestRoom,
	}

	top := byte(f.TypeAndSeq >> 8)
	if top == 0x30 {
		switch f.TypeAndSeq & 0x00f0 {
		case 0x00b0:
			e.Type = Send
		case 0x00d0:
			e.Type = Ack
		default:
			return Envelope{}, false
		}
		e.Sequence = int(f.TypeAndSeq&0x000f) - 0x0c
		return e, true
	}

	if _, ok := legacyHeaderSeconds[top]; ok {
		e.Type = Ack
		e.Sequence = 0
		return e, true
	}
	return Envelope{}, false
}

// IsAckWhenCheck reports an ACK responding to a CHECK probe — these
// carry no state worth parsing further.
func (e Envelope) IsAckWhenCheck() bool {
	return e.Command == Check && e.Type == Ack
}

// IsSendToElevator reports a SEND command addressed to the elevator,
// the one device the wallpad itself originates commands to rather
// than merely acknowledging.
func (e Envelope) IsSendToElevator() bool {
	return e.Type == Send && e.DstDevice == Elevator
}

// IsAckToWallpad reports an ACK whose destination is the wallpad
// controller itself.
func (e Envelope) IsAckToWallpad() bool {
	return e.Type == Ack && e.DstDevice == Wallpad
}

// IsAckFromWallpad reports an ACK whose source is the wallpad
// controller — these carry the source/destination pair reversed from
// the device's point of view and need SwapIfNeeded applied before the
// room and device fields mean what they look like they mean.
func (e Envelope) IsAckFromWallpad() bool {
	return e.Type == Ack && e.SrcDevice == Wallpad
}

// IsFakeDeviceForFan reports the synthetic self-addressed frame the
// fan's CO2 sensor uses: source and destination are both Fan.
func (e Envelope) IsFakeDeviceForFan() bool {
	return e.SrcDevice == Fan && e.DstDevice == Fan
}

// SwapIfNeeded exchanges source and destination device+room when the
// envelope is an ACK originated by the wallpad, matching the original
// collector's swap-on-ack-from-wallpad rule. After a swap the source
// is no longer the wallpad, so a second call leaves the fields as they
// are.
func (e *Envelope) SwapIfNeeded() {
	if !e.IsAckFromWallpad() {
		return
	}
	e.SrcDevice, e.DstDevice = e.DstDevice, e.SrcDevice
	e.SrcRoom, e.DstRoom = e.DstRoom, e.SrcRoom
	e.Swapped = true
}
