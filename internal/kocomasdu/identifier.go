// Package kocomasdu implements the wallpad bus's application data unit:
// the 21-byte frame layout, the device/command code tables, and the
// per-device-kind payload codecs. It plays the role go-iecp5's asdu
// package plays for IEC 60870-5-104, generalised to the kocom wire
// format.
package kocomasdu

import "fmt"

// DeviceKind is the wallpad bus device identification byte.
type DeviceKind byte

// The wallpad bus device code table.
const (
	Wallpad    DeviceKind = 0x01
	Light      DeviceKind = 0x0e
	Thermostat DeviceKind = 0x36
	Plug       DeviceKind = 0x3b
	Elevator   DeviceKind = 0x44
	Gas        DeviceKind = 0x2c
	Fan        DeviceKind = 0x48
)

var deviceKindNames = map[DeviceKind]string{
	Wallpad:    "wallpad",
	Light:      "light",
	Thermostat: "thermostat",
	Plug:       "plug",
	Elevator:   "elevator",
	Gas:        "gas",
	Fan:        "fan",
}

func (d DeviceKind) String() string {
	if s, ok := deviceKindNames[d]; ok {
		return s
	}
	return fmt.Sprintf("DeviceKind<0x%02x>", byte(d))
}

// Valid reports whether d is a recognised device code.
func (d DeviceKind) Valid() bool {
	_, ok := deviceKindNames[d]
	return ok
}

// CommandCode is the wallpad bus command byte.
type CommandCode byte

const (
	Check  CommandCode = 0x3a
	Status CommandCode = 0x00
	On     CommandCode = 0x01
	Off    CommandCode = 0x02
)

var commandNames = map[CommandCode]string{
	Check:  "check",
	Status: "status",
	On:     "on",
	Off:    "off",
}

func (c CommandCode) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("CommandCode<0x%02x>", byte(c))
}

// PacketType distinguishes a command frame in flight from its
// acknowledgement.
type PacketType byte

const (
	Send PacketType = iota + 1
	Ack
)

func (t PacketType) String() string {
	switch t {
	case Send:
		return "send"
	case Ack:
		return "ack"
	default:
		return "unknown"
	}
}

// HeaderMark names one of the wallpad bus's legacy header byte pairs.
// Main is the canonical aa 55 header with a 17-byte body; the others
// are header variants seen on the wire from older or noisier panels,
// each with its own body length (checksum byte included).
type HeaderMark struct {
	Name    string
	B1, B2  byte
	BodyLen int
}

// HeaderTable lists every header this bus recognises, Main first.
// Callers decide whether a frame used the canonical header by
// comparing its header name against MainHeader.
var HeaderTable = []HeaderMark{
	{"Main", 0xaa, 0x55, 17},
	{"D555", 0xd5, 0x55, 16},
	{"B515", 0xb5, 0x15, 16},
	{"ABC1", 0xab, 0xc1, 16},
	{"5530", 0x55, 0x30, 16},
	{"D530", 0xd5, 0x30, 16},
	{"D515", 0xd5, 0x15, 16},
	{"5515", 0x55, 0x15, 16},
	{"AD05", 0xad, 0x05, 16},
	{"55E2", 0x55, 0xe2, 15},
	{"55EA", 0x55, 0xea, 15},
}

// MainHeader is HeaderTable[0]'s name, the canonical non-legacy header.
const MainHeader = "Main"

// FirstHeaderBytes returns the set of every header's first byte, used
// by the framer to decide whether a stray byte could start a frame.
func FirstHeaderBytes() map[byte]struct{} {
	out := make(map[byte]struct{}, len(HeaderTable))
	for _, h := range HeaderTable {
		out[h.B1] = struct{}{}
	}
	return out
}

// FooterByte is both bytes of the two-byte frame terminator 0x0d 0x0d.
const FooterByte = 0x0d
