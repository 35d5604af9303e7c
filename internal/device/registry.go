// Package device holds one typed record per wallpad/aircon device kind
// and the room tables needed to address them, sitting between the bus
// codecs (kocomasdu, lgac) and the MQTT bridge.
package device

import "fmt"

// Registry is the immutable set of rooms and per-room sizes this
// installation has configured. It is built once at startup from the
// bridge's configuration file and never mutated afterward.
type Registry struct {
	// Rooms lists every room that has light/plug/fan/gas devices,
	// keyed by the two-digit room number the bus uses.
	Rooms map[byte]string
	// RoomsThermostat lists rooms with a thermostat, which uses a
	// distinct room numbering from Rooms on some installations.
	RoomsThermostat map[byte]string
	// RoomsAircon lists every aircon unit, keyed by its bus id (the
	// unit's position in the ROOMS_AIRCONS env list) — the aircon bus
	// uses its own room numbering, distinct from Rooms and
	// RoomsThermostat, and every unit shares bus group 0.
	RoomsAircon map[byte]string
	// LightSize is how many light switches each room has, keyed by
	// room name.
	LightSize map[string]int
	// PlugSize is how many plug outlets each room has, keyed by room
	// name.
	PlugSize map[string]int
	// InitTemp is the thermostat setback temperature used whenever a
	// thermostat isn't actively heating to a set point.
	InitTemp byte
}

// Target addresses one aircon unit by its bus group and id.
type Target struct {
	Group byte
	ID    byte
}

// RoomName resolves a light/plug/fan/gas room byte to its configured
// name, or "" if unconfigured.
func (r *Registry) RoomName(room byte) string {
	return r.Rooms[room]
}

// ThermoRoomName resolves a thermostat room byte to its configured
// name, or "" if unconfigured.
func (r *Registry) ThermoRoomName(room byte) string {
	return r.RoomsThermostat[room]
}

// LightCount returns how many lights roomName has, or 0 if
// unconfigured.
func (r *Registry) LightCount(roomName string) int {
	return r.LightSize[roomName]
}

// PlugCount returns how many plugs roomName has, or 0 if unconfigured.
func (r *Registry) PlugCount(roomName string) int {
	return r.PlugSize[roomName]
}

// AirconTargets returns every configured aircon unit as a bus Target,
// group fixed at 0 — the aircon protocol only ever addresses group 0
// in this installation's original deployment (a multi-group system
// would need a richer config shape than ROOMS_AIRCONS provides).
func (r *Registry) AirconTargets() map[Target]string {
	out := make(map[Target]string, len(r.RoomsAircon))
	for id, name := range r.RoomsAircon {
		out[Target{Group: 0, ID: id}] = name
	}
	return out
}

// Validate reports an error if the registry has no usable rooms at
// all — a configuration mistake worth failing fast on at startup
// rather than silently running a bridge that talks to nothing.
func (r *Registry) Validate() error {
	if len(r.Rooms) == 0 && len(r.RoomsThermostat) == 0 && len(r.RoomsAircon) == 0 {
		return fmt.Errorf("device: registry has no rooms or aircons configured")
	}
	return nil
}
