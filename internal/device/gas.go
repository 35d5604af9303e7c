package device

import "github.com/kkweon/kocom-bridge/internal/kocomasdu"

// Gas is the gas valve: a safety device that can be remotely shut off
// but never remotely turned on. On is held locally, so the bridge can
// republish it without waiting on a fresh CHECK.
type Gas struct {
	On bool
}

// NewGas builds a Gas, assumed on until a Shutoff — a closed valve is
// the safe-but-surprising default, so this starts from the
// unsurprising one.
func NewGas() *Gas {
	return &Gas{On: true}
}

// EncodeFrame implements kocombus.FrameEncoder. Any command other than
// CHECK is forced to OFF: the gas valve hardware has no remote-on
// path.
func (g *Gas) EncodeFrame(cmd kocomasdu.CommandCode) kocomasdu.Frame {
	return kocomasdu.EncodeGasFrame(cmd)
}

// Decode is a no-op: the gas frame's value carries no payload worth
// parsing, and On is never inferred from a received frame — only
// Shutoff ever changes it, matching the original collector's gas
// parser, which only ever reads its locally held state back out.
func (g *Gas) Decode(uint64) {}

// Shutoff records a locally issued OFF command's effect, since the gas
// bus only ever ACKs a shutoff rather than reporting a new state.
func (g *Gas) Shutoff() {
	g.On = false
}
