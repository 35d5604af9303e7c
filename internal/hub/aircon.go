package hub

import (
	"context"

	"github.com/kkweon/kocom-bridge/internal/device"
	"github.com/kkweon/kocom-bridge/internal/lgac"
)

// runAirconScans polls every configured aircon unit on its own bus,
// bypassing the wallpad queue entirely — the aircon bus is a separate
// physical link with its own one-shot-per-command transaction engine.
func (h *Hub) runAirconScans(ctx context.Context) error {
	h.mu.Lock()
	targets := make([]lgac.Target, 0, len(h.aircons))
	for t := range h.aircons {
		targets = append(targets, lgac.Target{Group: t.Group, ID: t.ID})
	}
	h.mu.Unlock()

	return h.lgac.ScanLoop(ctx, targets, h.handleAirconStatus)
}

func (h *Hub) handleAirconStatus(t lgac.Target, status lgac.Status) {
	h.mu.Lock()
	a, ok := h.aircons[device.Target{Group: t.Group, ID: t.ID}]
	h.mu.Unlock()
	if !ok {
		return
	}

	a.ApplyStatus(status)
	h.publishAircon(a)
}
