// Package hub wires the wallpad bus, the aircon bus and the MQTT
// bridge together: it turns bus events into MQTT publishes, MQTT
// commands into bus writes, and owns the periodic scan/discovery
// schedule.
package hub

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kkweon/kocom-bridge/internal/device"
	"github.com/kkweon/kocom-bridge/internal/kocombus"
	"github.com/kkweon/kocom-bridge/internal/lgac"
	"github.com/kkweon/kocom-bridge/internal/mqttbridge"
	"github.com/kkweon/kocom-bridge/internal/xlog"
)

// ErrRestartRequested is returned by Run when the MQTT control
// namespace's "reconnect" message arrives. It is not a failure: the
// original collector's own reconnect control handler
// (prepare_reconnect) closes every device socket and cancels every
// running task so its outer while-loop redials everything from
// scratch, and this is the same shape — the caller (internal/supervisor)
// is expected to call Run again, rebuilding a fresh Hub.
var ErrRestartRequested = errors.New("hub: reconnect requested, restart core")

// Hub owns every device record, the two bus engines and the MQTT
// adapter, and mediates between them.
type Hub struct {
	log      *xlog.Logger
	registry *device.Registry
	kocomCfg kocombus.Config

	kocom *kocombus.Engine
	lgac  *lgac.Engine
	mqtt  *mqttbridge.Adapter

	mu          sync.Mutex
	lights      map[byte]*device.Light
	plugs       map[byte]*device.Plug
	thermostats map[byte]*device.Thermostat
	fan         *device.Fan
	fanSensor   *device.FanSensor
	gas         *device.Gas
	elevator    *device.Elevator
	aircons     map[device.Target]*device.Aircon

	pendingDiscovery atomic.Bool
	restart          chan struct{}
}

// New builds a Hub over registry, with devices pre-populated for
// every room/unit it names. It owns the kocombus and lgac engines it
// creates — the kocombus engine's frame callback is bound to this
// Hub's handleKocomFrame, which is why Hub builds the engines rather
// than receiving them ready-made.
func New(log *xlog.Logger, registry *device.Registry, kocomCfg kocombus.Config, lgacCfg lgac.Config, adapter *mqttbridge.Adapter) *Hub {
	h := &Hub{
		log:         log,
		registry:    registry,
		kocomCfg:    kocomCfg,
		mqtt:        adapter,
		lights:      make(map[byte]*device.Light),
		plugs:       make(map[byte]*device.Plug),
		thermostats: make(map[byte]*device.Thermostat),
		fan:         device.NewFan(),
		fanSensor:   &device.FanSensor{},
		gas:         device.NewGas(),
		elevator:    device.NewElevator(),
		aircons:     make(map[device.Target]*device.Aircon),
		restart:     make(chan struct{}, 1),
	}

	for room, name := range registry.Rooms {
		h.lights[room] = device.NewLight(room, name, registry.LightCount(name))
		h.plugs[room] = device.NewPlug(room, name, registry.PlugCount(name))
	}
	for room, name := range registry.RoomsThermostat {
		h.thermostats[room] = device.NewThermostat(room, name, registry.InitTemp)
	}
	for t, name := range registry.AirconTargets() {
		h.aircons[t] = device.NewAircon(lgac.Target{Group: t.Group, ID: t.ID}, name)
	}

	h.kocom = kocombus.NewEngine(kocomCfg, log.With("kocombus"), kocombus.NewQueue(), h.handleKocomFrame)
	h.lgac = lgac.NewEngine(lgacCfg, log.With("lgac"))

	adapter.Subscribe(mqttbridge.LightCommandWildcard())
	adapter.Subscribe(mqttbridge.SwitchCommandWildcard())
	adapter.Subscribe(mqttbridge.FanCommandWildcard())
	adapter.Subscribe(mqttbridge.ClimateCommandWildcard())
	adapter.Subscribe(mqttbridge.AirconCommandWildcard())
	adapter.OnConnect(func() { h.pendingDiscovery.Store(true) })
	return h
}

// Run starts the bus engines, the scan schedules and the MQTT adapter,
// and blocks until ctx is cancelled, the MQTT control namespace asks
// for a reconnect (ErrRestartRequested), or any component fails
// fatally.
func (h *Hub) Run(ctx context.Context) error {
	if err := h.mqtt.Connect(); err != nil {
		return err
	}
	defer h.mqtt.Disconnect()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return h.kocom.Run(gctx) })

	scanner := kocombus.NewScanner(h.kocomScanInterval(), h.kocom.Queue(), h.log)
	h.registerScanTargets(scanner)
	g.Go(func() error { scanner.Run(gctx); return nil })

	g.Go(func() error { return h.runAirconScans(gctx) })
	g.Go(func() error { return h.runDiscoveryTicker(gctx) })
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case <-h.restart:
			return ErrRestartRequested
		}
	})

	return g.Wait()
}

func (h *Hub) kocomScanInterval() time.Duration {
	if h.kocomCfg.ScanInterval <= 0 {
		return 60 * time.Second
	}
	return h.kocomCfg.ScanInterval
}

// runDiscoveryTicker publishes discovery documents from its own
// five-second tick, once per armed connect, rather than directly from
// the MQTT connect callback, matching the original collector's
// start_discovery-flag indirection.
func (h *Hub) runDiscoveryTicker(ctx context.Context) error {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if h.pendingDiscovery.CompareAndSwap(true, false) {
				h.publishAllDiscovery()
			}
		}
	}
}
