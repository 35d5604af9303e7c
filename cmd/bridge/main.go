// Command bridge runs the kocom/aircon-to-MQTT bridge: it reads
// configuration from an optional YAML file overlaid by environment
// variables, then supervises the core for as long as the process
// lives, rebuilding it on every MQTT-triggered reconnect.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/kkweon/kocom-bridge/internal/config"
	"github.com/kkweon/kocom-bridge/internal/hub"
	"github.com/kkweon/kocom-bridge/internal/mqttbridge"
	"github.com/kkweon/kocom-bridge/internal/supervisor"
	"github.com/kkweon/kocom-bridge/internal/xlog"
)

func main() {
	var (
		configPath   = pflag.StringP("config", "c", "", "Path to an optional YAML config file.")
		logLevelFlag = pflag.StringP("log-level", "l", "", "Override the configured log level (debug, info, warn).")
		dryRun       = pflag.BoolP("dry-run", "n", false, "Load and validate configuration, then exit without connecting.")
	)
	pflag.Parse()

	log := xlog.New("bridge")

	file, err := config.ReadFile(*configPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	if *logLevelFlag != "" {
		file.LogLevel = *logLevelFlag
	}

	cfg, err := config.Load(file)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.SetLevel(cfg.LogLevel)

	log.Infof("kocom-bridge starting, kocom=%s:%d aircon=%s:%d mqtt=%s:%d",
		cfg.Kocom.Host, cfg.Kocom.Port, cfg.Aircon.Host, cfg.Aircon.Port, cfg.MQTT.Broker, cfg.MQTT.Port)

	if *dryRun {
		fmt.Println("configuration OK")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	build := func() (*hub.Hub, error) {
		registry := cfg.Registry

		// NewAdapter requires non-nil callbacks up front, but they are
		// methods on the Hub it will be wired into — h is filled in
		// right after New returns, and the closures only run once the
		// adapter actually starts receiving messages, by which point
		// h is always non-nil.
		var h *hub.Hub
		adapter := mqttbridge.NewAdapter(cfg.MQTT, log.With("mqtt"),
			func(topic []string, payload string) { h.HandleCommand(topic, payload) },
			func(name string, payload string) { h.HandleControl(name, payload) },
		)

		h = hub.New(log.With("hub"), &registry, cfg.Kocom, cfg.Aircon, adapter)
		return h, nil
	}

	if err := supervisor.Run(ctx, log, build); err != nil {
		log.Errorf("fatal: %v", err)
		os.Exit(1)
	}
}
