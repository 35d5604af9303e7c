// Package supervisor wraps hub.Run in the outer restart loop the
// original collector's main() ran under: any exit from the core
// rebuilds everything and runs again, except a fatal aircon-bus
// failure, which the original treated as unrecoverable (sys.exit(1)
// from deep inside the packet handler) and which we reproduce here at
// the top level instead.
package supervisor

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/kkweon/kocom-bridge/internal/hub"
	"github.com/kkweon/kocom-bridge/internal/lgac"
	"github.com/kkweon/kocom-bridge/internal/xlog"
)

// Builder constructs a fresh Hub for each restart — a new one is
// needed every time because Hub's bus engines and MQTT adapter don't
// support being reused after Run returns.
type Builder func() (*hub.Hub, error)

// Run drives build/Run in a loop, rebuilding the core on
// hub.ErrRestartRequested and exiting the process on
// lgac.ErrMaxReadRetries, matching the original's two distinct
// "restart everything" vs. "give up, this installation is broken"
// behaviors.
func Run(ctx context.Context, log *xlog.Logger, build Builder) error {
	for {
		h, err := build()
		if err != nil {
			return err
		}

		log.Infof("entering main loop")
		err = h.Run(ctx)

		switch {
		case err == nil, errors.Is(err, context.Canceled):
			return nil
		case errors.Is(err, lgac.ErrMaxReadRetries):
			log.Errorf("aircon bus unrecoverable, exiting: %v", err)
			time.Sleep(5 * time.Second)
			os.Exit(1)
		default:
			// Any other exit — including ErrRestartRequested —
			// rebuilds the core and runs again, matching the
			// original's unconditional "Exit from main loop.
			// Restarting!" outer while-loop.
			log.Infof("core exited (%v), restarting", err)
			continue
		}
	}
}
