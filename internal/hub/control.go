package hub

import "github.com/kkweon/kocom-bridge/internal/xlog"

// HandleControl implements mqttbridge.ControlHandler for the reserved
// rs485/bridge/config/* namespace.
func (h *Hub) HandleControl(name string, payload string) {
	switch name {
	case "log_level":
		h.log.SetLevel(xlog.ParseLevel(payload))
		h.log.Infof("log level set to %s", payload)
	case "restart":
		// The original collector's "restart" control message just
		// republishes discovery, it does not restart anything.
		h.publishAllDiscovery()
	case "remove":
		h.removeAllDiscovery()
	case "reconnect":
		h.log.Warnf("reconnect requested, restarting core")
		h.kocom.Reconnect()
		select {
		case h.restart <- struct{}{}:
		default:
		}
	case "check_alive":
		h.log.Debugf("check_alive received")
	default:
		h.log.Warnf("unknown control topic %q", name)
	}
}
