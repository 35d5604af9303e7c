package mqttbridge

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/kkweon/kocom-bridge/internal/xlog"
)

// Config holds broker connection settings.
type Config struct {
	Broker    string
	Port      int
	ClientID  string
	Anonymous bool
	Username  string
	Password  string
}

// CommandHandler receives a device command topic, already split on
// '/', and its payload.
type CommandHandler func(topic []string, payload string)

// ControlHandler receives one rs485/bridge/config/<name> control
// message's payload.
type ControlHandler func(name string, payload string)

// Adapter wraps a paho MQTT client with the bridge's topic
// conventions: a reserved control namespace plus per-device command
// and discovery topics.
type Adapter struct {
	cfg Config
	log *xlog.Logger

	client mqtt.Client

	onCommand CommandHandler
	onControl ControlHandler
	onConnect func()

	subscriptions []string
}

// NewAdapter builds an Adapter. onCommand is called for any
// subscribed device command topic; onControl for anything under
// rs485/bridge/config/*.
func NewAdapter(cfg Config, log *xlog.Logger, onCommand CommandHandler, onControl ControlHandler) *Adapter {
	return &Adapter{cfg: cfg, log: log, onCommand: onCommand, onControl: onControl}
}

// OnConnect registers a callback fired every time the client
// (re)connects, after its subscriptions are resubmitted. The original
// collector uses this moment to arm a "start discovery" flag rather
// than publishing discovery documents directly from the MQTT
// library's own callback; Hub relies on the same indirection.
func (a *Adapter) OnConnect(fn func()) {
	a.onConnect = fn
}

// Connect dials the broker and blocks until the initial connection
// succeeds or fails.
func (a *Adapter) Connect() error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", a.cfg.Broker, a.cfg.Port))
	opts.SetClientID(a.cfg.ClientID)
	if !a.cfg.Anonymous {
		opts.SetUsername(a.cfg.Username)
		opts.SetPassword(a.cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(a.handleConnect)
	opts.SetConnectionLostHandler(a.handleConnectionLost)
	opts.SetDefaultPublishHandler(a.handleMessage)

	a.client = mqtt.NewClient(opts)
	token := a.client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("mqttbridge: connect timed out")
	}
	return token.Error()
}

// Disconnect cleanly closes the connection.
func (a *Adapter) Disconnect() {
	if a.client != nil {
		a.client.Disconnect(250)
	}
}

func (a *Adapter) handleConnect(client mqtt.Client) {
	a.log.Infof("mqtt connected")
	if token := client.Subscribe(ControlWildcard(), 0, nil); token.Wait() && token.Error() != nil {
		a.log.Warnf("subscribe %s: %v", ControlWildcard(), token.Error())
	}
	for _, topic := range a.subscriptions {
		if token := client.Subscribe(topic, 0, nil); token.Wait() && token.Error() != nil {
			a.log.Warnf("subscribe %s: %v", topic, token.Error())
		}
	}
	if a.onConnect != nil {
		a.onConnect()
	}
}

func (a *Adapter) handleConnectionLost(client mqtt.Client, err error) {
	a.log.Warnf("mqtt connection lost: %v", err)
}

func (a *Adapter) handleMessage(client mqtt.Client, msg mqtt.Message) {
	parts := strings.Split(msg.Topic(), "/")
	payload := string(msg.Payload())

	if len(parts) == 4 && parts[0] == controlRoot && parts[1] == controlBridge && parts[2] == "config" {
		a.onControl(parts[3], payload)
		return
	}
	a.onCommand(parts, payload)
}

// Subscribe registers an additional device command topic to
// subscribe to on (re)connect. Call before Connect for topics known
// up front; safe to call after too, though it will not take effect
// until the next reconnect.
func (a *Adapter) Subscribe(topic string) {
	a.subscriptions = append(a.subscriptions, topic)
}

// PublishJSON marshals v and publishes it to topic at QoS 0,
// unretained — matching the original collector, which never sets the
// retain flag on any publish.
func (a *Adapter) PublishJSON(topic string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("mqttbridge: marshal %s: %w", topic, err)
	}
	token := a.client.Publish(topic, 0, false, body)
	token.Wait()
	return token.Error()
}

// PublishDiscovery publishes a Document to topic.
func (a *Adapter) PublishDiscovery(topic string, doc Document) error {
	return a.PublishJSON(topic, doc)
}

// RemoveDiscovery publishes an empty payload to topic, which tells
// Home Assistant to forget the entity — the original collector's
// "remove" control message does this for every discovered entity.
func (a *Adapter) RemoveDiscovery(topic string) error {
	token := a.client.Publish(topic, 0, false, []byte{})
	token.Wait()
	return token.Error()
}
