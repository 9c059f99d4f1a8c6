// Package mqtt bridges the coordination engine to an MQTT broker: structured
// intents arrive on one topic, result envelopes leave on another. The broker
// side is where the external query-interpretation collaborator publishes;
// the core itself stays free of network I/O.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/skyops/fieldcoord/core/intent"
	"github.com/skyops/fieldcoord/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT bridge.
type Config struct {
	Enabled     bool   `json:"enabled"`
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	IntentTopic string `json:"intent_topic"`
	ResultTopic string `json:"result_topic"`
	QoS         byte   `json:"qos"`
}

// SetDefaults applies sane defaults. The client identifier gets a random
// suffix so multiple bridges can share a broker.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "fieldcoord-" + uuid.NewString()[:8]
	}
	if c.IntentTopic == "" {
		c.IntentTopic = "fieldcoord/intents"
	}
	if c.ResultTopic == "" {
		c.ResultTopic = "fieldcoord/results"
	}
}

// Handler turns an intent into a result envelope; the coordinator's Do
// method satisfies it.
type Handler func(intent.Intent) any

// Bridge subscribes to the intent topic and publishes results.
type Bridge struct {
	cli     paho.Client
	cfg     Config
	handler Handler
	log     logger.Logger
}

// NewBridge connects to the broker and subscribes to the intent topic.
func NewBridge(cfg Config, handler Handler) (*Bridge, error) {
	cfg.SetDefaults()
	b := &Bridge{cfg: cfg, handler: handler, log: logger.New("mqtt-bridge")}

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)
	opts.OnConnect = func(c paho.Client) {
		b.log.Infof("connected to %s", cfg.Broker)
		if token := c.Subscribe(cfg.IntentTopic, cfg.QoS, b.onIntent); token.Wait() && token.Error() != nil {
			b.log.Errorf("subscribe %s: %v", cfg.IntentTopic, token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		b.log.Errorf("connection lost: %v", err)
	}

	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Broker, token.Error())
	}
	b.cli = cli
	return b, nil
}

func (b *Bridge) onIntent(_ paho.Client, msg paho.Message) {
	var it intent.Intent
	if err := json.Unmarshal(msg.Payload(), &it); err != nil {
		b.log.Warnf("discarding malformed intent: %v", err)
		return
	}
	b.log.Debugw("intent received", map[string]any{"op": string(it.Op), "mission": it.MissionID})
	res := b.handler(it)
	payload, err := json.Marshal(res)
	if err != nil {
		b.log.Errorf("marshal result: %v", err)
		return
	}
	if token := b.cli.Publish(b.cfg.ResultTopic, b.cfg.QoS, false, payload); token.Wait() && token.Error() != nil {
		b.log.Errorf("publish result: %v", token.Error())
	}
}

// Publish sends an arbitrary event payload to the result topic. The app
// uses it to forward assignment and conflict events from the bus.
func (b *Bridge) Publish(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	token := b.cli.Publish(b.cfg.ResultTopic, b.cfg.QoS, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (b *Bridge) Close() {
	b.cli.Disconnect(250)
}
