// Package ws implements the exchange's websocket feed: public market
// channels plus the authenticated account channel, which reuses the same
// HMAC scheme as the REST endpoints.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/starkbot/gostark/pkg/clock"
	"github.com/starkbot/gostark/stark/signing"
	"github.com/starkbot/gostark/stark/types"
)

// Channel names.
const (
	ChannelAccounts  = "v3_accounts"
	ChannelOrderbook = "v3_orderbook"
	ChannelTrades    = "v3_trades"
	ChannelMarkets   = "v3_markets"
)

// wsRequestPath is what the account-channel HMAC is computed over.
const wsRequestPath = "/ws/accounts"

// Message is one frame from the feed.
type Message struct {
	Type     string          `json:"type"`
	Channel  string          `json:"channel"`
	ID       string          `json:"id,omitempty"`
	Contents json.RawMessage `json:"contents,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// MessageHandler consumes frames for one channel.
type MessageHandler func(msg *Message)

type subscription struct {
	payload map[string]any
	channel string
	id      string // market for per-market channels, empty otherwise
}

// Config for the websocket client.
type Config struct {
	URL            string
	Auth           *signing.Authenticator // required for the accounts channel
	Clock          *clock.Clock           // defaults to an unsynced clock
	PingInterval   time.Duration
	ReconnectDelay time.Duration
	MaxReconnects  int // 0 means unlimited
	Logger         *logrus.Logger
}

// Client maintains one websocket connection with automatic reconnect and
// re-subscribe. Handlers run on the read loop goroutine and must not block.
type Client struct {
	url            string
	auth           *signing.Authenticator
	clock          *clock.Clock
	pingInterval   time.Duration
	reconnectDelay time.Duration
	maxReconnects  int
	log            *logrus.Entry

	mu            sync.RWMutex
	conn          *websocket.Conn
	connected     bool
	handlers      map[string]MessageHandler
	subscriptions []subscription
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("websocket url is required")
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 15 * time.Second
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 2 * time.Second
	}
	ck := cfg.Clock
	if ck == nil {
		ck = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		url:            cfg.URL,
		auth:           cfg.Auth,
		clock:          ck,
		pingInterval:   cfg.PingInterval,
		reconnectDelay: cfg.ReconnectDelay,
		maxReconnects:  cfg.MaxReconnects,
		log:            logger.WithField("component", "stark_ws"),
		handlers:       make(map[string]MessageHandler),
	}, nil
}

// OnChannel registers the handler for one channel. Must be called before
// Connect.
func (c *Client) OnChannel(channel string, handler MessageHandler) {
	c.mu.Lock()
	c.handlers[channel] = handler
	c.mu.Unlock()
}

// Connect dials the feed and starts the read and ping loops. It returns
// once the connection is established; the loops run until ctx is done or
// Close is called.
func (c *Client) Connect(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	if err := c.dial(runCtx); err != nil {
		cancel()
		return err
	}

	c.wg.Add(2)
	go c.readLoop(runCtx)
	go c.pingLoop(runCtx)
	return nil
}

func (c *Client) dial(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	c.mu.Lock()
	c.conn = conn
	c.connected = true
	subs := make([]subscription, len(c.subscriptions))
	copy(subs, c.subscriptions)
	c.mu.Unlock()

	// Replay subscriptions after a reconnect.
	for _, sub := range subs {
		if err := c.writeJSON(sub.payload); err != nil {
			c.log.WithError(err).WithField("channel", sub.channel).Warn("re-subscribe failed")
		}
	}
	return nil
}

// SubscribeOrderbook subscribes to the book channel for one market.
func (c *Client) SubscribeOrderbook(market string) error {
	return c.subscribe(ChannelOrderbook, map[string]any{
		"type":    "subscribe",
		"channel": ChannelOrderbook,
		"id":      market,
	})
}

// SubscribeTrades subscribes to the trade tape for one market.
func (c *Client) SubscribeTrades(market string) error {
	return c.subscribe(ChannelTrades, map[string]any{
		"type":    "subscribe",
		"channel": ChannelTrades,
		"id":      market,
	})
}

// SubscribeMarkets subscribes to venue-wide market updates.
func (c *Client) SubscribeMarkets() error {
	return c.subscribe(ChannelMarkets, map[string]any{
		"type":    "subscribe",
		"channel": ChannelMarkets,
	})
}

// SubscribeAccounts subscribes to the private account channel. The
// subscribe frame is authenticated with the REST HMAC scheme over
// (timestamp, GET, /ws/accounts, empty body); the timestamp is captured
// once and sent exactly as signed.
func (c *Client) SubscribeAccounts() error {
	if c.auth == nil {
		return errors.New("accounts channel requires api credentials")
	}
	isoTimestamp := c.clock.NowISO()
	headers, err := c.auth.Headers(wsRequestPath, types.MethodGet, isoTimestamp, "")
	if err != nil {
		return err
	}
	return c.subscribe(ChannelAccounts, map[string]any{
		"type":          "subscribe",
		"channel":       ChannelAccounts,
		"accountNumber": "0",
		"apiKey":        headers[signing.HeaderAPIKey],
		"signature":     headers[signing.HeaderSignature],
		"timestamp":     isoTimestamp,
		"passphrase":    headers[signing.HeaderPassphrase],
	})
}

func (c *Client) subscribe(channel string, payload map[string]any) error {
	id, _ := payload["id"].(string)

	c.mu.Lock()
	// Re-subscribing to the same channel/market replaces the stored frame so
	// a reconnect replays each subscription once.
	found := false
	for i := range c.subscriptions {
		if c.subscriptions[i].channel == channel && c.subscriptions[i].id == id {
			c.subscriptions[i].payload = payload
			found = true
			break
		}
	}
	if !found {
		c.subscriptions = append(c.subscriptions, subscription{payload: payload, channel: channel, id: id})
	}
	connected := c.connected
	c.mu.Unlock()

	if !connected {
		return nil // sent on connect
	}
	return c.writeJSON(payload)
}

func (c *Client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return errors.New("not connected")
	}
	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteJSON(v)
}

func (c *Client) readLoop(ctx context.Context) {
	defer c.wg.Done()
	reconnects := 0
	for {
		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()
		if conn == nil {
			return
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.mu.Lock()
			c.connected = false
			c.mu.Unlock()

			reconnects++
			if c.maxReconnects > 0 && reconnects > c.maxReconnects {
				c.log.WithError(err).Error("websocket closed, reconnect budget exhausted")
				return
			}
			c.log.WithError(err).Warn("websocket closed, reconnecting")
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.reconnectDelay):
			}
			if err := c.dial(ctx); err != nil {
				c.log.WithError(err).Warn("reconnect failed")
			}
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.WithError(err).Debug("unparseable frame")
			continue
		}
		if msg.Type == "error" {
			c.log.WithField("message", msg.Message).Warn("feed error frame")
			continue
		}

		c.mu.RLock()
		handler := c.handlers[msg.Channel]
		c.mu.RUnlock()
		if handler != nil {
			handler(&msg)
		}
	}
}

func (c *Client) pingLoop(ctx context.Context) {
	defer c.wg.Done()
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			conn := c.conn
			if conn != nil {
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					c.log.WithError(err).Debug("ping failed")
				}
			}
			c.mu.Unlock()
		}
	}
}

// Close stops the loops and closes the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	conn := c.conn
	c.conn = nil
	c.connected = false
	c.mu.Unlock()

	var err error
	if conn != nil {
		err = conn.Close()
	}
	c.wg.Wait()
	return err
}
