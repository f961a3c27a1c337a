package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/YzzY5665/netClient/eventbus"
	"github.com/YzzY5665/netClient/protocol"
	"github.com/YzzY5665/netClient/transport"
)

// Status is the connection lifecycle state. There is no reconnecting
// state: a closed connection stays closed until Connect is called again
// on a fresh Disconnected client.
type Status int

const (
	// StatusDisconnected means no transport exists.
	StatusDisconnected Status = iota
	// StatusConnecting means a dial is in flight.
	StatusConnecting
	// StatusConnected means the transport is open and sends are allowed.
	StatusConnected
)

// String returns the status name for logging.
func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Config holds client construction parameters.
type Config struct {
	// GameName namespaces this client's rooms; it is folded into the tag
	// set of every createRoom and listRooms intent.
	GameName string
	// Logger is the diagnostic sink for transport errors and swallowed
	// frames. Optional; defaults to a no-op logger.
	Logger *zap.Logger
	// Dialer opens the transport. Optional; defaults to the WebSocket
	// dialer. Tests inject in-memory transports here.
	Dialer transport.Dialer
}

// Client mirrors the gateway's view of this player and exposes the
// room/messaging API. All methods are safe for concurrent use; inbound
// messages are processed strictly in delivery order, one at a time,
// with state committed before the corresponding event fires.
type Client struct {
	gameName string
	logger   *zap.Logger
	dial     transport.Dialer
	bus      *eventbus.Bus

	mu      sync.Mutex
	status  Status
	conn    transport.Transport
	session Session
}

// New creates a disconnected Client.
//
// Precondition: cfg.GameName must be non-empty.
func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dial := cfg.Dialer
	if dial == nil {
		dial = transport.Dial
	}
	return &Client{
		gameName: cfg.GameName,
		logger:   logger,
		dial:     dial,
		bus:      eventbus.New(logger),
	}
}

// Session returns the current state snapshot.
func (c *Client) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Status returns the current connection state.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Connect dials the gateway in the background and returns immediately.
// On transport open the "connected" event fires; a dial failure is
// logged and leaves the client disconnected without any event. Calling
// Connect while connecting or connected is a no-op.
//
// ctx bounds the dial only; once open, the connection lives until the
// transport closes or Disconnect is called.
func (c *Client) Connect(ctx context.Context, url string) {
	c.mu.Lock()
	if c.status != StatusDisconnected {
		c.mu.Unlock()
		c.drop("connect", errAlreadyConnected)
		return
	}
	c.status = StatusConnecting
	c.mu.Unlock()

	go func() {
		conn, err := c.dial(ctx, url)

		c.mu.Lock()
		if c.status != StatusConnecting {
			// Disconnect raced the dial; discard the connection.
			c.mu.Unlock()
			if conn != nil {
				_ = conn.Close()
			}
			return
		}
		if err != nil {
			c.status = StatusDisconnected
			c.mu.Unlock()
			c.logger.Warn("transport dial failed",
				zap.String("url", url),
				zap.Error(err),
			)
			return
		}
		c.conn = conn
		c.status = StatusConnected
		c.mu.Unlock()

		c.logger.Info("transport open", zap.String("url", url))
		c.bus.Emit(EventConnected)
		go c.readLoop(conn)
	}()
}

// Disconnect closes the transport and drops the handle immediately. It
// does not wait for confirmation or flush pending sends; a no-op when
// never connected or already closed. Session reset and the
// "disconnected" event follow from the transport close notification.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	if c.status == StatusConnecting {
		// Dial still in flight; the dial goroutine sees the state change
		// and discards its connection.
		c.status = StatusDisconnected
	}
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// readLoop pulls frames off the transport until it dies, routing each
// one to completion before reading the next. Delivery order is
// therefore processing order.
func (c *Client) readLoop(conn transport.Transport) {
	for {
		kind, data, err := conn.Read(context.Background())
		if err != nil {
			c.handleClose(conn, err)
			return
		}
		c.handleFrame(kind, data)
	}
}

// handleClose resets the session and reports the disconnect. The cause
// goes to the diagnostic sink only; the event surface just sees
// "disconnected".
func (c *Client) handleClose(conn transport.Transport, cause error) {
	c.mu.Lock()
	if c.conn != nil && c.conn != conn {
		// A newer connection took over; this loop's notification is stale.
		c.mu.Unlock()
		return
	}
	c.conn = nil
	c.status = StatusDisconnected
	c.session = Session{}
	c.mu.Unlock()

	c.logger.Info("transport closed", zap.Error(cause))
	c.bus.Emit(EventDisconnected)
}

// handleFrame decodes one inbound frame and applies it. Undecodable
// frames are dropped; the protocol treats them as noise.
func (c *Client) handleFrame(kind transport.Kind, data []byte) {
	if kind == transport.Binary {
		sender, payload, err := protocol.DecodeFrame(data)
		if err != nil {
			c.drop("binary frame", err)
			return
		}
		c.bus.Emit(EventBinary, sender, payload)
		return
	}

	msg, err := protocol.DecodeText(data)
	if err != nil {
		c.drop("text frame", err)
		return
	}

	c.mu.Lock()
	next, em := transition(c.session, msg)
	c.session = next
	c.mu.Unlock()

	if em.event != "" {
		c.bus.Emit(em.event, em.args...)
	}
}

// send encodes an intent and writes it to the text channel, subject to
// the gate in sendRaw.
func (c *Client) send(msg protocol.Outbound) {
	data, err := protocol.Encode(msg)
	if err != nil {
		c.drop("outbound intent", err)
		return
	}
	c.sendRaw(transport.Text, data)
}

// sendRaw writes one frame if the transport is open and silently drops
// it otherwise. Callers cannot distinguish "not connected" from "sent".
func (c *Client) sendRaw(kind transport.Kind, data []byte) {
	c.mu.Lock()
	conn := c.conn
	open := c.status == StatusConnected
	c.mu.Unlock()

	if !open || conn == nil {
		c.drop("send", errNotConnected)
		return
	}
	if err := conn.Write(context.Background(), kind, data); err != nil {
		c.drop("send", err)
	}
}
