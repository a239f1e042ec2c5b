package remote

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
)

// ConnConfig configures a Conn.
type ConnConfig struct {
	// ReadTimeout bounds the time between two client messages. Zero
	// disables the deadline.
	ReadTimeout time.Duration

	// WriteTimeout bounds each write. Defaults to 10 seconds.
	WriteTimeout time.Duration

	// MaxMessageSize limits the size of a client message in bytes.
	// Defaults to 64 KiB.
	MaxMessageSize int64
}

// Conn carries commands and messages over a websocket. Send may be called
// from any goroutine; Read must only be called from one.
type Conn struct {
	ws     *websocket.Conn
	config ConnConfig

	mu     sync.Mutex
	closed bool
}

// NewConn wraps ws.
func NewConn(ws *websocket.Conn, config ConnConfig) *Conn {
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 10 * time.Second
	}
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = 64 << 10
	}
	ws.SetReadLimit(config.MaxMessageSize)
	return &Conn{ws: ws, config: config}
}

// Send writes each command as one text message, in order.
func (c *Conn) Send(cmds ...Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return mdcerrors.New("E122")
	}
	for _, cmd := range cmds {
		data, err := EncodeCommand(cmd)
		if err != nil {
			return err
		}
		c.ws.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
		if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
			return mdcerrors.New("E122").Wrap(err)
		}
	}
	return nil
}

// Read blocks until the next client message. Malformed messages are
// returned as E120 errors and the connection stays usable; any other
// error means the connection is gone.
func (c *Conn) Read() (Message, error) {
	if c.config.ReadTimeout > 0 {
		c.ws.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	}
	typ, data, err := c.ws.ReadMessage()
	if err != nil {
		return Message{}, err
	}
	if typ != websocket.TextMessage {
		return Message{}, mdcerrors.New("E120").WithDetail("binary messages are not supported")
	}
	return DecodeMessage(data)
}

// Close sends a close frame and closes the connection.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return c.ws.Close()
}

// IsUnexpected reports whether err is a read error worth logging.
func IsUnexpected(err error) bool {
	return websocket.IsUnexpectedCloseError(err,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure,
		websocket.CloseNormalClosure)
}
