package transport

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
)

// readLimit caps a single inbound frame. Binary relay payloads can be
// large, so this is well above the default 32 KiB.
const readLimit = 4 << 20

// Dial opens a WebSocket connection negotiated for both text and binary
// frames. It is the production Dialer.
func Dial(ctx context.Context, url string) (Transport, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	conn.SetReadLimit(readLimit)
	return &wsTransport{conn: conn}, nil
}

type wsTransport struct {
	conn *websocket.Conn
}

func (t *wsTransport) Read(ctx context.Context) (Kind, []byte, error) {
	typ, data, err := t.conn.Read(ctx)
	if err != nil {
		return 0, nil, err
	}
	if typ == websocket.MessageBinary {
		return Binary, data, nil
	}
	return Text, data, nil
}

func (t *wsTransport) Write(ctx context.Context, kind Kind, data []byte) error {
	typ := websocket.MessageText
	if kind == Binary {
		typ = websocket.MessageBinary
	}
	return t.conn.Write(ctx, typ, data)
}

func (t *wsTransport) Close() error {
	return t.conn.Close(websocket.StatusNormalClosure, "")
}
