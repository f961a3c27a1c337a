// Package transport defines the connection boundary the client depends
// on: an ordered, reliable, bidirectional stream of text and binary
// frames, plus the WebSocket implementation of it.
package transport

import "context"

// Kind distinguishes the two frame channels a connection carries.
type Kind int

const (
	// Text frames carry UTF-8 JSON protocol messages.
	Text Kind = iota
	// Binary frames carry opaque byte payloads.
	Binary
)

// String returns the frame kind name for logging.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Transport is a single open connection. Read blocks until the next
// frame arrives or the connection dies; frames are delivered in the
// order the peer sent them. Implementations must allow Read and Write
// from different goroutines.
type Transport interface {
	// Read returns the next inbound frame. A non-nil error means the
	// connection is gone; no further calls will succeed.
	Read(ctx context.Context) (Kind, []byte, error)
	// Write sends one frame.
	Write(ctx context.Context, kind Kind, data []byte) error
	// Close tears the connection down. Safe to call more than once.
	Close() error
}

// Dialer opens a Transport to the given endpoint URL.
type Dialer func(ctx context.Context, url string) (Transport, error)
