package client

import (
	"errors"

	"go.uber.org/zap"
)

var (
	errNotConnected     = errors.New("transport not open")
	errAlreadyConnected = errors.New("already connecting or connected")
)

// drop records a swallowed failure. The protocol contract is fail
// silent, stay usable: malformed inbound frames, unknown tags, and
// sends while disconnected are discarded without surfacing anything to
// callers. Every such discard funnels through here so the contract is
// enforced in one place and still visible to the diagnostic sink.
func (c *Client) drop(what string, err error) {
	c.logger.Debug("dropped",
		zap.String("what", what),
		zap.Error(err),
	)
}
