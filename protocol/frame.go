package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// senderHeaderLen is the fixed width of the sender identity prefix on
// binary frames received from the gateway.
const senderHeaderLen = 4

// ErrShortFrame reports a binary frame too short to carry the sender
// header.
var ErrShortFrame = errors.New("protocol: binary frame shorter than sender header")

// DecodeFrame splits an inbound binary frame into the sender id (first
// 4 bytes, big-endian) and its payload. The framing is asymmetric:
// clients send raw payloads and the gateway stamps sender identity on
// relayed frames, so only inbound frames carry the prefix.
//
// Postcondition: The returned payload aliases data; it may be empty but
// is never nil-extended or copied.
func DecodeFrame(data []byte) (PlayerID, []byte, error) {
	if len(data) < senderHeaderLen {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(data))
	}
	sender := PlayerID(binary.BigEndian.Uint32(data[:senderHeaderLen]))
	return sender, data[senderHeaderLen:], nil
}

// EncodeFrame builds a sender-prefixed binary frame as the gateway does
// when relaying binary traffic. The client never sends prefixed frames
// itself; this exists for the round-trip property and for test servers.
func EncodeFrame(sender PlayerID, payload []byte) []byte {
	out := make([]byte, senderHeaderLen+len(payload))
	binary.BigEndian.PutUint32(out[:senderHeaderLen], uint32(sender))
	copy(out[senderHeaderLen:], payload)
	return out
}
