// Package client implements the session handler for the room gateway:
// it owns the connection, mirrors the authoritative session state the
// gateway reports, and exposes the room/messaging API plus a typed event
// surface. Application code never touches the transport directly.
package client

import "github.com/YzzY5665/netClient/protocol"

// Session is an immutable snapshot of the mirrored server state. Nil
// pointer fields mean "not assigned". Snapshots are produced only by the
// inbound transition function and reset wholesale when the connection
// closes.
//
// Invariants, after every transition:
//   - IsHost is true exactly when PlayerID and OwnerID are both set and
//     equal.
//   - A set RoomID implies a set OwnerID.
type Session struct {
	// PlayerID is the identity the gateway assigned to this connection.
	PlayerID *protocol.PlayerID
	// RoomID is the room currently occupied, if any.
	RoomID *protocol.RoomID
	// OwnerID is the current room's owner, if in a room.
	OwnerID *protocol.PlayerID
	// IsHost reports whether the local player owns the current room.
	IsHost bool
}

// InRoom reports whether the session currently occupies a room.
func (s Session) InRoom() bool { return s.RoomID != nil }

// Identified reports whether the gateway has assigned a player id yet.
func (s Session) Identified() bool { return s.PlayerID != nil }
