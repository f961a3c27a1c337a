package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message type discriminators carried in the "type" field of every text
// frame, in both directions.
const (
	TypeAssignID       = "assignId"
	TypeRoomCreated    = "roomCreated"
	TypeRoomJoined     = "roomJoined"
	TypePlayerJoined   = "playerJoined"
	TypeLeftRoom       = "leftRoom"
	TypeMakeHost       = "makeHost"
	TypeReassignedHost = "reassignedHost"
	TypePlayerLeft     = "playerLeft"
	TypeRelay          = "relay"
	TypeTellOwner      = "tellOwner"
	TypeTellPlayer     = "tellPlayer"
	TypeRoomList       = "roomList"
	TypeRoomUpdated    = "roomUpdated"
	TypeRoomTagAdded   = "roomTagAdded"
	TypeRoomTagRemoved = "roomTagRemoved"
	TypeError          = "error"

	TypeCreateRoom   = "createRoom"
	TypeJoinRoom     = "joinRoom"
	TypeLeaveRoom    = "leaveRoom"
	TypeListRooms    = "listRooms"
	TypeUpdateMeta   = "updateMeta"
	TypeSetRoomTag   = "setRoomTag"
	TypeClearRoomTag = "clearRoomTag"
)

// Decode failure sentinels. Both are expected during normal operation:
// the client discards the offending frame and carries on.
var (
	// ErrMalformed reports a text frame that is not valid JSON or whose
	// fields do not match the message's schema.
	ErrMalformed = errors.New("protocol: malformed message")
	// ErrUnknownType reports a well-formed message whose type tag has no
	// handler. Unknown tags are a forward-compatible no-op, not a fault.
	ErrUnknownType = errors.New("protocol: unknown message type")
)

// Inbound is the closed set of gateway-to-client messages. Exactly one
// concrete type exists per protocol tag; DecodeText is the only
// constructor.
type Inbound interface {
	inboundTag() string
}

// AssignID delivers the player identity for this connection. Sent once,
// immediately after the transport opens.
type AssignID struct {
	PlayerID PlayerID `json:"playerId"`
}

// RoomCreated confirms a createRoom intent; the local player owns the
// new room.
type RoomCreated struct {
	RoomID   RoomID   `json:"roomId"`
	PlayerID PlayerID `json:"playerId"`
	MetaData Metadata `json:"metaData"`
}

// RoomJoined confirms a joinRoom intent and carries the room's current
// owner and limits.
type RoomJoined struct {
	RoomID     RoomID   `json:"roomId"`
	PlayerID   PlayerID `json:"playerId"`
	OwnerID    PlayerID `json:"ownerId"`
	MaxClients int      `json:"maxClients"`
	MetaData   Metadata `json:"metaData"`
}

// PlayerJoined announces another player entering the current room.
type PlayerJoined struct {
	PlayerID PlayerID `json:"playerId"`
}

// LeftRoom confirms that the local player left the named room.
type LeftRoom struct {
	RoomID RoomID `json:"roomId"`
}

// MakeHost promotes the local player to room owner.
type MakeHost struct {
	OldHostID PlayerID `json:"oldHostId"`
}

// ReassignedHost announces an ownership change; the new host may or may
// not be the local player.
type ReassignedHost struct {
	NewHostID PlayerID `json:"newHostId"`
	OldHostID PlayerID `json:"oldHostId"`
}

// PlayerLeft announces another player leaving the current room.
type PlayerLeft struct {
	PlayerID PlayerID `json:"playerId"`
}

// Relay carries a payload broadcast by another room member.
type Relay struct {
	From    PlayerID        `json:"from"`
	Payload json.RawMessage `json:"payload"`
}

// TellOwner carries a payload directed at the local player in its role
// as room owner.
type TellOwner struct {
	From    PlayerID        `json:"from"`
	Payload json.RawMessage `json:"payload"`
}

// TellPlayer carries a payload directed specifically at the local player.
type TellPlayer struct {
	From    PlayerID        `json:"from"`
	Payload json.RawMessage `json:"payload"`
}

// RoomList answers a listRooms intent.
type RoomList struct {
	Rooms []Room `json:"rooms"`
}

// RoomUpdated announces replicated metadata for the current room.
type RoomUpdated struct {
	MetaData Metadata `json:"metaData"`
}

// RoomTagAdded announces a tag added to the current room, along with the
// room's full tag set after the change.
type RoomTagAdded struct {
	Tag  string   `json:"tag"`
	Tags []string `json:"tags"`
}

// RoomTagRemoved announces a tag removed from the current room.
type RoomTagRemoved struct {
	Tag  string   `json:"tag"`
	Tags []string `json:"tags"`
}

// ServerError relays a failure reported by the gateway. It is the only
// failure the protocol ever surfaces to application code.
type ServerError struct {
	Message string `json:"message"`
}

func (*AssignID) inboundTag() string       { return TypeAssignID }
func (*RoomCreated) inboundTag() string    { return TypeRoomCreated }
func (*RoomJoined) inboundTag() string     { return TypeRoomJoined }
func (*PlayerJoined) inboundTag() string   { return TypePlayerJoined }
func (*LeftRoom) inboundTag() string       { return TypeLeftRoom }
func (*MakeHost) inboundTag() string       { return TypeMakeHost }
func (*ReassignedHost) inboundTag() string { return TypeReassignedHost }
func (*PlayerLeft) inboundTag() string     { return TypePlayerLeft }
func (*Relay) inboundTag() string          { return TypeRelay }
func (*TellOwner) inboundTag() string      { return TypeTellOwner }
func (*TellPlayer) inboundTag() string     { return TypeTellPlayer }
func (*RoomList) inboundTag() string       { return TypeRoomList }
func (*RoomUpdated) inboundTag() string    { return TypeRoomUpdated }
func (*RoomTagAdded) inboundTag() string   { return TypeRoomTagAdded }
func (*RoomTagRemoved) inboundTag() string { return TypeRoomTagRemoved }
func (*ServerError) inboundTag() string    { return TypeError }

// DecodeText parses a text frame into its inbound variant.
//
// Postcondition: Returns exactly one of: a non-nil Inbound, an error
// wrapping ErrMalformed (unparseable frame), or an error wrapping
// ErrUnknownType (unrecognized tag).
func DecodeText(data []byte) (Inbound, error) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var msg Inbound
	switch env.Type {
	case TypeAssignID:
		msg = &AssignID{}
	case TypeRoomCreated:
		msg = &RoomCreated{}
	case TypeRoomJoined:
		msg = &RoomJoined{}
	case TypePlayerJoined:
		msg = &PlayerJoined{}
	case TypeLeftRoom:
		msg = &LeftRoom{}
	case TypeMakeHost:
		msg = &MakeHost{}
	case TypeReassignedHost:
		msg = &ReassignedHost{}
	case TypePlayerLeft:
		msg = &PlayerLeft{}
	case TypeRelay:
		msg = &Relay{}
	case TypeTellOwner:
		msg = &TellOwner{}
	case TypeTellPlayer:
		msg = &TellPlayer{}
	case TypeRoomList:
		msg = &RoomList{}
	case TypeRoomUpdated:
		msg = &RoomUpdated{}
	case TypeRoomTagAdded:
		msg = &RoomTagAdded{}
	case TypeRoomTagRemoved:
		msg = &RoomTagRemoved{}
	case TypeError:
		msg = &ServerError{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}

	if err := json.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformed, env.Type, err)
	}
	return msg, nil
}
