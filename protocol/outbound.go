package protocol

import (
	"encoding/json"
	"fmt"
)

// Outbound is the closed set of client-to-gateway intents. Each variant
// marshals to a single JSON object whose "type" field carries its tag;
// construct values with the New* functions so the tag is always set.
type Outbound interface {
	outboundTag() string
}

// CreateRoom asks the gateway to create a room owned by this client.
// Tags are sent as given; the client layer is responsible for namespace
// augmentation.
type CreateRoom struct {
	Type       string   `json:"type"`
	Tags       []string `json:"tags"`
	MaxClients int      `json:"maxClients"`
	MetaData   Metadata `json:"metaData"`
}

// JoinRoom asks to join an existing room by id.
type JoinRoom struct {
	Type   string `json:"type"`
	RoomID RoomID `json:"roomId"`
}

// LeaveRoom asks to leave the current room.
type LeaveRoom struct {
	Type string `json:"type"`
}

// ListRooms asks for the rooms matching all given tags.
type ListRooms struct {
	Type string   `json:"type"`
	Tags []string `json:"tags"`
}

// UpdateMeta replaces the current room's replicated metadata.
type UpdateMeta struct {
	Type     string   `json:"type"`
	MetaData Metadata `json:"metaData"`
}

// SetRoomTag adds a tag to the current room.
type SetRoomTag struct {
	Type string `json:"type"`
	Tag  string `json:"tag"`
}

// ClearRoomTag removes a tag from the current room.
type ClearRoomTag struct {
	Type string `json:"type"`
	Tag  string `json:"tag"`
}

// SendRelay broadcasts a payload to the other members of the current
// room.
type SendRelay struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// SendTellOwner sends a payload to the current room's owner.
type SendTellOwner struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// SendTellPlayer sends a payload to one specific player.
type SendTellPlayer struct {
	Type     string   `json:"type"`
	PlayerID PlayerID `json:"playerId"`
	Payload  any      `json:"payload"`
}

func (CreateRoom) outboundTag() string     { return TypeCreateRoom }
func (JoinRoom) outboundTag() string       { return TypeJoinRoom }
func (LeaveRoom) outboundTag() string      { return TypeLeaveRoom }
func (ListRooms) outboundTag() string      { return TypeListRooms }
func (UpdateMeta) outboundTag() string     { return TypeUpdateMeta }
func (SetRoomTag) outboundTag() string     { return TypeSetRoomTag }
func (ClearRoomTag) outboundTag() string   { return TypeClearRoomTag }
func (SendRelay) outboundTag() string      { return TypeRelay }
func (SendTellOwner) outboundTag() string  { return TypeTellOwner }
func (SendTellPlayer) outboundTag() string { return TypeTellPlayer }

// NewCreateRoom builds a createRoom intent.
func NewCreateRoom(tags []string, maxClients int, meta Metadata) CreateRoom {
	return CreateRoom{Type: TypeCreateRoom, Tags: tags, MaxClients: maxClients, MetaData: meta}
}

// NewJoinRoom builds a joinRoom intent.
func NewJoinRoom(roomID RoomID) JoinRoom {
	return JoinRoom{Type: TypeJoinRoom, RoomID: roomID}
}

// NewLeaveRoom builds a leaveRoom intent.
func NewLeaveRoom() LeaveRoom {
	return LeaveRoom{Type: TypeLeaveRoom}
}

// NewListRooms builds a listRooms intent.
func NewListRooms(tags []string) ListRooms {
	return ListRooms{Type: TypeListRooms, Tags: tags}
}

// NewUpdateMeta builds an updateMeta intent.
func NewUpdateMeta(meta Metadata) UpdateMeta {
	return UpdateMeta{Type: TypeUpdateMeta, MetaData: meta}
}

// NewSetRoomTag builds a setRoomTag intent.
func NewSetRoomTag(tag string) SetRoomTag {
	return SetRoomTag{Type: TypeSetRoomTag, Tag: tag}
}

// NewClearRoomTag builds a clearRoomTag intent.
func NewClearRoomTag(tag string) ClearRoomTag {
	return ClearRoomTag{Type: TypeClearRoomTag, Tag: tag}
}

// NewSendRelay builds a relay intent.
func NewSendRelay(payload any) SendRelay {
	return SendRelay{Type: TypeRelay, Payload: payload}
}

// NewSendTellOwner builds a tellOwner intent.
func NewSendTellOwner(payload any) SendTellOwner {
	return SendTellOwner{Type: TypeTellOwner, Payload: payload}
}

// NewSendTellPlayer builds a tellPlayer intent.
func NewSendTellPlayer(target PlayerID, payload any) SendTellPlayer {
	return SendTellPlayer{Type: TypeTellPlayer, PlayerID: target, Payload: payload}
}

// Encode serializes an outbound intent for the text channel.
//
// Precondition: msg must be built by a New* constructor so its tag is set.
// Postcondition: Returns the JSON encoding, or an error only when msg
// carries a value the JSON encoder cannot represent.
func Encode(msg Outbound) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", msg.outboundTag(), err)
	}
	return data, nil
}
