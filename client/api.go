package client

import (
	"github.com/YzzY5665/netClient/protocol"
	"github.com/YzzY5665/netClient/transport"
)

// The room/messaging API. Every call returns immediately: the intent is
// encoded and written to the transport if it is open, and silently
// dropped if it is not. Confirmation, when the protocol has one, arrives
// as an event.

// CreateRoom asks the gateway to create a room owned by this client.
// The game-namespace tag is always added to tags; private rooms also get
// the private tag.
func (c *Client) CreateRoom(tags []string, maxClients int, private bool, meta protocol.Metadata) {
	all := protocol.AugmentTags(tags, c.gameName, private)
	c.send(protocol.NewCreateRoom(all, maxClients, meta))
}

// JoinRoom asks to join the room with the given id.
func (c *Client) JoinRoom(roomID protocol.RoomID) {
	c.send(protocol.NewJoinRoom(roomID))
}

// LeaveRoom asks to leave the current room.
func (c *Client) LeaveRoom() {
	c.send(protocol.NewLeaveRoom())
}

// ListRooms asks for rooms matching all given tags within this client's
// game namespace.
func (c *Client) ListRooms(tags []string) {
	all := protocol.AugmentTags(tags, c.gameName, false)
	c.send(protocol.NewListRooms(all))
}

// UpdateMeta replaces the current room's replicated metadata.
func (c *Client) UpdateMeta(meta protocol.Metadata) {
	c.send(protocol.NewUpdateMeta(meta))
}

// AddTag adds a tag to the current room.
func (c *Client) AddTag(tag string) {
	c.send(protocol.NewSetRoomTag(tag))
}

// RemoveTag removes a tag from the current room.
func (c *Client) RemoveTag(tag string) {
	c.send(protocol.NewClearRoomTag(tag))
}

// SendRelay broadcasts a payload to the other members of the current
// room. payload must be JSON-serializable.
func (c *Client) SendRelay(payload any) {
	c.send(protocol.NewSendRelay(payload))
}

// TellOwner sends a payload to the current room's owner.
func (c *Client) TellOwner(payload any) {
	c.send(protocol.NewSendTellOwner(payload))
}

// TellPlayer sends a payload to one specific player.
func (c *Client) TellPlayer(target protocol.PlayerID, payload any) {
	c.send(protocol.NewSendTellPlayer(target, payload))
}

// SendBinary sends raw bytes on the binary channel, bypassing JSON
// encoding. No sender prefix is added; the gateway stamps identity on
// relayed frames.
func (c *Client) SendBinary(data []byte) {
	c.sendRaw(transport.Binary, data)
}
