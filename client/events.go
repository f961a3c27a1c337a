package client

import (
	"encoding/json"

	"github.com/YzzY5665/netClient/eventbus"
	"github.com/YzzY5665/netClient/protocol"
)

// Event names emitted on the client's bus. Use the typed On* methods
// where possible; the names exist for the generic On.
const (
	EventConnected      = "connected"
	EventDisconnected   = "disconnected"
	EventAssignedID     = "assignedId"
	EventRoomCreated    = "roomCreated"
	EventRoomJoined     = "roomJoined"
	EventPlayerJoined   = "playerJoined"
	EventLeftRoom       = "leftRoom"
	EventMakeHost       = "makeHost"
	EventReassignedHost = "reassignedHost"
	EventPlayerLeft     = "playerLeft"
	EventRelay          = "relay"
	EventTellOwner      = "tellOwner"
	EventTellPlayer     = "tellPlayer"
	EventRoomList       = "roomList"
	EventRoomUpdated    = "roomUpdated"
	EventRoomTagAdded   = "roomTagAdded"
	EventRoomTagRemoved = "roomTagRemoved"
	EventError          = "error"
	EventBinary         = "binary"
)

// On registers a raw handler for the named event. The typed variants
// below are preferred; this is the escape hatch for dynamic event names.
func (c *Client) On(event string, fn eventbus.Handler) eventbus.Subscription {
	return c.bus.On(event, fn)
}

// Off removes a previously registered handler.
func (c *Client) Off(sub eventbus.Subscription) {
	c.bus.Off(sub)
}

// OnConnected fires when the transport opens.
func (c *Client) OnConnected(fn func()) eventbus.Subscription {
	return c.bus.On(EventConnected, func(...any) { fn() })
}

// OnDisconnected fires after the transport closes and the session has
// been reset.
func (c *Client) OnDisconnected(fn func()) eventbus.Subscription {
	return c.bus.On(EventDisconnected, func(...any) { fn() })
}

// OnAssignedID fires when the gateway assigns this connection's player
// identity.
func (c *Client) OnAssignedID(fn func(protocol.PlayerID)) eventbus.Subscription {
	return c.bus.On(EventAssignedID, func(args ...any) {
		fn(args[0].(protocol.PlayerID))
	})
}

// OnRoomCreated fires when a room created by this client is confirmed.
func (c *Client) OnRoomCreated(fn func(protocol.RoomID, protocol.PlayerID, protocol.Metadata)) eventbus.Subscription {
	return c.bus.On(EventRoomCreated, func(args ...any) {
		fn(args[0].(protocol.RoomID), args[1].(protocol.PlayerID), args[2].(protocol.Metadata))
	})
}

// OnRoomJoined fires when joining a room is confirmed.
func (c *Client) OnRoomJoined(fn func(roomID protocol.RoomID, playerID, ownerID protocol.PlayerID, maxClients int, meta protocol.Metadata)) eventbus.Subscription {
	return c.bus.On(EventRoomJoined, func(args ...any) {
		fn(args[0].(protocol.RoomID), args[1].(protocol.PlayerID), args[2].(protocol.PlayerID), args[3].(int), args[4].(protocol.Metadata))
	})
}

// OnPlayerJoined fires when another player enters the current room.
func (c *Client) OnPlayerJoined(fn func(protocol.PlayerID)) eventbus.Subscription {
	return c.bus.On(EventPlayerJoined, func(args ...any) {
		fn(args[0].(protocol.PlayerID))
	})
}

// OnLeftRoom fires when leaving a room is confirmed.
func (c *Client) OnLeftRoom(fn func(protocol.RoomID)) eventbus.Subscription {
	return c.bus.On(EventLeftRoom, func(args ...any) {
		fn(args[0].(protocol.RoomID))
	})
}

// OnMakeHost fires when the local player is promoted to room owner.
func (c *Client) OnMakeHost(fn func(oldHost protocol.PlayerID)) eventbus.Subscription {
	return c.bus.On(EventMakeHost, func(args ...any) {
		fn(args[0].(protocol.PlayerID))
	})
}

// OnReassignedHost fires when room ownership changes hands.
func (c *Client) OnReassignedHost(fn func(newHost, oldHost protocol.PlayerID)) eventbus.Subscription {
	return c.bus.On(EventReassignedHost, func(args ...any) {
		fn(args[0].(protocol.PlayerID), args[1].(protocol.PlayerID))
	})
}

// OnPlayerLeft fires when another player leaves the current room.
func (c *Client) OnPlayerLeft(fn func(protocol.PlayerID)) eventbus.Subscription {
	return c.bus.On(EventPlayerLeft, func(args ...any) {
		fn(args[0].(protocol.PlayerID))
	})
}

// OnRelay fires for payloads broadcast by other room members.
func (c *Client) OnRelay(fn func(from protocol.PlayerID, payload json.RawMessage)) eventbus.Subscription {
	return c.bus.On(EventRelay, func(args ...any) {
		fn(args[0].(protocol.PlayerID), args[1].(json.RawMessage))
	})
}

// OnTellOwner fires for payloads directed at this client as room owner.
func (c *Client) OnTellOwner(fn func(from protocol.PlayerID, payload json.RawMessage)) eventbus.Subscription {
	return c.bus.On(EventTellOwner, func(args ...any) {
		fn(args[0].(protocol.PlayerID), args[1].(json.RawMessage))
	})
}

// OnTellPlayer fires for payloads directed specifically at this client.
func (c *Client) OnTellPlayer(fn func(from protocol.PlayerID, payload json.RawMessage)) eventbus.Subscription {
	return c.bus.On(EventTellPlayer, func(args ...any) {
		fn(args[0].(protocol.PlayerID), args[1].(json.RawMessage))
	})
}

// OnRoomList fires with the rooms matching a listRooms request.
func (c *Client) OnRoomList(fn func([]protocol.Room)) eventbus.Subscription {
	return c.bus.On(EventRoomList, func(args ...any) {
		fn(args[0].([]protocol.Room))
	})
}

// OnRoomUpdated fires when the current room's metadata is replicated.
func (c *Client) OnRoomUpdated(fn func(protocol.Metadata)) eventbus.Subscription {
	return c.bus.On(EventRoomUpdated, func(args ...any) {
		fn(args[0].(protocol.Metadata))
	})
}

// OnRoomTagAdded fires when a tag is added to the current room.
func (c *Client) OnRoomTagAdded(fn func(tag string, allTags []string)) eventbus.Subscription {
	return c.bus.On(EventRoomTagAdded, func(args ...any) {
		fn(args[0].(string), args[1].([]string))
	})
}

// OnRoomTagRemoved fires when a tag is removed from the current room.
func (c *Client) OnRoomTagRemoved(fn func(tag string, allTags []string)) eventbus.Subscription {
	return c.bus.On(EventRoomTagRemoved, func(args ...any) {
		fn(args[0].(string), args[1].([]string))
	})
}

// OnError fires with failure messages relayed by the gateway. This is
// the protocol's only user-visible failure channel.
func (c *Client) OnError(fn func(message string)) eventbus.Subscription {
	return c.bus.On(EventError, func(args ...any) {
		fn(args[0].(string))
	})
}

// OnBinary fires for inbound binary frames with the stamped sender id
// and the payload exactly as relayed.
func (c *Client) OnBinary(fn func(sender protocol.PlayerID, payload []byte)) eventbus.Subscription {
	return c.bus.On(EventBinary, func(args ...any) {
		fn(args[0].(protocol.PlayerID), args[1].([]byte))
	})
}
