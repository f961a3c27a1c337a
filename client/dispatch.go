package client

import "github.com/YzzY5665/netClient/protocol"

// emission is the event raised after applying an inbound message, with
// its positional arguments. A zero emission means no event.
type emission struct {
	event string
	args  []any
}

// transition applies one inbound message to a session snapshot and
// returns the successor snapshot plus the event to emit. It is pure:
// callers commit the new state before emitting, so handlers reading the
// session observe the post-transition value.
//
// The mapping is the protocol's state machine; every inbound variant is
// handled here and nowhere else.
func transition(s Session, msg protocol.Inbound) (Session, emission) {
	switch m := msg.(type) {
	case *protocol.AssignID:
		id := m.PlayerID
		s.PlayerID = &id
		return s, emission{EventAssignedID, []any{m.PlayerID}}

	case *protocol.RoomCreated:
		rid := m.RoomID
		s.RoomID = &rid
		s.OwnerID = s.PlayerID
		s.IsHost = true
		return s, emission{EventRoomCreated, []any{m.RoomID, m.PlayerID, m.MetaData}}

	case *protocol.RoomJoined:
		rid := m.RoomID
		oid := m.OwnerID
		s.RoomID = &rid
		s.OwnerID = &oid
		s.IsHost = false
		return s, emission{EventRoomJoined, []any{m.RoomID, m.PlayerID, m.OwnerID, m.MaxClients, m.MetaData}}

	case *protocol.PlayerJoined:
		return s, emission{EventPlayerJoined, []any{m.PlayerID}}

	case *protocol.LeftRoom:
		s.RoomID = nil
		s.OwnerID = nil
		s.IsHost = false
		return s, emission{EventLeftRoom, []any{m.RoomID}}

	case *protocol.MakeHost:
		s.IsHost = true
		s.OwnerID = s.PlayerID
		return s, emission{EventMakeHost, []any{m.OldHostID}}

	case *protocol.ReassignedHost:
		nid := m.NewHostID
		s.OwnerID = &nid
		s.IsHost = s.PlayerID != nil && *s.PlayerID == nid
		return s, emission{EventReassignedHost, []any{m.NewHostID, m.OldHostID}}

	case *protocol.PlayerLeft:
		return s, emission{EventPlayerLeft, []any{m.PlayerID}}

	case *protocol.Relay:
		return s, emission{EventRelay, []any{m.From, m.Payload}}

	case *protocol.TellOwner:
		return s, emission{EventTellOwner, []any{m.From, m.Payload}}

	case *protocol.TellPlayer:
		return s, emission{EventTellPlayer, []any{m.From, m.Payload}}

	case *protocol.RoomList:
		return s, emission{EventRoomList, []any{m.Rooms}}

	case *protocol.RoomUpdated:
		return s, emission{EventRoomUpdated, []any{m.MetaData}}

	case *protocol.RoomTagAdded:
		return s, emission{EventRoomTagAdded, []any{m.Tag, m.Tags}}

	case *protocol.RoomTagRemoved:
		return s, emission{EventRoomTagRemoved, []any{m.Tag, m.Tags}}

	case *protocol.ServerError:
		return s, emission{EventError, []any{m.Message}}
	}

	// Unreachable for messages produced by protocol.DecodeText; the
	// union is closed there.
	return s, emission{}
}
