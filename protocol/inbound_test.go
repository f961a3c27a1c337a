package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText_AssignID(t *testing.T) {
	msg, err := DecodeText([]byte(`{"type":"assignId","playerId":7}`))
	require.NoError(t, err)
	assign, ok := msg.(*AssignID)
	require.True(t, ok)
	assert.Equal(t, PlayerID(7), assign.PlayerID)
}

func TestDecodeText_RoomCreated(t *testing.T) {
	msg, err := DecodeText([]byte(`{"type":"roomCreated","roomId":"R1","playerId":7,"metaData":{"mode":"ffa"}}`))
	require.NoError(t, err)
	created, ok := msg.(*RoomCreated)
	require.True(t, ok)
	assert.Equal(t, RoomID("R1"), created.RoomID)
	assert.Equal(t, PlayerID(7), created.PlayerID)
	assert.Equal(t, Metadata{"mode": "ffa"}, created.MetaData)
}

func TestDecodeText_RoomJoined(t *testing.T) {
	msg, err := DecodeText([]byte(`{"type":"roomJoined","roomId":"R2","playerId":9,"ownerId":4,"maxClients":8,"metaData":{}}`))
	require.NoError(t, err)
	joined, ok := msg.(*RoomJoined)
	require.True(t, ok)
	assert.Equal(t, RoomID("R2"), joined.RoomID)
	assert.Equal(t, PlayerID(9), joined.PlayerID)
	assert.Equal(t, PlayerID(4), joined.OwnerID)
	assert.Equal(t, 8, joined.MaxClients)
	assert.Empty(t, joined.MetaData)
}

func TestDecodeText_HostMessages(t *testing.T) {
	msg, err := DecodeText([]byte(`{"type":"makeHost","oldHostId":3}`))
	require.NoError(t, err)
	mh, ok := msg.(*MakeHost)
	require.True(t, ok)
	assert.Equal(t, PlayerID(3), mh.OldHostID)

	msg, err = DecodeText([]byte(`{"type":"reassignedHost","newHostId":9,"oldHostId":7}`))
	require.NoError(t, err)
	rh, ok := msg.(*ReassignedHost)
	require.True(t, ok)
	assert.Equal(t, PlayerID(9), rh.NewHostID)
	assert.Equal(t, PlayerID(7), rh.OldHostID)
}

func TestDecodeText_DirectedMessages(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"relay", `{"type":"relay","from":2,"payload":{"x":1}}`},
		{"tellOwner", `{"type":"tellOwner","from":2,"payload":{"x":1}}`},
		{"tellPlayer", `{"type":"tellPlayer","from":2,"payload":{"x":1}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := DecodeText([]byte(tc.raw))
			require.NoError(t, err)

			var from PlayerID
			var payload json.RawMessage
			switch m := msg.(type) {
			case *Relay:
				from, payload = m.From, m.Payload
			case *TellOwner:
				from, payload = m.From, m.Payload
			case *TellPlayer:
				from, payload = m.From, m.Payload
			default:
				t.Fatalf("unexpected variant %T", msg)
			}
			assert.Equal(t, PlayerID(2), from)
			assert.JSONEq(t, `{"x":1}`, string(payload))
		})
	}
}

func TestDecodeText_RoomList(t *testing.T) {
	raw := `{"type":"roomList","rooms":[{"roomId":"R1","ownerId":4,"maxClients":2,"metaData":{"map":"dust"},"tags":["game:demo","ranked"]}]}`
	msg, err := DecodeText([]byte(raw))
	require.NoError(t, err)
	list, ok := msg.(*RoomList)
	require.True(t, ok)
	require.Len(t, list.Rooms, 1)
	room := list.Rooms[0]
	assert.Equal(t, RoomID("R1"), room.RoomID)
	assert.Equal(t, PlayerID(4), room.OwnerID)
	assert.Equal(t, 2, room.MaxClients)
	assert.Equal(t, Metadata{"map": "dust"}, room.MetaData)
	assert.Equal(t, []string{"game:demo", "ranked"}, room.Tags)
}

func TestDecodeText_RoomTagChanges(t *testing.T) {
	msg, err := DecodeText([]byte(`{"type":"roomTagAdded","tag":"ranked","tags":["game:demo","ranked"]}`))
	require.NoError(t, err)
	added, ok := msg.(*RoomTagAdded)
	require.True(t, ok)
	assert.Equal(t, "ranked", added.Tag)
	assert.Equal(t, []string{"game:demo", "ranked"}, added.Tags)

	msg, err = DecodeText([]byte(`{"type":"roomTagRemoved","tag":"ranked","tags":["game:demo"]}`))
	require.NoError(t, err)
	removed, ok := msg.(*RoomTagRemoved)
	require.True(t, ok)
	assert.Equal(t, "ranked", removed.Tag)
	assert.Equal(t, []string{"game:demo"}, removed.Tags)
}

func TestDecodeText_Error(t *testing.T) {
	msg, err := DecodeText([]byte(`{"type":"error","message":"room full"}`))
	require.NoError(t, err)
	se, ok := msg.(*ServerError)
	require.True(t, ok)
	assert.Equal(t, "room full", se.Message)
}

func TestDecodeText_Malformed(t *testing.T) {
	for _, raw := range []string{"{not json", "", "[]", `"assignId"`} {
		_, err := DecodeText([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestDecodeText_UnknownType(t *testing.T) {
	_, err := DecodeText([]byte(`{"type":"unknownThing"}`))
	assert.ErrorIs(t, err, ErrUnknownType)

	// Missing tag routes the same way as an unknown one.
	_, err = DecodeText([]byte(`{"playerId":7}`))
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDecodeText_FieldTypeMismatch(t *testing.T) {
	_, err := DecodeText([]byte(`{"type":"assignId","playerId":"seven"}`))
	assert.ErrorIs(t, err, ErrMalformed)
}
