// Package protocol defines the wire protocol spoken with the room
// gateway: the tagged JSON messages exchanged over the text channel, the
// sender-prefixed binary framing, and the room descriptor types shared by
// both directions.
package protocol

// PlayerID identifies a connected player. The binary channel carries
// sender identity as a fixed 4-byte field, so the server's id space is
// 32 bits wide.
type PlayerID uint32

// RoomID is the opaque identifier of a server-managed room.
type RoomID string

// Metadata is arbitrary room-scoped key/value data replicated to room
// members on change. Values must be JSON-serializable.
type Metadata map[string]any

// PrivateTag marks rooms created private; it is added to the room's tag
// set at creation time and excludes the room from untagged listings.
const PrivateTag = "private"

// GameTag returns the namespace tag for the given game name. Every room
// created or listed through a client carries its game's tag, keeping
// rooms of different games invisible to each other.
func GameTag(gameName string) string {
	return "game:" + gameName
}

// Room describes a joinable room as reported by the gateway in roomList
// responses. It is transient: the client forwards it to callbacks and
// keeps no copy.
type Room struct {
	RoomID     RoomID   `json:"roomId"`
	OwnerID    PlayerID `json:"ownerId"`
	MaxClients int      `json:"maxClients"`
	MetaData   Metadata `json:"metaData"`
	Tags       []string `json:"tags"`
}

// AugmentTags returns tags extended with the game-namespace tag and, when
// private is set, the private tag. Tags already present are not
// duplicated; the input slice is not modified.
func AugmentTags(tags []string, gameName string, private bool) []string {
	out := make([]string, 0, len(tags)+2)
	seen := make(map[string]bool, len(tags)+2)
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}

	for _, tag := range tags {
		add(tag)
	}
	add(GameTag(gameName))
	if private {
		add(PrivateTag)
	}
	return out
}
