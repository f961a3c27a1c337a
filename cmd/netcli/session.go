package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/YzzY5665/netClient/client"
	"github.com/YzzY5665/netClient/internal/config"
	"github.com/YzzY5665/netClient/protocol"
)

// runSession connects to the gateway, wires event printers, and runs the
// command loop until EOF, "quit", or a disconnect.
func runSession(ctx context.Context, cfg config.Config, logger *zap.Logger, in io.Reader, out io.Writer) error {
	c := client.New(client.Config{
		GameName: cfg.Gateway.GameName,
		Logger:   logger,
	})

	done := make(chan struct{})
	subscribePrinters(c, out, done)

	logger.Info("connecting",
		zap.String("url", cfg.Gateway.URL),
		zap.String("game", cfg.Gateway.GameName),
	)
	c.Connect(ctx, cfg.Gateway.URL)

	err := commandLoop(c, in, out, done)
	c.Disconnect()
	return err
}

func subscribePrinters(c *client.Client, out io.Writer, done chan struct{}) {
	c.OnConnected(func() {
		fmt.Fprintln(out, "* connected")
	})
	c.OnDisconnected(func() {
		fmt.Fprintln(out, "* disconnected")
		close(done)
	})
	c.OnAssignedID(func(id protocol.PlayerID) {
		fmt.Fprintf(out, "* you are player %d\n", id)
	})
	c.OnRoomCreated(func(roomID protocol.RoomID, playerID protocol.PlayerID, meta protocol.Metadata) {
		fmt.Fprintf(out, "* created room %s (owner %d) meta=%v\n", roomID, playerID, meta)
	})
	c.OnRoomJoined(func(roomID protocol.RoomID, playerID, ownerID protocol.PlayerID, maxClients int, meta protocol.Metadata) {
		fmt.Fprintf(out, "* joined room %s (owner %d, max %d) meta=%v\n", roomID, ownerID, maxClients, meta)
	})
	c.OnPlayerJoined(func(id protocol.PlayerID) {
		fmt.Fprintf(out, "* player %d joined\n", id)
	})
	c.OnPlayerLeft(func(id protocol.PlayerID) {
		fmt.Fprintf(out, "* player %d left\n", id)
	})
	c.OnLeftRoom(func(roomID protocol.RoomID) {
		fmt.Fprintf(out, "* left room %s\n", roomID)
	})
	c.OnMakeHost(func(oldHost protocol.PlayerID) {
		fmt.Fprintf(out, "* you are now host (was %d)\n", oldHost)
	})
	c.OnReassignedHost(func(newHost, oldHost protocol.PlayerID) {
		fmt.Fprintf(out, "* host is now %d (was %d)\n", newHost, oldHost)
	})
	c.OnRelay(func(from protocol.PlayerID, payload json.RawMessage) {
		fmt.Fprintf(out, "<%d> %s\n", from, payload)
	})
	c.OnTellOwner(func(from protocol.PlayerID, payload json.RawMessage) {
		fmt.Fprintf(out, "<%d to owner> %s\n", from, payload)
	})
	c.OnTellPlayer(func(from protocol.PlayerID, payload json.RawMessage) {
		fmt.Fprintf(out, "<%d to you> %s\n", from, payload)
	})
	c.OnRoomList(func(rooms []protocol.Room) {
		fmt.Fprintf(out, "* %d room(s):\n", len(rooms))
		for _, r := range rooms {
			fmt.Fprintf(out, "    %s owner=%d max=%d tags=%v meta=%v\n",
				r.RoomID, r.OwnerID, r.MaxClients, r.Tags, r.MetaData)
		}
	})
	c.OnRoomUpdated(func(meta protocol.Metadata) {
		fmt.Fprintf(out, "* room meta: %v\n", meta)
	})
	c.OnRoomTagAdded(func(tag string, all []string) {
		fmt.Fprintf(out, "* tag +%s (now %v)\n", tag, all)
	})
	c.OnRoomTagRemoved(func(tag string, all []string) {
		fmt.Fprintf(out, "* tag -%s (now %v)\n", tag, all)
	})
	c.OnError(func(message string) {
		fmt.Fprintf(out, "! server error: %s\n", message)
	})
	c.OnBinary(func(sender protocol.PlayerID, payload []byte) {
		fmt.Fprintf(out, "<%d binary> %s\n", sender, hex.EncodeToString(payload))
	})
}

func commandLoop(c *client.Client, in io.Reader, out io.Writer, done chan struct{}) error {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-done:
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := handleLine(c, out, line); quit {
				return nil
			}
		}
	}
}

// handleLine maps one stdin line to an API call. Returns true on quit.
func handleLine(c *client.Client, out io.Writer, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "create":
		maxClients := 4
		private := false
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Fprintln(out, "usage: create [maxClients] [private]")
				return false
			}
			maxClients = n
		}
		if len(args) > 1 && args[1] == "private" {
			private = true
		}
		c.CreateRoom(nil, maxClients, private, nil)

	case "join":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: join <roomId>")
			return false
		}
		c.JoinRoom(protocol.RoomID(args[0]))

	case "leave":
		c.LeaveRoom()

	case "list":
		c.ListRooms(args)

	case "meta":
		if len(args) != 2 {
			fmt.Fprintln(out, "usage: meta <key> <value>")
			return false
		}
		c.UpdateMeta(protocol.Metadata{args[0]: args[1]})

	case "tag":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: tag <tag>")
			return false
		}
		c.AddTag(args[0])

	case "untag":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: untag <tag>")
			return false
		}
		c.RemoveTag(args[0])

	case "say":
		c.SendRelay(strings.Join(args, " "))

	case "owner":
		c.TellOwner(strings.Join(args, " "))

	case "tell":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: tell <playerId> <text>")
			return false
		}
		target, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Fprintln(out, "usage: tell <playerId> <text>")
			return false
		}
		c.TellPlayer(protocol.PlayerID(target), strings.Join(args[1:], " "))

	case "bin":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: bin <hex>")
			return false
		}
		payload, err := hex.DecodeString(args[0])
		if err != nil {
			fmt.Fprintln(out, "bin: invalid hex")
			return false
		}
		c.SendBinary(payload)

	case "status":
		printStatus(c, out)

	case "help":
		fmt.Fprint(out, helpText)

	case "quit", "exit":
		return true

	default:
		fmt.Fprintf(out, "unknown command %q (try \"help\")\n", cmd)
	}
	return false
}

func printStatus(c *client.Client, out io.Writer) {
	sess := c.Session()
	fmt.Fprintf(out, "status: %s\n", c.Status())
	if sess.PlayerID != nil {
		fmt.Fprintf(out, "player: %d\n", *sess.PlayerID)
	}
	if sess.RoomID != nil {
		fmt.Fprintf(out, "room: %s (owner %d, host=%v)\n", *sess.RoomID, *sess.OwnerID, sess.IsHost)
	}
}

const helpText = `commands:
  create [maxClients] [private]   create a room
  join <roomId>                   join a room
  leave                           leave the current room
  list [tags...]                  list rooms
  meta <key> <value>              update room metadata
  tag <tag> / untag <tag>         add or remove a room tag
  say <text>                      relay to the room
  owner <text>                    message the room owner
  tell <playerId> <text>          message one player
  bin <hex>                       send raw binary
  status                          show session state
  quit                            exit
`
