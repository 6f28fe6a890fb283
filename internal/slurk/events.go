package slurk

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/NapierNLP/sgge/internal/session"
	"github.com/coder/websocket"
)

// EventHandler receives the decoded events from the server stream.
// The session.Coordinator implements this interface.
type EventHandler interface {
	RoomCreated(ctx context.Context, roomID, taskID int64, users []session.User) error
	ParticipantJoined(ctx context.Context, roomID, userID int64)
	ParticipantLeft(ctx context.Context, roomID, userID int64)
	TextMessage(ctx context.Context, roomID, userID int64, text string)
	Command(ctx context.Context, roomID, userID int64, command string)
}

// envelope is the wire framing for stream events in both directions.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type wireUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Listen connects to the event stream and dispatches events to the
// handler until the context is cancelled or the connection drops.
// While it runs, the client can also emit messages over the same
// connection.
func (c *Client) Listen(ctx context.Context, handler EventHandler) error {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.token)
	header.Set("user", strconv.FormatInt(c.userID, 10))

	conn, _, err := websocket.Dial(ctx, c.wsURL, &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		return fmt.Errorf("dial event stream: %w", err)
	}
	conn.SetReadLimit(1 << 20)

	c.setConn(conn)
	defer func() {
		c.setConn(nil)
		_ = conn.Close(websocket.StatusNormalClosure, "shutting down")
	}()

	slog.Info("Event stream connected", "url", c.wsURL)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read event: %w", err)
		}
		c.dispatchEvent(ctx, handler, data)
	}
}

func (c *Client) dispatchEvent(ctx context.Context, handler EventHandler, data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		slog.Warn("Undecodable event frame", "error", err)
		return
	}

	switch env.Event {
	case "new_task_room":
		var d struct {
			Room  int64      `json:"room"`
			Task  int64      `json:"task"`
			Users []wireUser `json:"users"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			slog.Warn("Undecodable new_task_room event", "error", err)
			return
		}
		users := make([]session.User, 0, len(d.Users))
		for _, u := range d.Users {
			users = append(users, session.User{ID: u.ID, Name: u.Name})
		}
		if err := handler.RoomCreated(ctx, d.Room, d.Task, users); err != nil {
			slog.Error("Room creation failed", "room_id", d.Room, "error", err)
		}

	case "status":
		var d struct {
			Room int64    `json:"room"`
			Type string   `json:"type"`
			User wireUser `json:"user"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			slog.Warn("Undecodable status event", "error", err)
			return
		}
		switch d.Type {
		case "join":
			handler.ParticipantJoined(ctx, d.Room, d.User.ID)
		case "leave":
			handler.ParticipantLeft(ctx, d.Room, d.User.ID)
		}

	case "text_message":
		var d struct {
			Room    int64    `json:"room"`
			User    wireUser `json:"user"`
			Message string   `json:"message"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			slog.Warn("Undecodable text_message event", "error", err)
			return
		}
		handler.TextMessage(ctx, d.Room, d.User.ID, d.Message)

	case "command":
		var d struct {
			Room    int64    `json:"room"`
			User    wireUser `json:"user"`
			Command string   `json:"command"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			slog.Warn("Undecodable command event", "error", err)
			return
		}
		handler.Command(ctx, d.Room, d.User.ID, d.Command)

	default:
		slog.Debug("Ignoring event", "event", env.Event)
	}
}
