// Package slurk is a client for the chat server hosting the experiment:
// a REST API for room and user management and a websocket event stream
// for messages and room events.
package slurk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Client talks to one slurk server on behalf of the bot user.
// It implements the session package's Messenger, Presenter, Mover and
// Directory interfaces.
type Client struct {
	httpClient *http.Client
	base       string
	wsURL      string
	token      string
	userID     int64

	// writeMu serializes websocket writes; conn is set while Listen runs.
	writeMu sync.Mutex
	conn    *websocket.Conn
}

// NewClient builds a client for the server at host (full URL including
// scheme), optionally with an explicit port.
func NewClient(host string, port int, token string, userID int64) *Client {
	base := strings.TrimRight(host, "/")
	if port > 0 {
		base = fmt.Sprintf("%s:%d", base, port)
	}

	wsURL := base + "/slurk/socket"
	switch {
	case strings.HasPrefix(wsURL, "https://"):
		wsURL = "wss://" + strings.TrimPrefix(wsURL, "https://")
	case strings.HasPrefix(wsURL, "http://"):
		wsURL = "ws://" + strings.TrimPrefix(wsURL, "http://")
	}

	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		base:       base + "/slurk/api",
		wsURL:      wsURL,
		token:      token,
		userID:     userID,
	}
}

// do performs one REST call. A non-2xx response is an error; the body is
// decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// etagFor fetches a resource and returns its ETag, needed for
// conditional deletes.
func (c *Client) etagFor(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return "", fmt.Errorf("build GET %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		return "", fmt.Errorf("GET %s: response carries no ETag", path)
	}
	return etag, nil
}

// MoveToRoom adds a user to a room.
func (c *Client) MoveToRoom(ctx context.Context, userID, roomID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/rooms/%d", userID, roomID), nil, nil)
}

// RemoveFromRoom removes a user from a room.
func (c *Client) RemoveFromRoom(ctx context.Context, userID, roomID int64) error {
	etag, err := c.etagFor(ctx, fmt.Sprintf("/users/%d", userID))
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/users/%d/rooms/%d", userID, roomID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("build DELETE %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("If-Match", etag)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("DELETE %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("DELETE %s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

// SetReadOnly marks a room read-only and updates its input placeholder.
func (c *Client) SetReadOnly(ctx context.Context, roomID int64) error {
	if err := c.setRoomAttribute(ctx, roomID, "readonly", "True"); err != nil {
		return err
	}
	return c.setRoomAttribute(ctx, roomID, "placeholder", "This room is read-only")
}

func (c *Client) setRoomAttribute(ctx context.Context, roomID int64, attribute, value string) error {
	payload := map[string]string{"attribute": attribute, "value": value}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/rooms/%d/attribute/id/text", roomID), payload, nil)
}

type receiverText struct {
	Text     string `json:"text"`
	Receiver int64  `json:"receiver_id"`
}

// SetInstructions patches the instruction title and body shown to one
// participant.
func (c *Client) SetInstructions(ctx context.Context, roomID, userID int64, title, body string) error {
	titlePath := fmt.Sprintf("/rooms/%d/text/instr_title", roomID)
	if err := c.do(ctx, http.MethodPatch, titlePath, receiverText{Text: title, Receiver: userID}, nil); err != nil {
		return err
	}
	bodyPath := fmt.Sprintf("/rooms/%d/html/instr", roomID)
	return c.do(ctx, http.MethodPatch, bodyPath, receiverText{Text: body, Receiver: userID}, nil)
}

// SetContent patches the content area shown to one participant.
func (c *Client) SetContent(ctx context.Context, roomID, userID int64, content string) error {
	path := fmt.Sprintf("/rooms/%d/html/content-area", roomID)
	return c.do(ctx, http.MethodPatch, path, receiverText{Text: content, Receiver: userID}, nil)
}

// UserTask returns the ID of the task a user is assigned to, or 0 when
// they have none.
func (c *Client) UserTask(ctx context.Context, userID int64) (int64, error) {
	var task *struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/task", userID), nil, &task); err != nil {
		return 0, err
	}
	if task == nil {
		return 0, nil
	}
	return task.ID, nil
}

type textPayload struct {
	Message  string `json:"message"`
	Room     int64  `json:"room"`
	Receiver int64  `json:"receiver_id,omitempty"`
	HTML     bool   `json:"html,omitempty"`
}

// Broadcast sends a text message to everyone in a room.
func (c *Client) Broadcast(ctx context.Context, roomID int64, text string, html bool) error {
	return c.emit(ctx, "text", textPayload{Message: text, Room: roomID, HTML: html})
}

// SendTo sends a text message to one participant in a room.
func (c *Client) SendTo(ctx context.Context, roomID, userID int64, text string, html bool) error {
	return c.emit(ctx, "text", textPayload{Message: text, Room: roomID, Receiver: userID, HTML: html})
}

func (c *Client) emit(ctx context.Context, eventName string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", eventName, err)
	}
	buf, err := json.Marshal(envelope{Event: eventName, Data: raw})
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", eventName, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.conn == nil {
		return errors.New("event stream not connected")
	}
	if err := c.conn.Write(ctx, websocket.MessageText, buf); err != nil {
		return fmt.Errorf("emit %s: %w", eventName, err)
	}
	return nil
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn = conn
}
