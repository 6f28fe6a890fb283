// Package session implements the turn-taking protocol for two-party
// discussion rooms: participant status tracking, the mutual-agreement
// command handshake, and the timer-driven reminders and terminations.
//
// All mutable state lives in the Registry; the chat server is reached only
// through the narrow collaborator interfaces below, so the protocol logic
// runs without any transport in tests.
package session

import "context"

// User identifies a chat-server user as delivered with inbound events.
type User struct {
	ID   int64
	Name string
}

// Messenger delivers text to a whole room or to one addressed participant.
// The html flag enables rich formatting for instructional content.
type Messenger interface {
	Broadcast(ctx context.Context, roomID int64, text string, html bool) error
	SendTo(ctx context.Context, roomID, userID int64, text string, html bool) error
}

// Presenter updates the per-participant instruction panels and the content
// area showing the current exhibit.
type Presenter interface {
	SetInstructions(ctx context.Context, roomID, userID int64, title, body string) error
	SetContent(ctx context.Context, roomID, userID int64, content string) error
}

// Mover admits users to rooms and relocates them out again.
type Mover interface {
	MoveToRoom(ctx context.Context, userID, roomID int64) error
	RemoveFromRoom(ctx context.Context, userID, roomID int64) error
	SetReadOnly(ctx context.Context, roomID int64) error
}

// Directory resolves the task a user is assigned to. Events from users
// assigned to a different task are ignored.
type Directory interface {
	UserTask(ctx context.Context, userID int64) (int64, error)
}
