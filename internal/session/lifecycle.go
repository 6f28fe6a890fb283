package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NapierNLP/sgge/internal/domain"
	"github.com/NapierNLP/sgge/internal/timers"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrSessionClosed is returned when teardown is invoked on a session that
// was already torn down. This is a programming error, not a recoverable
// condition.
var ErrSessionClosed = errors.New("session already closed")

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenLength   = 6
)

// RoomCreated builds a session for a freshly created task room: it assigns
// the item sequence, registers the room actor, starts the ready reminder,
// moves the bot into the room and delivers greeting plus role instructions.
func (c *Coordinator) RoomCreated(ctx context.Context, roomID, taskID int64, users []User) error {
	if taskID != c.cfg.TaskID {
		return nil
	}
	if len(users) != 2 {
		return fmt.Errorf("room %d created with %d users, want exactly 2", roomID, len(users))
	}

	// The pair found each other; their next waiting-room stay is a fresh
	// remuneration episode.
	c.clearWaitingReward(users[0].ID, users[1].ID)

	a := &domain.Participant{ID: users[0].ID, DisplayName: users[0].Name, Status: domain.StatusJoined}
	b := &domain.Participant{ID: users[1].ID, DisplayName: users[1].Name, Status: domain.StatusJoined}
	sess := domain.NewSession(roomID, a, b)

	names := [2]string{sess.Participants[0].DisplayName, sess.Participants[1].DisplayName}
	if err := c.items.Assign(roomID, names); err != nil {
		return fmt.Errorf("assign items for room %d: %w", roomID, err)
	}

	r, err := c.reg.create(roomID, sess)
	if err != nil {
		c.items.Release(roomID)
		return err
	}

	c.startTimer(r, timers.Ready, c.cfg.ReadyWait)

	if err := c.mover.MoveToRoom(ctx, c.cfg.BotUserID, roomID); err != nil {
		slog.Error("bot could not join task room", "room_id", roomID, "error", err)
	}

	for _, line := range c.cat.TaskGreeting {
		c.broadcastHTML(ctx, roomID, line)
	}
	c.showInstructions(ctx, r)

	slog.Info("task room session created",
		"room_id", roomID,
		"users", []int64{sess.Participants[0].ID, sess.Participants[1].ID})
	return nil
}

// issueTokens generates, persists and delivers one confirmation token per
// recipient. A recipient whose record cannot be persisted gets no token.
func (c *Coordinator) issueTokens(ctx context.Context, roomID int64, status domain.TokenStatus, recipients ...int64) {
	for _, userID := range recipients {
		token, err := gonanoid.Generate(tokenAlphabet, tokenLength)
		if err != nil {
			slog.Error("token generation failed", "room_id", roomID, "error", err)
			continue
		}

		rec := &domain.ConfirmationRecord{
			RoomID:    roomID,
			Status:    status,
			Token:     token,
			Recipient: userID,
		}
		if err := c.audit.AppendConfirmation(ctx, rec); err != nil {
			slog.Error("confirmation audit append failed",
				"room_id", roomID, "user_id", userID, "status", status, "error", err)
			continue
		}

		c.sendTo(ctx, roomID, userID, c.cat.PleaseSendToken)
		c.sendTo(ctx, roomID, userID, c.cat.Token(token))
		slog.Info("confirmation token issued",
			"room_id", roomID, "user_id", userID, "status", status)
	}
}

// closeSession tears a session down: the room becomes read-only, all
// timers stop, the records are released and, after the configured delay,
// both participants are relocated to the waiting room. Must run on the
// room's event goroutine.
func (c *Coordinator) closeSession(ctx context.Context, r *room, reason string) error {
	sess := r.session
	if sess.Closed {
		slog.Error("session torn down twice", "room_id", r.id, "reason", reason)
		return fmt.Errorf("room %d: %w", r.id, ErrSessionClosed)
	}
	sess.Closed = true

	c.broadcast(ctx, r.id, c.cat.MovedOut(int(c.cfg.TeardownDelay.Seconds())))
	c.broadcast(ctx, r.id, c.cat.SaveToken)

	if err := c.mover.SetReadOnly(ctx, r.id); err != nil {
		slog.Error("set room read-only failed", "room_id", r.id, "error", err)
	}

	r.timers.CancelAll()
	if err := c.reg.remove(r.id); err != nil {
		return err
	}
	c.items.Release(r.id)

	userIDs := [2]int64{sess.Participants[0].ID, sess.Participants[1].ID}
	go c.relocate(ctx, r.id, userIDs, c.cfg.TeardownDelay)

	slog.Info("session closed", "room_id", r.id, "reason", reason)
	return nil
}

// relocate moves both participants back to the waiting room after the
// teardown delay.
func (c *Coordinator) relocate(ctx context.Context, roomID int64, userIDs [2]int64, delay time.Duration) {
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return
	case <-t.C:
	}

	for _, userID := range userIDs {
		if err := c.mover.MoveToRoom(ctx, userID, c.cfg.WaitingRoomID); err != nil {
			slog.Error("move user to waiting room failed", "user_id", userID, "error", err)
			continue
		}
		if err := c.mover.RemoveFromRoom(ctx, userID, roomID); err != nil {
			slog.Error("remove user from task room failed",
				"user_id", userID, "room_id", roomID, "error", err)
		}
	}
}
