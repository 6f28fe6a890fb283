package session

import (
	"context"
	"testing"
	"time"

	"github.com/NapierNLP/sgge/internal/domain"
)

func TestWaitingTimeoutPaysOutOnce(t *testing.T) {
	h := newHarness(t, twoItems(), nil)
	ctx := context.Background()

	h.c.ParticipantJoined(ctx, testWaitingRoom, 1)

	// First timeout of the episode: apology, token, offer to keep waiting.
	waitUntil(t, func() bool { return h.msg.has(1, h.cat.NoPartnerFound) })
	waitUntil(t, func() bool { return len(h.audit.byStatus(domain.TokenNoPartner)) == 1 })
	waitUntil(t, func() bool { return h.msg.has(1, h.cat.MayWaitMore) })

	rec := h.audit.byStatus(domain.TokenNoPartner)[0]
	if rec.Recipient != 1 {
		t.Errorf("Expected the no-partner token for user 1, got %d", rec.Recipient)
	}
	if rec.RoomID != testWaitingRoom {
		t.Errorf("Expected the record for the waiting room, got room %d", rec.RoomID)
	}

	// The watchdog re-arms; later timeouts of the same episode apologise
	// without paying again.
	waitUntil(t, func() bool { return h.msg.has(1, h.cat.NoFurtherPayment) })
	if !h.msg.has(1, h.cat.CheckBackLater) {
		t.Error("Expected the check-back-later notice with the apology")
	}
	if got := len(h.audit.byStatus(domain.TokenNoPartner)); got != 1 {
		t.Errorf("Expected exactly one no-partner token per episode, got %d", got)
	}

	h.c.ParticipantLeft(ctx, testWaitingRoom, 1)
}

func TestWaitingLeaveCancelsWatchdog(t *testing.T) {
	h := newHarness(t, twoItems(), nil)
	ctx := context.Background()

	h.c.ParticipantJoined(ctx, testWaitingRoom, 1)
	h.c.ParticipantLeft(ctx, testWaitingRoom, 1)

	time.Sleep(100 * time.Millisecond)
	if h.msg.has(1, h.cat.NoPartnerFound) {
		t.Error("Expected no payout after the user left the waiting room")
	}
}

func TestWaitingRejoinRestartsWatchdog(t *testing.T) {
	h := newHarness(t, twoItems(), nil)
	ctx := context.Background()

	// A join shortly before the deadline replaces the pending watchdog.
	h.c.ParticipantJoined(ctx, testWaitingRoom, 1)
	time.Sleep(25 * time.Millisecond)
	h.c.ParticipantJoined(ctx, testWaitingRoom, 1)
	time.Sleep(25 * time.Millisecond)

	if h.msg.has(1, h.cat.NoPartnerFound) {
		t.Fatal("Expected the rejoin to restart the watchdog interval")
	}
	waitUntil(t, func() bool { return h.msg.has(1, h.cat.NoPartnerFound) })

	h.c.ParticipantLeft(ctx, testWaitingRoom, 1)
}

func TestWaitingRewardClearsOnMatch(t *testing.T) {
	h := newHarness(t, twoItems(), nil)
	ctx := context.Background()

	h.c.ParticipantJoined(ctx, testWaitingRoom, 1)
	waitUntil(t, func() bool { return len(h.audit.byStatus(domain.TokenNoPartner)) == 1 })
	h.c.ParticipantLeft(ctx, testWaitingRoom, 1)

	// Being admitted into a task room starts a fresh episode; waiting in
	// vain afterwards pays out again.
	h.createRoom(t)
	h.c.ParticipantJoined(ctx, testWaitingRoom, 1)
	waitUntil(t, func() bool { return len(h.audit.byStatus(domain.TokenNoPartner)) == 2 })

	h.c.ParticipantLeft(ctx, testWaitingRoom, 1)
}

func TestWaitingIgnoresForeignUsers(t *testing.T) {
	h := newHarness(t, twoItems(), nil)

	// User 5 belongs to no task; their waiting-room join is ignored.
	h.c.ParticipantJoined(context.Background(), testWaitingRoom, 5)
	time.Sleep(100 * time.Millisecond)
	if h.msg.has(5, h.cat.NoPartnerFound) {
		t.Error("Expected no watchdog for a user outside the task")
	}
}
