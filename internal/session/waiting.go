package session

import (
	"context"
	"sync"
	"time"

	"github.com/NapierNLP/sgge/internal/domain"
)

// waitingState tracks the solo waiting-room watchdog. Only one user waits
// at a time; the matcher moves a pair out as soon as two are present. A
// user earns the no-partner token once per wait episode; the flag clears
// when they are admitted into a real task room.
type waitingState struct {
	mu       sync.Mutex
	timer    *time.Timer
	rewarded map[int64]bool
}

func newWaitingState() *waitingState {
	return &waitingState{rewarded: make(map[int64]bool)}
}

// waitingJoined restarts the watchdog for the user who just entered the
// waiting room.
func (c *Coordinator) waitingJoined(userID int64) {
	w := c.waiting
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(c.cfg.WaitingTimeout, func() {
		c.noPartner(c.ctx, userID)
	})
}

// waitingLeft cancels the watchdog; whoever remains will re-arm it with
// their own join event.
func (c *Coordinator) waitingLeft() {
	w := c.waiting
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (c *Coordinator) clearWaitingReward(userIDs ...int64) {
	w := c.waiting
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, id := range userIDs {
		delete(w.rewarded, id)
	}
}

// noPartner handles a waiting-room timeout. The first timeout of an
// episode pays out a no-partner token; later ones only apologise.
func (c *Coordinator) noPartner(ctx context.Context, userID int64) {
	w := c.waiting
	w.mu.Lock()
	first := !w.rewarded[userID]
	w.rewarded[userID] = true
	w.timer = time.AfterFunc(c.cfg.WaitingTimeout, func() {
		c.noPartner(ctx, userID)
	})
	w.mu.Unlock()

	roomID := c.cfg.WaitingRoomID
	if first {
		c.sendTo(ctx, roomID, userID, c.cat.NoPartnerFound)
		c.issueTokens(ctx, roomID, domain.TokenNoPartner, userID)
		c.sendTo(ctx, roomID, userID, c.cat.MayWaitMore)
		return
	}
	c.sendTo(ctx, roomID, userID, c.cat.NoFurtherPayment)
	c.sendTo(ctx, roomID, userID, c.cat.CheckBackLater)
}
