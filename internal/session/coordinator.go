package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/NapierNLP/sgge/internal/domain"
	"github.com/NapierNLP/sgge/internal/items"
	"github.com/NapierNLP/sgge/internal/match"
	"github.com/NapierNLP/sgge/internal/messages"
	"github.com/NapierNLP/sgge/internal/store"
	"github.com/NapierNLP/sgge/internal/timers"
)

// Config carries the protocol settings the coordinator needs.
type Config struct {
	TaskID        int64
	WaitingRoomID int64
	BotUserID     int64

	ReadyWait      time.Duration
	RoundLength    time.Duration
	AgreementWait  time.Duration
	SilenceWait    time.Duration
	WaitingTimeout time.Duration
	TeardownDelay  time.Duration

	MinMessages    int
	FuzzyThreshold int
}

// Coordinator drives the turn-taking protocol for all task rooms. Inbound
// events are routed onto per-room queues; everything that touches session
// state runs on the owning room's single goroutine.
type Coordinator struct {
	cfg   Config
	cat   *messages.Catalog
	class *match.Classifier

	msg   Messenger
	pres  Presenter
	mover Mover
	dir   Directory
	audit store.Repository
	items *items.Sequencer

	reg     *Registry
	waiting *waitingState

	// ctx bounds outbound collaborator calls made from room actors and
	// timer callbacks; it is the process lifetime context.
	ctx context.Context
}

// NewCoordinator wires a coordinator against its collaborators.
func NewCoordinator(ctx context.Context, cfg Config, cat *messages.Catalog,
	msg Messenger, pres Presenter, mover Mover, dir Directory,
	audit store.Repository, seq *items.Sequencer) *Coordinator {

	c := &Coordinator{
		cfg:     cfg,
		cat:     cat,
		class:   match.NewClassifier(cat.CommandDone, cat.CommandNext, cat.CommandReady, cfg.FuzzyThreshold),
		msg:     msg,
		pres:    pres,
		mover:   mover,
		dir:     dir,
		audit:   audit,
		items:   seq,
		waiting: newWaitingState(),
		ctx:     ctx,
	}
	c.reg = newRegistry(c.handleEvent)
	return c
}

// Registry exposes the session registry for the ops endpoints.
func (c *Coordinator) Registry() *Registry {
	return c.reg
}

// ParticipantJoined handles a user entering a room. Joins to the waiting
// room arm the solo watchdog; joins to a managed task room refresh the
// rejoining pair.
func (c *Coordinator) ParticipantJoined(ctx context.Context, roomID, userID int64) {
	if !c.eligible(ctx, userID) {
		return
	}
	if roomID == c.cfg.WaitingRoomID {
		c.waitingJoined(userID)
		return
	}
	if !c.reg.dispatch(roomID, event{kind: evJoin, userID: userID}) {
		slog.Debug("join event for unmanaged room", "room_id", roomID, "user_id", userID)
	}
}

// ParticipantLeft handles a user leaving a room.
func (c *Coordinator) ParticipantLeft(ctx context.Context, roomID, userID int64) {
	if !c.eligible(ctx, userID) {
		return
	}
	if roomID == c.cfg.WaitingRoomID {
		c.waitingLeft()
		return
	}
	if !c.reg.dispatch(roomID, event{kind: evLeave, userID: userID}) {
		slog.Debug("leave event for unmanaged room", "room_id", roomID, "user_id", userID)
	}
}

// TextMessage handles a free-text discussion message.
func (c *Coordinator) TextMessage(_ context.Context, roomID, userID int64, text string) {
	if userID == c.cfg.BotUserID {
		return
	}
	c.reg.dispatch(roomID, event{kind: evText, userID: userID, text: text})
}

// Command handles a slash command from a participant.
func (c *Coordinator) Command(_ context.Context, roomID, userID int64, command string) {
	if userID == c.cfg.BotUserID {
		return
	}
	if !c.reg.dispatch(roomID, event{kind: evCommand, userID: userID, text: command}) {
		slog.Debug("command for unmanaged room", "room_id", roomID, "user_id", userID)
	}
}

func (c *Coordinator) eligible(ctx context.Context, userID int64) bool {
	taskID, err := c.dir.UserTask(ctx, userID)
	if err != nil {
		slog.Error("user task lookup failed", "user_id", userID, "error", err)
		return false
	}
	return taskID == c.cfg.TaskID
}

func (c *Coordinator) handleEvent(r *room, ev event) {
	// An event queued before teardown can still drain after it; the
	// closed session must stay untouched.
	if r.session.Closed {
		return
	}

	ctx := c.ctx
	switch ev.kind {
	case evJoin:
		c.handleJoin(ctx, r, ev.userID)
	case evLeave:
		c.handleLeave(ctx, r, ev.userID)
	case evText:
		c.handleText(r, ev.userID)
	case evCommand:
		c.handleCommand(ctx, r, ev.userID, ev.text)
	case evTimer:
		c.handleTimer(ctx, r, ev.timer)
	}
}

func (c *Coordinator) handleJoin(ctx context.Context, r *room, userID int64) {
	p := r.session.ParticipantByID(userID)
	if p == nil {
		slog.Warn("join from user outside session", "room_id", r.id, "user_id", userID)
		return
	}
	c.sendTo(ctx, r.id, r.session.OtherOf(userID).ID, c.cat.Rejoined(p.DisplayName))
	// Refresh both participants' instructions and item, whatever the state.
	c.showItem(ctx, r)
}

func (c *Coordinator) handleLeave(ctx context.Context, r *room, userID int64) {
	p := r.session.ParticipantByID(userID)
	if p == nil {
		return
	}
	c.sendTo(ctx, r.id, r.session.OtherOf(userID).ID, c.cat.LeftPleaseWait(p.DisplayName))
}

func (c *Coordinator) handleText(r *room, userID int64) {
	sess := r.session
	p := sess.ParticipantByID(userID)
	if p == nil {
		return
	}

	// Only messages in the active discussion phase count toward the
	// minimum discussion length.
	if p.Status == domain.StatusReady {
		p.Messages++
	}

	// A speaker change means the previous message got its answer; restart
	// the silence watchdog for the new message.
	if sess.LastSpeaker != userID {
		c.startTimer(r, timers.Silence, c.cfg.SilenceWait)
		sess.LastSpeaker = userID
	}
}

func (c *Coordinator) handleCommand(ctx context.Context, r *room, userID int64, command string) {
	if r.session.ParticipantByID(userID) == nil {
		slog.Warn("command from user outside session", "room_id", r.id, "user_id", userID)
		return
	}

	switch c.class.Classify(command) {
	case match.CommandDone:
		c.commandDone(ctx, r, userID)
	case match.CommandNext:
		c.commandNext(ctx, r, userID)
	case match.CommandReady:
		c.commandReady(ctx, r, userID)
	default:
		if command == "noreply" || command == "no reply" {
			c.sendTo(ctx, r.id, userID, c.cat.PleaseWait)
			return
		}
		c.sendTo(ctx, r.id, userID, c.cat.DontUnderstand)
	}
}

// commandReady begins the discussion once both participants sent it.
func (c *Coordinator) commandReady(ctx context.Context, r *room, userID int64) {
	sess := r.session
	cur := sess.ParticipantByID(userID)
	other := sess.OtherOf(userID)

	if cur.Status != domain.StatusJoined {
		c.sendTo(ctx, r.id, cur.ID, c.cat.AlreadyTyped(c.cat.CommandReady))
		return
	}
	cur.Status = domain.StatusReady
	r.timers.Cancel(timers.Ready)

	if other.Status == domain.StatusJoined {
		c.sendTo(ctx, r.id, cur.ID, c.cat.WaitingForPartner(c.cat.CommandReady))
		// Give the partner half the ready interval before nudging them.
		c.startTimer(r, timers.Ready, c.cfg.ReadyWait/2)
		return
	}

	c.broadcast(ctx, r.id, c.cat.HoorayStart)
	c.showItem(ctx, r)
	c.startTimer(r, timers.Round, c.cfg.RoundLength)
}

// commandDone ends a round of discussion once both participants sent it.
func (c *Coordinator) commandDone(ctx context.Context, r *room, userID int64) {
	sess := r.session
	cur := sess.ParticipantByID(userID)
	other := sess.OtherOf(userID)

	switch {
	case cur.Status == domain.StatusJoined || other.Status == domain.StatusJoined:
		c.sendTo(ctx, r.id, cur.ID, c.cat.NotStarted)
	case cur.Messages < c.cfg.MinMessages || other.Messages < c.cfg.MinMessages:
		c.sendTo(ctx, r.id, cur.ID, c.cat.TooShort)
	case cur.Status == domain.StatusDone:
		c.sendToHTML(ctx, r.id, cur.ID, c.cat.AlreadyTyped(c.cat.CommandDone))
	default:
		cur.Status = domain.StatusDone

		if other.Status != domain.StatusDone {
			c.startTimer(r, timers.Agreement, c.cfg.AgreementWait)
			c.sendToHTML(ctx, r.id, cur.ID, c.cat.WaitingForPartner(c.cat.CommandDone))
			c.sendToHTML(ctx, r.id, other.ID, c.cat.PartnerDoneAreYou)
			return
		}

		r.timers.Cancel(timers.Agreement)
		c.broadcast(ctx, r.id, c.cat.WriteSummary)
		c.broadcast(ctx, r.id, c.cat.NextItemInstructions)
	}
}

// commandNext advances to the next item once both participants sent it.
func (c *Coordinator) commandNext(ctx context.Context, r *room, userID int64) {
	sess := r.session
	cur := sess.ParticipantByID(userID)
	other := sess.OtherOf(userID)

	switch {
	case cur.Status == domain.StatusJoined || other.Status == domain.StatusJoined:
		c.sendTo(ctx, r.id, cur.ID, c.cat.NotStarted)
	case cur.Status == domain.StatusNext:
		c.sendToHTML(ctx, r.id, cur.ID, c.cat.AlreadyTyped(c.cat.CommandNext))
	default:
		cur.Status = domain.StatusNext

		if other.Status != domain.StatusNext {
			c.startTimer(r, timers.Agreement, c.cfg.AgreementWait)
			c.sendToHTML(ctx, r.id, cur.ID, c.cat.WaitingForPartner(c.cat.CommandNext))
			c.sendToHTML(ctx, r.id, other.ID, c.cat.PartnerNextAreYou)
			return
		}

		r.timers.Cancel(timers.Agreement)
		c.items.Pop(r.id)

		if c.items.Exhausted(r.id) {
			c.broadcast(ctx, r.id, c.cat.ExperimentOver)
			c.issueTokens(ctx, r.id, domain.TokenSuccess,
				sess.Participants[0].ID, sess.Participants[1].ID)
			if err := c.closeSession(ctx, r, "success"); err != nil {
				slog.Error("close after completion failed", "room_id", r.id, "error", err)
			}
			return
		}

		c.broadcast(ctx, r.id, c.cat.PreparingNext)
		for _, p := range sess.Participants {
			p.Status = domain.StatusReady
			p.Messages = 0
		}
		c.startTimer(r, timers.Round, c.cfg.RoundLength)
		c.showItem(ctx, r)
	}
}

func (c *Coordinator) handleTimer(ctx context.Context, r *room, name timers.Name) {
	switch name {
	case timers.Ready:
		c.readyTimeout(ctx, r)
	case timers.Round:
		c.broadcast(ctx, r.id, c.cat.LongDiscussion)
	case timers.Agreement:
		c.agreementTimeout(ctx, r)
	case timers.Silence:
		c.silenceTimeout(ctx, r)
	}
}

func (c *Coordinator) readyTimeout(ctx context.Context, r *room) {
	a, b := r.session.Participants[0], r.session.Participants[1]
	switch {
	case a.Status == domain.StatusJoined && b.Status == domain.StatusJoined:
		c.broadcastHTML(ctx, r.id, c.cat.AreYouReady)
	case a.Status == domain.StatusJoined:
		c.sendTo(ctx, r.id, a.ID, c.cat.PartnerReadyAreYou)
	case b.Status == domain.StatusJoined:
		c.sendTo(ctx, r.id, b.ID, c.cat.PartnerReadyAreYou)
	}
}

// agreementTimeout lapses a one-sided done or next command. A lapsed next
// falls back to done, a lapsed done falls back to ready; the two targets
// differ because a lapsed next still sits inside a finished discussion.
func (c *Coordinator) agreementTimeout(ctx context.Context, r *room) {
	if issuer := solo(r.session, domain.StatusNext); issuer != nil {
		issuer.Status = domain.StatusDone
		c.broadcast(ctx, r.id, c.cat.NotNext)
		return
	}
	if issuer := solo(r.session, domain.StatusDone); issuer != nil {
		issuer.Status = domain.StatusReady
		c.broadcast(ctx, r.id, c.cat.NotDone)
	}
}

func (c *Coordinator) silenceTimeout(ctx context.Context, r *room) {
	sess := r.session
	if sess.LastSpeaker == 0 {
		return
	}
	sender := sess.ParticipantByID(sess.LastSpeaker)
	silent := sess.OtherOf(sess.LastSpeaker)
	if sender == nil || silent == nil {
		return
	}

	c.sendTo(ctx, r.id, silent.ID, c.cat.ConvoEndedYouWereAway)
	c.sendTo(ctx, r.id, sender.ID, c.cat.PartnerAwayLong)
	c.issueTokens(ctx, r.id, domain.TokenNoReply, silent.ID)
	if err := c.closeSession(ctx, r, "no_reply"); err != nil {
		slog.Error("close after silence timeout failed", "room_id", r.id, "error", err)
	}
}

// solo returns the participant that is alone in the given status, or nil.
func solo(sess *domain.Session, status domain.Status) *domain.Participant {
	a, b := sess.Participants[0], sess.Participants[1]
	if a.Status == status && b.Status != status {
		return a
	}
	if b.Status == status && a.Status != status {
		return b
	}
	return nil
}

// showItem pushes the current item presentation and the role instructions
// to both participants.
func (c *Coordinator) showItem(ctx context.Context, r *room) {
	pair, ok := c.items.Peek(r.id)
	if !ok {
		return
	}
	sides := [2]string{pair.First, pair.Second}
	for i, p := range r.session.Participants {
		if err := c.pres.SetContent(ctx, r.id, p.ID, sides[i]); err != nil {
			slog.Error("set content failed", "room_id", r.id, "user_id", p.ID, "error", err)
		}
	}
	c.showInstructions(ctx, r)
}

func (c *Coordinator) showInstructions(ctx context.Context, r *room) {
	for _, p := range r.session.Participants {
		title, body := c.cat.QuestionerTitle, c.cat.QuestionerDescription
		if r.session.RoleOf(p.ID) == domain.RoleAnswerer {
			title, body = c.cat.AnswererTitle, c.cat.AnswererDescription
		}
		if err := c.pres.SetInstructions(ctx, r.id, p.ID, title, body); err != nil {
			slog.Error("set instructions failed", "room_id", r.id, "user_id", p.ID, "error", err)
		}
	}
}

// startTimer schedules a named timer whose expiry is dispatched as a
// regular event on the room's queue.
func (c *Coordinator) startTimer(r *room, name timers.Name, d time.Duration) {
	roomID := r.id
	r.timers.Start(name, d, func() {
		if !c.reg.dispatch(roomID, event{kind: evTimer, timer: name}) {
			slog.Debug("timer fired for released room", "room_id", roomID, "timer", name)
		}
	})
}

// Outbound notifications are fire and forget; failures are logged for the
// operator and the step is abandoned, never retried inline.

func (c *Coordinator) broadcast(ctx context.Context, roomID int64, text string) {
	if err := c.msg.Broadcast(ctx, roomID, text, false); err != nil {
		slog.Error("broadcast failed", "room_id", roomID, "error", err)
	}
}

func (c *Coordinator) broadcastHTML(ctx context.Context, roomID int64, text string) {
	if err := c.msg.Broadcast(ctx, roomID, text, true); err != nil {
		slog.Error("broadcast failed", "room_id", roomID, "error", err)
	}
}

func (c *Coordinator) sendTo(ctx context.Context, roomID, userID int64, text string) {
	if err := c.msg.SendTo(ctx, roomID, userID, text, false); err != nil {
		slog.Error("send failed", "room_id", roomID, "user_id", userID, "error", err)
	}
}

func (c *Coordinator) sendToHTML(ctx context.Context, roomID, userID int64, text string) {
	if err := c.msg.SendTo(ctx, roomID, userID, text, true); err != nil {
		slog.Error("send failed", "room_id", roomID, "user_id", userID, "error", err)
	}
}
