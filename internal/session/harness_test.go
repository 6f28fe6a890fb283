package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/NapierNLP/sgge/internal/domain"
	"github.com/NapierNLP/sgge/internal/items"
	"github.com/NapierNLP/sgge/internal/messages"
)

type sentMessage struct {
	roomID int64
	userID int64 // 0 for a broadcast
	text   string
	html   bool
}

type fakeMessenger struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (f *fakeMessenger) Broadcast(_ context.Context, roomID int64, text string, html bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{roomID: roomID, text: text, html: html})
	return nil
}

func (f *fakeMessenger) SendTo(_ context.Context, roomID, userID int64, text string, html bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{roomID: roomID, userID: userID, text: text, html: html})
	return nil
}

func (f *fakeMessenger) count(userID int64, text string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.sent {
		if m.userID == userID && m.text == text {
			n++
		}
	}
	return n
}

func (f *fakeMessenger) has(userID int64, text string) bool {
	return f.count(userID, text) > 0
}

func (f *fakeMessenger) hasBroadcast(text string) bool {
	return f.count(0, text) > 0
}

type contentCall struct {
	roomID  int64
	userID  int64
	content string
}

type instructionsCall struct {
	roomID int64
	userID int64
	title  string
}

type fakePresenter struct {
	mu           sync.Mutex
	contents     []contentCall
	instructions []instructionsCall
}

func (f *fakePresenter) SetInstructions(_ context.Context, roomID, userID int64, title, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instructions = append(f.instructions, instructionsCall{roomID: roomID, userID: userID, title: title})
	return nil
}

func (f *fakePresenter) SetContent(_ context.Context, roomID, userID int64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contents = append(f.contents, contentCall{roomID: roomID, userID: userID, content: content})
	return nil
}

func (f *fakePresenter) lastContent(userID int64) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.contents) - 1; i >= 0; i-- {
		if f.contents[i].userID == userID {
			return f.contents[i].content, true
		}
	}
	return "", false
}

func (f *fakePresenter) lastTitle(userID int64) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.instructions) - 1; i >= 0; i-- {
		if f.instructions[i].userID == userID {
			return f.instructions[i].title, true
		}
	}
	return "", false
}

type moveCall struct {
	userID int64
	roomID int64
}

type fakeMover struct {
	mu       sync.Mutex
	moves    []moveCall
	removals []moveCall
	readOnly []int64
}

func (f *fakeMover) MoveToRoom(_ context.Context, userID, roomID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves = append(f.moves, moveCall{userID: userID, roomID: roomID})
	return nil
}

func (f *fakeMover) RemoveFromRoom(_ context.Context, userID, roomID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removals = append(f.removals, moveCall{userID: userID, roomID: roomID})
	return nil
}

func (f *fakeMover) SetReadOnly(_ context.Context, roomID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readOnly = append(f.readOnly, roomID)
	return nil
}

func (f *fakeMover) movedTo(userID, roomID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.moves {
		if m.userID == userID && m.roomID == roomID {
			return true
		}
	}
	return false
}

func (f *fakeMover) removedFrom(userID, roomID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.removals {
		if m.userID == userID && m.roomID == roomID {
			return true
		}
	}
	return false
}

func (f *fakeMover) madeReadOnly(roomID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.readOnly {
		if id == roomID {
			return true
		}
	}
	return false
}

type fakeDirectory struct {
	mu    sync.Mutex
	tasks map[int64]int64
}

func (f *fakeDirectory) UserTask(_ context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tasks[userID], nil
}

type fakeAudit struct {
	mu      sync.Mutex
	records []domain.ConfirmationRecord
}

func (f *fakeAudit) AppendConfirmation(_ context.Context, rec *domain.ConfirmationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeAudit) Ping(context.Context) error { return nil }
func (f *fakeAudit) Close() error               { return nil }

func (f *fakeAudit) byStatus(status domain.TokenStatus) []domain.ConfirmationRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ConfirmationRecord
	for _, rec := range f.records {
		if rec.Status == status {
			out = append(out, rec)
		}
	}
	return out
}

// harness wires a coordinator against in-memory fakes. Users 1 (alice) and
// 2 (bob) belong to task 7; the waiting room is 100 and the bot is user 99.
type harness struct {
	c     *Coordinator
	msg   *fakeMessenger
	pres  *fakePresenter
	mover *fakeMover
	dir   *fakeDirectory
	audit *fakeAudit
	cat   *messages.Catalog
}

const (
	testTaskID      = 7
	testWaitingRoom = 100
	testBotUser     = 99
	testRoom        = 1
)

func newHarness(t *testing.T, pool []items.Pair, mutate func(*Config)) *harness {
	t.Helper()

	cfg := Config{
		TaskID:         testTaskID,
		WaitingRoomID:  testWaitingRoom,
		BotUserID:      testBotUser,
		ReadyWait:      80 * time.Millisecond,
		RoundLength:    time.Minute,
		AgreementWait:  60 * time.Millisecond,
		SilenceWait:    time.Minute,
		WaitingTimeout: 40 * time.Millisecond,
		TeardownDelay:  10 * time.Millisecond,
		MinMessages:    3,
		FuzzyThreshold: 80,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	cat := messages.English()
	h := &harness{
		msg:   &fakeMessenger{},
		pres:  &fakePresenter{},
		mover: &fakeMover{},
		dir:   &fakeDirectory{tasks: map[int64]int64{1: testTaskID, 2: testTaskID}},
		audit: &fakeAudit{},
		cat:   cat,
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h.c = NewCoordinator(ctx, cfg, cat, h.msg, h.pres, h.mover, h.dir, h.audit,
		items.New(pool, 0, false, 1))
	return h
}

func (h *harness) createRoom(t *testing.T) {
	t.Helper()
	users := []User{{ID: 1, Name: "alice"}, {ID: 2, Name: "bob"}}
	if err := h.c.RoomCreated(context.Background(), testRoom, testTaskID, users); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
}

// bothReady drives the ready handshake to completion.
func (h *harness) bothReady(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	h.c.Command(ctx, testRoom, 1, h.cat.CommandReady)
	h.c.Command(ctx, testRoom, 2, h.cat.CommandReady)
	waitUntil(t, func() bool { return h.msg.hasBroadcast(h.cat.HoorayStart) })
}

// chat sends n discussion messages from each participant.
func (h *harness) chat(n int) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		h.c.TextMessage(ctx, testRoom, 1, "question")
		h.c.TextMessage(ctx, testRoom, 2, "answer")
	}
}

// status reads a participant's handshake state. Only call after observing
// a message the handler sent after the state change; the messenger mutex
// orders the read behind the write.
func (h *harness) status(t *testing.T, userID int64) domain.Status {
	t.Helper()
	h.c.reg.mu.RLock()
	r, ok := h.c.reg.rooms[testRoom]
	h.c.reg.mu.RUnlock()
	if !ok {
		t.Fatal("Room is not registered")
	}
	return r.session.ParticipantByID(userID).Status
}

func twoItems() []items.Pair {
	return []items.Pair{
		{First: "exhibit one questions", Second: "exhibit one details"},
		{First: "exhibit two questions", Second: "exhibit two details"},
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("Condition not met within 2s")
}

// settle gives queued events time to drain before a negative assertion.
func settle() {
	time.Sleep(30 * time.Millisecond)
}
