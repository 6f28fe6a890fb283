package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/NapierNLP/sgge/internal/domain"
	"github.com/NapierNLP/sgge/internal/timers"
)

var (
	// ErrRoomExists is returned when a session is created for a room that
	// already has one. This indicates a bug or duplicate room event.
	ErrRoomExists = errors.New("room already registered")
	// ErrUnknownRoom is returned when a room has no registered session.
	ErrUnknownRoom = errors.New("unknown room")
)

type eventKind int

const (
	evJoin eventKind = iota
	evLeave
	evText
	evCommand
	evTimer
)

// event is one serialized unit of work for a room. Timer expirations are
// events like any other, so they never race command handling.
type event struct {
	kind   eventKind
	userID int64
	text   string
	timer  timers.Name
}

const eventQueueSize = 64

// room is the actor for one session: a session record, its timer set, and
// a buffered event queue drained by a single goroutine.
type room struct {
	id      int64
	session *domain.Session
	timers  *timers.Set
	events  chan event
	stop    chan struct{}
}

func (r *room) loop(handle func(*room, event)) {
	for {
		select {
		case <-r.stop:
			return
		case ev := <-r.events:
			handle(r, ev)
		}
	}
}

// Registry maps room IDs to their session actors. Handling within a room
// is serial; across rooms it is fully parallel.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[int64]*room
	handle func(*room, event)
}

func newRegistry(handle func(*room, event)) *Registry {
	return &Registry{
		rooms:  make(map[int64]*room),
		handle: handle,
	}
}

func (g *Registry) create(roomID int64, sess *domain.Session) (*room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.rooms[roomID]; ok {
		return nil, fmt.Errorf("room %d: %w", roomID, ErrRoomExists)
	}

	r := &room{
		id:      roomID,
		session: sess,
		timers:  timers.NewSet(),
		events:  make(chan event, eventQueueSize),
		stop:    make(chan struct{}),
	}
	g.rooms[roomID] = r
	go r.loop(g.handle)
	return r, nil
}

// dispatch enqueues an event for a room. It reports false when the room is
// not registered or its queue is full; a full queue is logged loudly since
// it means the room's handler has stalled.
func (g *Registry) dispatch(roomID int64, ev event) bool {
	g.mu.RLock()
	r, ok := g.rooms[roomID]
	g.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case r.events <- ev:
		return true
	default:
		slog.Error("room event queue overflow, dropping event",
			"room_id", roomID, "kind", ev.kind)
		return false
	}
}

// remove releases a room's actor. The actor goroutine exits after its
// current event, and later events for the room are dropped.
func (g *Registry) remove(roomID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[roomID]
	if !ok {
		return fmt.Errorf("room %d: %w", roomID, ErrUnknownRoom)
	}
	delete(g.rooms, roomID)
	close(r.stop)
	return nil
}

// Len returns the number of active sessions.
func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

// RoomIDs returns the IDs of all active sessions in ascending order.
func (g *Registry) RoomIDs() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.rooms))
	for id := range g.rooms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
