// Package items supplies the ordered sequence of exhibit presentations for
// each task room.
package items

import (
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"math/rand"
	"os"
	"sync"
)

// Pair is one exhibit item: two presentations, one per participant.
// First is shown to the first participant in display-name order, Second to
// the other.
type Pair struct {
	First  string
	Second string
}

// Sequencer assigns a finite item sequence to each room and consumes it
// front to back. Assignment is deterministic for a given seed and
// participant name pair so that a re-created room sees the same items.
// Safe for concurrent access from independent room handlers.
type Sequencer struct {
	mu      sync.Mutex
	pool    []Pair
	perRoom map[int64][]Pair

	perRoomCount int
	shuffle      bool
	seed         int64
}

// Load reads the exhibit CSV (two presentation columns per row) and builds
// a sequencer that deals out perRoomCount items per room.
func Load(path string, perRoomCount int, shuffle bool, seed int64) (*Sequencer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open item data: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read item data: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("item data %s is empty", path)
	}

	pool := make([]Pair, 0, len(rows))
	for _, row := range rows {
		pool = append(pool, Pair{First: row[0], Second: row[1]})
	}
	return New(pool, perRoomCount, shuffle, seed), nil
}

// New builds a sequencer over an in-memory pool.
func New(pool []Pair, perRoomCount int, shuffle bool, seed int64) *Sequencer {
	return &Sequencer{
		pool:         pool,
		perRoom:      make(map[int64][]Pair),
		perRoomCount: perRoomCount,
		shuffle:      shuffle,
		seed:         seed,
	}
}

// Assign deals an item sequence to a room, keyed by the participant name
// pair. Assigning an already assigned room is a programming error.
func (s *Sequencer) Assign(roomID int64, names [2]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.perRoom[roomID]; ok {
		return fmt.Errorf("room %d already has an item sequence", roomID)
	}

	seq := make([]Pair, len(s.pool))
	copy(seq, s.pool)
	if s.shuffle {
		rng := rand.New(rand.NewSource(s.seed ^ nameSeed(names)))
		rng.Shuffle(len(seq), func(i, j int) {
			seq[i], seq[j] = seq[j], seq[i]
		})
	}
	if s.perRoomCount > 0 && s.perRoomCount < len(seq) {
		seq = seq[:s.perRoomCount]
	}
	s.perRoom[roomID] = seq
	return nil
}

// Has reports whether the room has an assigned sequence.
func (s *Sequencer) Has(roomID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.perRoom[roomID]
	return ok
}

// Peek returns the current item for the room without consuming it.
func (s *Sequencer) Peek(roomID int64) (Pair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.perRoom[roomID]
	if !ok || len(seq) == 0 {
		return Pair{}, false
	}
	return seq[0], true
}

// Pop consumes the current item for the room.
func (s *Sequencer) Pop(roomID int64) (Pair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.perRoom[roomID]
	if !ok || len(seq) == 0 {
		return Pair{}, false
	}
	s.perRoom[roomID] = seq[1:]
	return seq[0], true
}

// Exhausted reports whether the room has consumed its whole sequence.
// A room without an assignment counts as exhausted.
func (s *Sequencer) Exhausted(roomID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.perRoom[roomID]
	return !ok || len(seq) == 0
}

// Remaining returns how many items the room still has, including the
// current one.
func (s *Sequencer) Remaining(roomID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.perRoom[roomID])
}

// Release drops the room's assignment on session teardown.
func (s *Sequencer) Release(roomID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.perRoom, roomID)
}

func nameSeed(names [2]string) int64 {
	h := fnv.New64a()
	h.Write([]byte(names[0]))
	h.Write([]byte{0})
	h.Write([]byte(names[1]))
	return int64(h.Sum64())
}
