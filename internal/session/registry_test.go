package session

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestRegistryCreateDuplicateFails(t *testing.T) {
	g := newRegistry(func(*room, event) {})

	if _, err := g.create(1, nil); err != nil {
		t.Fatalf("Expected first create to succeed, got %v", err)
	}
	if _, err := g.create(1, nil); !errors.Is(err, ErrRoomExists) {
		t.Errorf("Expected ErrRoomExists for duplicate create, got %v", err)
	}
}

func TestRegistryRemoveUnknownFails(t *testing.T) {
	g := newRegistry(func(*room, event) {})

	if err := g.remove(5); !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("Expected ErrUnknownRoom, got %v", err)
	}
}

func TestRegistryDispatchUnknownRoom(t *testing.T) {
	g := newRegistry(func(*room, event) {})

	if g.dispatch(5, event{kind: evText}) {
		t.Error("Expected dispatch to an unknown room to report false")
	}
}

func TestRegistrySerializesEventsPerRoom(t *testing.T) {
	var mu sync.Mutex
	var seen []int64

	g := newRegistry(func(_ *room, ev event) {
		// Slow handler: overlapping execution would interleave appends.
		time.Sleep(time.Millisecond)
		mu.Lock()
		seen = append(seen, ev.userID)
		mu.Unlock()
	})

	if _, err := g.create(1, nil); err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	want := make([]int64, 0, 10)
	for i := int64(0); i < 10; i++ {
		if !g.dispatch(1, event{kind: evText, userID: i}) {
			t.Fatalf("Expected dispatch %d to succeed", i)
		}
		want = append(want, i)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(seen)
		mu.Unlock()
		if n == 10 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Expected 10 events handled, got %d", n)
		}
		time.Sleep(2 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("Expected events handled in dispatch order %v, got %v", want, seen)
	}
}

func TestRegistryRemoveStopsDelivery(t *testing.T) {
	handled := make(chan event, eventQueueSize)
	g := newRegistry(func(_ *room, ev event) { handled <- ev })

	if _, err := g.create(1, nil); err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}
	if err := g.remove(1); err != nil {
		t.Fatalf("Expected remove to succeed, got %v", err)
	}

	if g.dispatch(1, event{kind: evText}) {
		t.Error("Expected dispatch after remove to report false")
	}
	select {
	case ev := <-handled:
		t.Errorf("Expected no event delivery after remove, got kind %d", ev.kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRegistryRoomIDs(t *testing.T) {
	g := newRegistry(func(*room, event) {})

	for _, id := range []int64{9, 2, 5} {
		if _, err := g.create(id, nil); err != nil {
			t.Fatalf("Expected create %d to succeed, got %v", id, err)
		}
	}

	if got := g.Len(); got != 3 {
		t.Errorf("Expected 3 rooms, got %d", got)
	}
	want := []int64{2, 5, 9}
	if got := g.RoomIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected sorted room IDs %v, got %v", want, got)
	}
}
