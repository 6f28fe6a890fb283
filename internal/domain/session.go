// Package domain defines the core entities of the dialogue experiment.
package domain

import "sort"

// Status is the handshake state of a participant within a session.
type Status string

const (
	// StatusJoined means the participant is in the room but has not sent
	// the ready command yet.
	StatusJoined Status = "joined"
	// StatusReady means the participant is in the active discussion phase.
	StatusReady Status = "ready"
	// StatusDone means the participant has declared the discussion finished
	// and is waiting for (or has received) partner agreement.
	StatusDone Status = "done"
	// StatusNext means the participant has submitted their summary and asked
	// to advance to the next item.
	StatusNext Status = "next"
)

// Role determines which instruction set a participant sees.
type Role string

const (
	RoleQuestioner Role = "questioner"
	RoleAnswerer   Role = "answerer"
)

// Participant is one of the two users assigned to a session.
type Participant struct {
	ID          int64
	DisplayName string
	Status      Status
	// Messages counts discussion messages sent since the last round reset.
	// It only increments while Status is StatusReady.
	Messages int
}

// Session holds the protocol state for one active two-party room.
// All fields are mutated only by the room's serialized event handler.
type Session struct {
	RoomID int64
	// Participants is the fixed pair for this room, ordered by a stable
	// sort on display name so that role assignment survives rejoins.
	Participants [2]*Participant
	// LastSpeaker is the user ID of the participant that sent the most
	// recent discussion message, or 0 if nobody has spoken yet.
	LastSpeaker int64
	// Closed is set exactly once, when the session is torn down.
	Closed bool
}

// NewSession builds a session for a room pair. The two participants are
// ordered by display name (ties broken by ID) so that the ordering, and
// therefore the role assignment, is reproducible.
func NewSession(roomID int64, a, b *Participant) *Session {
	pair := [2]*Participant{a, b}
	sort.Slice(pair[:], func(i, j int) bool {
		if pair[i].DisplayName != pair[j].DisplayName {
			return pair[i].DisplayName < pair[j].DisplayName
		}
		return pair[i].ID < pair[j].ID
	})
	return &Session{RoomID: roomID, Participants: pair}
}

// ParticipantByID returns the participant with the given user ID, or nil.
func (s *Session) ParticipantByID(id int64) *Participant {
	for _, p := range s.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// OtherOf returns the partner of the participant with the given user ID,
// or nil if the ID does not belong to this session.
func (s *Session) OtherOf(id int64) *Participant {
	switch id {
	case s.Participants[0].ID:
		return s.Participants[1]
	case s.Participants[1].ID:
		return s.Participants[0]
	}
	return nil
}

// RoleOf returns the instruction role for a participant. The first
// participant in display-name order asks questions, the second answers.
func (s *Session) RoleOf(id int64) Role {
	if s.Participants[0].ID == id {
		return RoleQuestioner
	}
	return RoleAnswerer
}
