package domain

import "time"

// TokenStatus tags a confirmation record with the reason it was issued.
type TokenStatus string

const (
	// TokenSuccess is issued when a pair completes all items.
	TokenSuccess TokenStatus = "success"
	// TokenNoPartner is issued when a user waited in vain for a partner.
	TokenNoPartner TokenStatus = "no_partner"
	// TokenNoReply is issued when a session ends because one participant
	// stopped replying.
	TokenNoReply TokenStatus = "no_reply"
)

// ConfirmationRecord is an audit entry for an issued confirmation token.
type ConfirmationRecord struct {
	RoomID int64
	Status TokenStatus
	Token  string
	// Recipient is the addressed user, or 0 when the record is not tied
	// to a single participant.
	Recipient int64
	CreatedAt time.Time
}
