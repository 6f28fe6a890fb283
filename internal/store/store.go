// Package store provides the durable audit sink for confirmation tokens.
package store

import (
	"context"

	"github.com/NapierNLP/sgge/internal/domain"
)

// Repository persists confirmation records. The protocol core only appends;
// reading the log is left to the analysis tooling.
type Repository interface {
	// AppendConfirmation durably appends one confirmation record.
	AppendConfirmation(ctx context.Context, rec *domain.ConfirmationRecord) error

	// Ping verifies the sink is reachable.
	Ping(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}
