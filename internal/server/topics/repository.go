package topics

import (
	"context"
	"time"
)

// Repository persists topics. Every lookup that takes a userID must treat a
// row owned by someone else exactly like a missing row
// (common.ErrorNotFound), so record existence never leaks across accounts.
type Repository interface {
	Create(ctx context.Context, topic *Topic) (*Topic, error)

	// ListByUser returns all topics owned by userID, oldest first.
	ListByUser(ctx context.Context, userID string) ([]Topic, error)

	// UpdateStatus sets the status and last-studied time of the topic with
	// the given id, but only when it is owned by userID.
	UpdateStatus(ctx context.Context, id, userID string, status Status, lastStudied time.Time) (*Topic, error)

	// Delete removes the topic with the given id when owned by userID.
	Delete(ctx context.Context, id, userID string) error
}
