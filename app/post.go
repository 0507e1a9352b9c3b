package app

import "context"

// PostService publishes new confessions.
type PostService interface {
	// Create publishes content authored by authorID.
	Create(ctx context.Context, content, authorID string) error
}
