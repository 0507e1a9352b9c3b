package app

import (
	"context"
	"time"

	"github.com/CrestNiraj12/terminalconfess/domain"
)

// FeedEntry is a confession as delivered by the backend, before the feed
// aggregator assembles it. Counts are already reduced from the wire arrays.
type FeedEntry struct {
	ID        string
	Content   string
	CreatedAt time.Time
	Likes     int
	Comments  int
	Shares    int
	Author    *domain.Author
}

// FeedService fetches confession collections and toggles likes.
type FeedService interface {
	// FetchRecent returns the recent feed, newest first.
	FetchRecent(ctx context.Context) ([]FeedEntry, error)

	// FetchTrending returns the trending feed.
	FetchTrending(ctx context.Context) ([]FeedEntry, error)

	// ToggleLike flips the like state of a confession for userID and reports
	// whether the confession is liked afterwards.
	ToggleLike(ctx context.Context, id, userID string) (bool, error)
}
