package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/CrestNiraj12/terminalconfess/app"
)

// feedService implements app.FeedService.
type feedService struct {
	client *Client
	now    func() time.Time
}

// NewFeedService creates a FeedService backed by the API.
func NewFeedService(client *Client) *feedService {
	return &feedService{client: client, now: time.Now}
}

func (s *feedService) FetchRecent(ctx context.Context) ([]app.FeedEntry, error) {
	return s.fetch(ctx, "/api/feed")
}

func (s *feedService) FetchTrending(ctx context.Context) ([]app.FeedEntry, error) {
	return s.fetch(ctx, "/api/feed/trending")
}

func (s *feedService) fetch(ctx context.Context, path string) ([]app.FeedEntry, error) {
	var resp confessionsResponse
	if err := s.client.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return mapConfessions(resp.Confessions, s.now()), nil
}

func (s *feedService) ToggleLike(ctx context.Context, id, userID string) (bool, error) {
	var resp struct {
		Liked bool `json:"liked"`
	}
	path := fmt.Sprintf("/api/feed/%s/like", url.PathEscape(id))
	body := map[string]string{"userId": userID}
	if err := s.client.send(ctx, http.MethodPost, path, body, &resp); err != nil {
		return false, fmt.Errorf("liking confession: %w", err)
	}
	return resp.Liked, nil
}
