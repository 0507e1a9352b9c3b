package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/CrestNiraj12/terminalconfess/domain"
)

// postService implements app.PostService.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

func (s *postService) Create(ctx context.Context, content, authorID string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.ErrEmptyConfession
	}
	body := map[string]string{"content": content, "author": authorID}
	if err := s.client.send(ctx, http.MethodPost, "/api/post", body, nil); err != nil {
		return fmt.Errorf("posting confession: %w", err)
	}
	return nil
}
