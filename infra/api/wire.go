package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/domain"
)

// wireConfession is the backend's confession document.
type wireConfession struct {
	ID        string            `json:"_id"`
	Content   string            `json:"content"`
	CreatedAt string            `json:"createdAt"`
	Likes     []json.RawMessage `json:"likes"`
	Comments  []json.RawMessage `json:"comments"`
	Shares    int               `json:"shares"`
	Author    *wireAuthor       `json:"author"`
}

type confessionsResponse struct {
	Confessions []wireConfession `json:"confessions"`
}

// wireAuthor accepts both a populated author object and a bare id string.
type wireAuthor struct {
	ID             string `json:"id"`
	MongoID        string `json:"_id"`
	Username       string `json:"username"`
	DisplayName    string `json:"displayName"`
	ProfilePicture string `json:"profilePicture"`
}

func (a *wireAuthor) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &a.ID)
	}
	type plain wireAuthor
	return json.Unmarshal(data, (*plain)(a))
}

func (a *wireAuthor) toDomain() *domain.Author {
	if a == nil {
		return nil
	}
	id := a.ID
	if id == "" {
		id = a.MongoID
	}
	return &domain.Author{
		ID:             id,
		Username:       a.Username,
		DisplayName:    a.DisplayName,
		ProfilePicture: a.ProfilePicture,
	}
}

// wireUser is the backend's user document.
type wireUser struct {
	ID             string   `json:"id"`
	MongoID        string   `json:"_id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	DisplayName    string   `json:"displayName"`
	Bio            string   `json:"bio"`
	Interests      []string `json:"interests"`
	ProfilePicture string   `json:"profilePicture"`
	IsOnboarded    bool     `json:"isOnboarded"`
}

func (u *wireUser) toDomain() *domain.User {
	if u == nil {
		return nil
	}
	id := u.ID
	if id == "" {
		id = u.MongoID
	}
	return &domain.User{
		ID:             id,
		Username:       u.Username,
		Email:          u.Email,
		DisplayName:    u.DisplayName,
		Bio:            u.Bio,
		Interests:      u.Interests,
		ProfilePicture: u.ProfilePicture,
		IsOnboarded:    u.IsOnboarded,
	}
}

// mapConfessions reduces wire documents to feed entries. Unparseable
// timestamps fall back to now.
func mapConfessions(in []wireConfession, now time.Time) []app.FeedEntry {
	out := make([]app.FeedEntry, 0, len(in))
	for _, c := range in {
		createdAt, err := time.Parse(time.RFC3339, c.CreatedAt)
		if err != nil {
			createdAt = now
		}
		shares := c.Shares
		if shares < 0 {
			shares = 0
		}
		out = append(out, app.FeedEntry{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: createdAt,
			Likes:     len(c.Likes),
			Comments:  len(c.Comments),
			Shares:    shares,
			Author:    c.Author.toDomain(),
		})
	}
	return out
}
