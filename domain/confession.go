package domain

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// Author is the public profile attached to a confession. The backend may
// omit it entirely, so Confession carries a pointer.
type Author struct {
	ID             string
	Username       string
	DisplayName    string
	ProfilePicture string
}

// Name returns the display name, falling back to the username.
func (a *Author) Name(fallback string) string {
	if a == nil {
		return fallback
	}
	if a.DisplayName != "" {
		return a.DisplayName
	}
	if a.Username != "" {
		return a.Username
	}
	return fallback
}

// Avatar returns a short avatar glyph: an emoji-sized profile picture when
// present, otherwise the upper-cased first letter of the name.
func (a *Author) Avatar(fallback string) string {
	if a != nil && a.ProfilePicture != "" && utf8.RuneCountInString(a.ProfilePicture) <= 4 {
		return a.ProfilePicture
	}
	name := a.Name("")
	if name == "" {
		return fallback
	}
	r := []rune(name)
	return string(unicode.ToUpper(r[0]))
}

// Confession is a single feed entry as assembled by the feed aggregator.
type Confession struct {
	ID           string
	Content      string
	CreatedAt    time.Time
	DisplayAge   string // Relative age bucket, computed at assembly time
	LikeCount    int
	CommentCount int
	ShareCount   int
	Author       *Author
	IsTrending   bool // Fixed at assembly time
	IsLiked      bool // Mirrors the persisted liked set
}

// IsOwnedBy reports whether the confession was written by userID.
func (c Confession) IsOwnedBy(userID string) bool {
	return c.Author != nil && userID != "" && c.Author.ID == userID
}
