package app

import (
	"context"

	"github.com/CrestNiraj12/terminalconfess/domain"
)

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest carries sign-up credentials.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProfileUpdate is submitted when onboarding completes.
type ProfileUpdate struct {
	Bio            string   `json:"bio" validate:"max=280"`
	Interests      []string `json:"interests" validate:"dive,required"`
	ProfilePicture string   `json:"profilePicture"`
}

// ProfileStats are the counters shown on the profile screen.
type ProfileStats struct {
	Confessions int
	Likes       int
	Comments    int
	Followers   int
}

// AuthService exchanges credentials for a session. Endpoints are public.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (domain.Session, error)
	Register(ctx context.Context, req RegisterRequest) (domain.Session, error)
}

// OnboardingService completes a freshly registered profile.
type OnboardingService interface {
	CompleteProfile(ctx context.Context, userID string, update ProfileUpdate) (domain.User, error)
}

// ProfileService provides information about the signed-in user.
type ProfileService interface {
	// Stats returns the user's activity counters.
	Stats(ctx context.Context, userID string) (ProfileStats, error)

	// Confessions returns the user's own confessions, newest first.
	Confessions(ctx context.Context, userID string) ([]FeedEntry, error)
}
