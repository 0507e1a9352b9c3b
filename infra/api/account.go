package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/domain"
)

type authResponse struct {
	Token string    `json:"token"`
	User  *wireUser `json:"user"`
}

func (r authResponse) session() (domain.Session, error) {
	if r.Token == "" {
		return domain.Session{}, fmt.Errorf("auth response without token: %w", domain.ErrUnauthorized)
	}
	return domain.Session{Token: r.Token, User: r.User.toDomain()}, nil
}

// authService implements app.AuthService. Its endpoints are public.
type authService struct {
	client *Client
}

// NewAuthService creates an AuthService backed by the API.
func NewAuthService(client *Client) *authService {
	return &authService{client: client}
}

func (s *authService) Login(ctx context.Context, req app.LoginRequest) (domain.Session, error) {
	var resp authResponse
	if err := s.client.sendPublic(ctx, http.MethodPost, "/api/onboarding/login", req, &resp); err != nil {
		return domain.Session{}, fmt.Errorf("logging in: %w", err)
	}
	return resp.session()
}

func (s *authService) Register(ctx context.Context, req app.RegisterRequest) (domain.Session, error) {
	var resp authResponse
	if err := s.client.sendPublic(ctx, http.MethodPost, "/api/onboarding/register", req, &resp); err != nil {
		return domain.Session{}, fmt.Errorf("registering: %w", err)
	}
	return resp.session()
}

// onboardingService implements app.OnboardingService.
type onboardingService struct {
	client *Client
}

// NewOnboardingService creates an OnboardingService backed by the API.
func NewOnboardingService(client *Client) *onboardingService {
	return &onboardingService{client: client}
}

func (s *onboardingService) CompleteProfile(ctx context.Context, userID string, update app.ProfileUpdate) (domain.User, error) {
	var resp struct {
		User *wireUser `json:"user"`
	}
	path := "/api/onboarding/complete-profile/" + url.PathEscape(userID)
	if err := s.client.send(ctx, http.MethodPut, path, update, &resp); err != nil {
		return domain.User{}, fmt.Errorf("completing profile: %w", err)
	}
	if resp.User == nil {
		return domain.User{}, fmt.Errorf("complete-profile response without user")
	}
	return *resp.User.toDomain(), nil
}

// profileService implements app.ProfileService.
type profileService struct {
	client *Client
	now    func() time.Time
}

// NewProfileService creates a ProfileService backed by the API.
func NewProfileService(client *Client) *profileService {
	return &profileService{client: client, now: time.Now}
}

func (s *profileService) Stats(ctx context.Context, userID string) (app.ProfileStats, error) {
	var resp struct {
		Stats struct {
			ConfessionCount int `json:"confessionCount"`
			LikeCount       int `json:"likeCount"`
			CommentCount    int `json:"commentCount"`
			FollowerCount   int `json:"followerCount"`
		} `json:"stats"`
	}
	path := fmt.Sprintf("/api/profile/%s/stats", url.PathEscape(userID))
	if err := s.client.get(ctx, path, &resp); err != nil {
		return app.ProfileStats{}, fmt.Errorf("fetching profile stats: %w", err)
	}
	return app.ProfileStats{
		Confessions: resp.Stats.ConfessionCount,
		Likes:       resp.Stats.LikeCount,
		Comments:    resp.Stats.CommentCount,
		Followers:   resp.Stats.FollowerCount,
	}, nil
}

func (s *profileService) Confessions(ctx context.Context, userID string) ([]app.FeedEntry, error) {
	var resp confessionsResponse
	path := fmt.Sprintf("/api/profile/%s/confessions", url.PathEscape(userID))
	if err := s.client.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("fetching own confessions: %w", err)
	}
	return mapConfessions(resp.Confessions, s.now()), nil
}
