// Package account implements the session lifecycle around the feed: sign-in,
// sign-up, onboarding completion, publishing and sign-out.
package account

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/app/guard"
	"github.com/CrestNiraj12/terminalconfess/domain"
)

// Resetter is notified when the session ends.
type Resetter interface {
	Reset()
}

// Service wires the account flows to the backend and the session store.
type Service struct {
	auth       app.AuthService
	onboarding app.OnboardingService
	posts      app.PostService
	profiles   app.ProfileService
	sessions   app.SessionStore
	feed       Resetter
	log        *zap.Logger
}

// Deps holds the collaborators of Service. Plain struct, not a DI container.
type Deps struct {
	Auth       app.AuthService
	Onboarding app.OnboardingService
	Posts      app.PostService
	Profiles   app.ProfileService
	Sessions   app.SessionStore
	Feed       Resetter
	Log        *zap.Logger
}

// New creates an account Service.
func New(d Deps) *Service {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		auth:       d.Auth,
		onboarding: d.Onboarding,
		posts:      d.Posts,
		profiles:   d.Profiles,
		sessions:   d.Sessions,
		feed:       d.Feed,
		log:        log.Named("account"),
	}
}

// Session returns the stored session.
func (s *Service) Session() (domain.Session, error) {
	return s.sessions.Current()
}

// Login signs in, persists the session and returns where to go next.
func (s *Service) Login(ctx context.Context, req app.LoginRequest, from guard.Route) (guard.Route, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := check(req); err != nil {
		return "", err
	}
	sess, err := s.auth.Login(ctx, req)
	if err != nil {
		s.log.Warn("login failed", zap.Error(err))
		return "", err
	}
	return s.start(sess, from)
}

// Register signs up, persists the session and returns where to go next.
func (s *Service) Register(ctx context.Context, req app.RegisterRequest, from guard.Route) (guard.Route, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if err := check(req); err != nil {
		return "", err
	}
	sess, err := s.auth.Register(ctx, req)
	if err != nil {
		s.log.Warn("registration failed", zap.Error(err))
		return "", err
	}
	return s.start(sess, from)
}

func (s *Service) start(sess domain.Session, from guard.Route) (guard.Route, error) {
	if err := s.sessions.Save(sess); err != nil {
		s.log.Error("saving session", zap.Error(err))
		return "", fmt.Errorf("saving session: %w", err)
	}
	if s.feed != nil {
		s.feed.Reset()
	}
	s.log.Info("signed in", zap.Bool("onboarded", sess.User != nil && sess.User.IsOnboarded))
	return guard.AfterAuth(sess.User, from), nil
}

// CompleteOnboarding submits the profile and marks the stored user onboarded.
func (s *Service) CompleteOnboarding(ctx context.Context, upd app.ProfileUpdate) (domain.User, error) {
	upd.Bio = strings.TrimSpace(upd.Bio)
	if err := check(upd); err != nil {
		return domain.User{}, err
	}
	user, err := s.currentUser()
	if err != nil {
		return domain.User{}, err
	}
	updated, err := s.onboarding.CompleteProfile(ctx, user.ID, upd)
	if err != nil {
		s.log.Warn("profile completion failed", zap.Error(err))
		return domain.User{}, err
	}
	if updated.ID == "" {
		updated.ID = user.ID
	}
	// A successful completion is what onboards the user, whatever the
	// response echoes back.
	updated.IsOnboarded = true
	if err := s.sessions.UpdateUser(updated); err != nil {
		return domain.User{}, fmt.Errorf("saving user: %w", err)
	}
	sess, err := s.sessions.Current()
	if err != nil || sess.User == nil {
		return updated, nil
	}
	return *sess.User, nil
}

// confessionInput bounds what Publish accepts.
type confessionInput struct {
	Content string `validate:"required,max=1000"`
}

// Publish posts a new confession as the signed-in user.
func (s *Service) Publish(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.ErrEmptyConfession
	}
	if err := check(confessionInput{Content: content}); err != nil {
		return err
	}
	user, err := s.currentUser()
	if err != nil {
		return err
	}
	if err := s.posts.Create(ctx, content, user.ID); err != nil {
		s.log.Warn("publish failed", zap.Error(err))
		return err
	}
	return nil
}

// Profile is what the profile screen shows.
type Profile struct {
	User        domain.User
	Stats       app.ProfileStats
	Confessions []app.FeedEntry
}

// LoadProfile fetches stats and the user's own confessions. A failed stats
// call still returns the confessions and vice versa; the first error is
// returned alongside whatever loaded.
func (s *Service) LoadProfile(ctx context.Context) (Profile, error) {
	user, err := s.currentUser()
	if err != nil {
		return Profile{}, err
	}
	p := Profile{User: *user}
	var firstErr error
	if p.Stats, err = s.profiles.Stats(ctx, user.ID); err != nil {
		s.log.Warn("loading stats", zap.Error(err))
		firstErr = err
	}
	if p.Confessions, err = s.profiles.Confessions(ctx, user.ID); err != nil {
		s.log.Warn("loading own confessions", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}
	return p, firstErr
}

// SignOut clears the session and drops the cached feed. The liked set is
// kept.
func (s *Service) SignOut() error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	if s.feed != nil {
		s.feed.Reset()
	}
	s.log.Info("signed out")
	return nil
}

func (s *Service) currentUser() (*domain.User, error) {
	sess, err := s.sessions.Current()
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return sess.RequireUser()
}
