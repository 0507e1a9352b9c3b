package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalconfess/domain"
)

// Session stores the bearer token and the user record as two files in dir.
type Session struct {
	dir string
	log *zap.Logger
	mu  sync.Mutex
}

// NewSession creates a session store rooted at dir.
func NewSession(dir string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{dir: dir, log: log.Named("session")}
}

func (s *Session) tokenPath() string { return filepath.Join(s.dir, TokenFile) }
func (s *Session) userPath() string  { return filepath.Join(s.dir, UserFile) }

// Current returns the stored session. Missing files mean an absent token or
// user; a malformed user record is logged and treated as absent.
func (s *Session) Current() (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Session) current() (domain.Session, error) {
	var sess domain.Session

	data, err := os.ReadFile(s.tokenPath())
	switch {
	case err == nil:
		sess.Token = strings.TrimSpace(string(data))
	case !os.IsNotExist(err):
		return domain.Session{}, fmt.Errorf("reading token from %s: %w", s.tokenPath(), err)
	}

	data, err = os.ReadFile(s.userPath())
	switch {
	case err == nil:
		var u domain.User
		if err := json.Unmarshal(data, &u); err != nil {
			s.log.Warn("ignoring malformed user record", zap.Error(err))
			break
		}
		sess.User = &u
	case !os.IsNotExist(err):
		return domain.Session{}, fmt.Errorf("reading user from %s: %w", s.userPath(), err)
	}
	return sess, nil
}

// AccessToken satisfies the API client's token provider.
func (s *Session) AccessToken() (string, error) {
	sess, err := s.Current()
	if err != nil {
		return "", err
	}
	if !sess.HasToken() {
		return "", domain.ErrNoSession
	}
	return sess.Token, nil
}

// Save replaces the stored session.
func (s *Session) Save(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.Token == "" {
		return fmt.Errorf("saving session: %w", domain.ErrNoSession)
	}
	if err := writeFileAtomic(s.tokenPath(), []byte(sess.Token)); err != nil {
		return err
	}
	if sess.User == nil {
		return removeIfExists(s.userPath())
	}
	return s.writeUser(*sess.User)
}

// UpdateUser merges u onto the stored user record. Empty fields in u keep
// the stored value; IsOnboarded always takes u's value.
func (s *Session) UpdateUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.current()
	if err != nil {
		return err
	}
	if cur.User != nil {
		u = mergeUser(*cur.User, u)
	}
	return s.writeUser(u)
}

func (s *Session) writeUser(u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	return writeFileAtomic(s.userPath(), data)
}

// Clear removes the token and the user record.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := removeIfExists(s.tokenPath()); err != nil {
		return err
	}
	return removeIfExists(s.userPath())
}

func mergeUser(base, update domain.User) domain.User {
	if update.ID != "" {
		base.ID = update.ID
	}
	if update.Username != "" {
		base.Username = update.Username
	}
	if update.Email != "" {
		base.Email = update.Email
	}
	if update.DisplayName != "" {
		base.DisplayName = update.DisplayName
	}
	if update.Bio != "" {
		base.Bio = update.Bio
	}
	if update.Interests != nil {
		base.Interests = update.Interests
	}
	if update.ProfilePicture != "" {
		base.ProfilePicture = update.ProfilePicture
	}
	base.IsOnboarded = update.IsOnboarded
	return base
}
