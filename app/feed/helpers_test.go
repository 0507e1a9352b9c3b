package feed

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/domain"
)

type stubFeed struct {
	recent       func(ctx context.Context) ([]app.FeedEntry, error)
	trending     func(ctx context.Context) ([]app.FeedEntry, error)
	like         func(ctx context.Context, id, userID string) (bool, error)
	recentCalls  atomic.Int32
	trendingCall atomic.Int32
}

func (s *stubFeed) FetchRecent(ctx context.Context) ([]app.FeedEntry, error) {
	s.recentCalls.Add(1)
	if s.recent == nil {
		return nil, nil
	}
	return s.recent(ctx)
}

func (s *stubFeed) FetchTrending(ctx context.Context) ([]app.FeedEntry, error) {
	s.trendingCall.Add(1)
	if s.trending == nil {
		return nil, nil
	}
	return s.trending(ctx)
}

func (s *stubFeed) ToggleLike(ctx context.Context, id, userID string) (bool, error) {
	if s.like == nil {
		return false, fmt.Errorf("no like stub")
	}
	return s.like(ctx, id, userID)
}

type memSessions struct {
	s domain.Session
}

func (m *memSessions) Current() (domain.Session, error) { return m.s, nil }
func (m *memSessions) Save(s domain.Session) error      { m.s = s; return nil }
func (m *memSessions) Clear() error                     { m.s = domain.Session{}; return nil }
func (m *memSessions) UpdateUser(u domain.User) error {
	m.s.User = &u
	return nil
}

func signedIn() *memSessions {
	return &memSessions{s: domain.Session{Token: "tok", User: &domain.User{ID: "u1", IsOnboarded: true}}}
}

type memLikes struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	calls int
}

func newMemLikes(ids ...string) *memLikes {
	m := &memLikes{ids: make(map[string]struct{})}
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}
	return m
}

func (m *memLikes) Contains(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[id]
	return ok
}

func (m *memLikes) Toggle(id string, liked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if liked {
		m.ids[id] = struct{}{}
	} else {
		delete(m.ids, id)
	}
	return nil
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func entries(prefix string, n int) []app.FeedEntry {
	out := make([]app.FeedEntry, n)
	for i := range out {
		out[i] = app.FeedEntry{
			ID:        fmt.Sprintf("%s%d", prefix, i),
			Content:   "confession " + prefix,
			CreatedAt: fixedNow.Add(-time.Duration(i+1) * time.Hour),
			Likes:     i,
		}
	}
	return out
}

func returning(items []app.FeedEntry) func(context.Context) ([]app.FeedEntry, error) {
	return func(context.Context) ([]app.FeedEntry, error) { return items, nil }
}

func newTestAggregator(feed *stubFeed, sessions app.SessionStore, likes app.LikeStore) *Aggregator {
	return New(feed, sessions, likes, WithClock(func() time.Time { return fixedNow }))
}
