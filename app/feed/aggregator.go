// Package feed assembles the confession feed: it fetches the recent and
// trending collections, merges them into one list, and keeps per-item liked
// state in step with the durable like store.
package feed

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/domain"
)

const (
	// trendingThreshold is the minimum recent-feed size before trending
	// confessions are merged in.
	trendingThreshold = 3

	// trendingDisplayLimit caps the trending section.
	trendingDisplayLimit = 2
)

// ErrStale is returned by Refresh when Reset ran while the fetch was in
// flight; the fetched list is dropped.
var ErrStale = errors.New("feed refresh superseded")

// Aggregator owns the assembled confession list. It is safe for concurrent
// use: refreshes and like toggles run on background goroutines while the UI
// reads snapshots.
type Aggregator struct {
	feed     app.FeedService
	sessions app.SessionStore
	likes    app.LikeStore
	log      *zap.Logger
	now      func() time.Time

	refreshes singleflight.Group

	mu       sync.RWMutex
	items    []domain.Confession
	inflight int
	gen      uint64
	liking   map[string]struct{}
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Aggregator) {
		a.log = l
	}
}

// WithClock overrides the time source used for age buckets.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// New creates an Aggregator with injected collaborators.
func New(feed app.FeedService, sessions app.SessionStore, likes app.LikeStore, opts ...Option) *Aggregator {
	a := &Aggregator{
		feed:     feed,
		sessions: sessions,
		likes:    likes,
		log:      zap.NewNop(),
		now:      time.Now,
		liking:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.Named("feed")
	return a
}

// Refresh fetches both collections and replaces the list. Calls that overlap
// an in-flight refresh join it and share its result. On any failure the
// previous list is kept. Canceling ctx only abandons the wait for this
// caller; the shared fetch keeps going for anyone else joined to it.
func (a *Aggregator) Refresh(ctx context.Context) error {
	a.mu.RLock()
	key := strconv.FormatUint(a.gen, 10)
	a.mu.RUnlock()

	shared := context.WithoutCancel(ctx)
	ch := a.refreshes.DoChan(key, func() (any, error) {
		return nil, a.refresh(shared)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Aggregator) refresh(ctx context.Context) error {
	sess, err := a.sessions.Current()
	if err != nil {
		a.log.Error("reading session for refresh", zap.Error(err))
		return fmt.Errorf("reading session: %w", err)
	}
	if !sess.HasToken() {
		a.log.Warn("refresh without token")
		return domain.ErrNoSession
	}

	a.mu.Lock()
	gen := a.gen
	a.inflight++
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.inflight--
		a.mu.Unlock()
	}()

	started := a.now()
	var recent, trending []app.FeedEntry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recent, err = a.feed.FetchRecent(gctx)
		if err != nil {
			return fmt.Errorf("fetching recent feed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		trending, err = a.feed.FetchTrending(gctx)
		if err != nil {
			return fmt.Errorf("fetching trending feed: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		a.log.Error("feed refresh failed", zap.Error(err))
		return err
	}

	items := a.assemble(recent, trending, a.now())

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		a.log.Debug("dropping refresh after reset")
		return ErrStale
	}
	// Likes that landed while assembling are only visible under the lock.
	for i := range items {
		items[i].IsLiked = a.likes.Contains(items[i].ID)
	}
	a.items = items
	a.log.Info("feed refreshed",
		zap.Int("recent", len(recent)),
		zap.Int("trending", len(trending)),
		zap.Int("assembled", len(items)),
		zap.Duration("took", a.now().Sub(started)),
	)
	return nil
}

// assemble maps both collections and merges them. Ids stay unique: the
// first occurrence wins inside a collection and recent wins over trending.
func (a *Aggregator) assemble(recent, trending []app.FeedEntry, now time.Time) []domain.Confession {
	seen := make(map[string]struct{}, len(recent)+len(trending))
	recentItems := a.mapEntries(recent, false, now, seen)
	if len(recentItems) < trendingThreshold {
		return recentItems
	}
	trendingItems := a.mapEntries(trending, true, now, seen)

	out := make([]domain.Confession, 0, len(trendingItems)+len(recentItems))
	out = append(out, trendingItems...)
	return append(out, recentItems...)
}

func (a *Aggregator) mapEntries(entries []app.FeedEntry, trending bool, now time.Time, seen map[string]struct{}) []domain.Confession {
	out := make([]domain.Confession, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, domain.Confession{
			ID:           e.ID,
			Content:      e.Content,
			CreatedAt:    e.CreatedAt,
			DisplayAge:   AgeBucket(e.CreatedAt, now),
			LikeCount:    e.Likes,
			CommentCount: e.Comments,
			ShareCount:   e.Shares,
			Author:       e.Author,
			IsTrending:   trending,
			IsLiked:      a.likes.Contains(e.ID),
		})
	}
	return out
}

// Like toggles the like state of a confession on the backend. Local state
// only changes after the backend confirms. A second call for the same id
// while the first is pending fails with domain.ErrLikeInFlight.
func (a *Aggregator) Like(ctx context.Context, id string) error {
	sess, err := a.sessions.Current()
	if err != nil {
		return fmt.Errorf("reading session: %w", err)
	}
	user, err := sess.RequireUser()
	if err != nil {
		a.log.Warn("like without session", zap.String("confession_id", id))
		return err
	}

	a.mu.Lock()
	if _, busy := a.liking[id]; busy {
		a.mu.Unlock()
		return domain.ErrLikeInFlight
	}
	a.liking[id] = struct{}{}
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		delete(a.liking, id)
		a.mu.Unlock()
	}()

	liked, err := a.feed.ToggleLike(ctx, id, user.ID)
	if err != nil {
		a.log.Warn("like request failed", zap.String("confession_id", id), zap.Error(err))
		return fmt.Errorf("toggling like: %w", err)
	}

	a.mu.Lock()
	for i := range a.items {
		c := &a.items[i]
		if c.ID != id {
			continue
		}
		if liked {
			c.LikeCount++
		} else if c.LikeCount > 0 {
			c.LikeCount--
		}
		c.IsLiked = liked
		break
	}
	// The liked set moves together with the list so a refresh committing
	// next sees both.
	if err := a.likes.Toggle(id, liked); err != nil {
		a.log.Error("persisting liked state", zap.String("confession_id", id), zap.Error(err))
	}
	a.mu.Unlock()
	return nil
}

// Reset clears the list and invalidates in-flight refreshes. Used when the
// session ends.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.items = nil
}

// Loading reports whether a refresh is in flight.
func (a *Aggregator) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inflight > 0
}

// Items returns a copy of the assembled list.
func (a *Aggregator) Items() []domain.Confession {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]domain.Confession(nil), a.items...)
}

// IsEmpty reports whether the assembled list has no items.
func (a *Aggregator) IsEmpty() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.items) == 0
}

// ShowTrending reports whether the trending section should be displayed.
func (a *Aggregator) ShowTrending() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return showTrending(a.items)
}

// TrendingItems returns at most two trending confessions, or none when the
// trending section is hidden.
func (a *Aggregator) TrendingItems() []domain.Confession {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return trendingItems(a.items)
}

// RecentItems returns every non-trending confession.
func (a *Aggregator) RecentItems() []domain.Confession {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return recentItems(a.items)
}

// Snapshot is a consistent view of the aggregator for rendering.
type Snapshot struct {
	Trending     []domain.Confession
	Recent       []domain.Confession
	ShowTrending bool
	Loading      bool
}

// Empty reports whether the snapshot has nothing to show.
func (s Snapshot) Empty() bool {
	return len(s.Trending) == 0 && len(s.Recent) == 0
}

// Snapshot reads all rendering state under one lock.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Snapshot{
		Trending:     trendingItems(a.items),
		Recent:       recentItems(a.items),
		ShowTrending: showTrending(a.items),
		Loading:      a.inflight > 0,
	}
}

func showTrending(items []domain.Confession) bool {
	return len(items) >= trendingThreshold
}

func trendingItems(items []domain.Confession) []domain.Confession {
	if !showTrending(items) {
		return nil
	}
	var out []domain.Confession
	for _, c := range items {
		if !c.IsTrending {
			continue
		}
		out = append(out, c)
		if len(out) == trendingDisplayLimit {
			break
		}
	}
	return out
}

func recentItems(items []domain.Confession) []domain.Confession {
	out := make([]domain.Confession, 0, len(items))
	for _, c := range items {
		if !c.IsTrending {
			out = append(out, c)
		}
	}
	return out
}
