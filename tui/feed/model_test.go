package feed

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	feedapp "github.com/CrestNiraj12/terminalconfess/app/feed"
	"github.com/CrestNiraj12/terminalconfess/domain"
)

type stubSource struct {
	snap     feedapp.Snapshot
	refresh  error
	likeErr  error
	liked    []string
	refreshN int
}

func (s *stubSource) Refresh(context.Context) error {
	s.refreshN++
	return s.refresh
}

func (s *stubSource) Like(_ context.Context, id string) error {
	s.liked = append(s.liked, id)
	if s.likeErr != nil {
		return s.likeErr
	}
	for i := range s.snap.Recent {
		if s.snap.Recent[i].ID == id {
			s.snap.Recent[i].IsLiked = !s.snap.Recent[i].IsLiked
			s.snap.Recent[i].LikeCount++
		}
	}
	return nil
}

func (s *stubSource) Snapshot() feedapp.Snapshot { return s.snap }

func confession(id, name string, trending bool) domain.Confession {
	return domain.Confession{
		ID:         id,
		Content:    "confession " + id,
		DisplayAge: "5m ago",
		Author:     &domain.Author{ID: "a-" + id, DisplayName: name},
		IsTrending: trending,
	}
}

func fullSnapshot() feedapp.Snapshot {
	return feedapp.Snapshot{
		Trending:     []domain.Confession{confession("t1", "Tara", true)},
		Recent:       []domain.Confession{confession("r1", "Rui", false), confession("r2", "", false)},
		ShowTrending: true,
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_InitialRefreshPopulatesFeed(t *testing.T) {
	src := &stubSource{}
	m := New(context.Background(), src, "")
	if !m.Loading() {
		t.Fatalf("new model should be loading")
	}

	src.snap = fullSnapshot()
	msg := m.fetch()()
	m, _ = m.Update(msg)
	if m.Loading() {
		t.Fatalf("loading should clear after refresh")
	}
	view := m.View()
	for _, want := range []string{"Trending", "Recent", "Tara", "Rui", "User", "5m ago"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if src.refreshN != 1 {
		t.Fatalf("expected one refresh, got %d", src.refreshN)
	}
}

func TestModel_HidesTrendingSection(t *testing.T) {
	src := &stubSource{snap: feedapp.Snapshot{Recent: []domain.Confession{confession("r1", "Rui", false)}}}
	m := New(context.Background(), src, "")
	m, _ = m.Update(LoadedMsg{Snapshot: src.snap})
	if strings.Contains(m.View(), "Trending") {
		t.Fatalf("trending section should be hidden")
	}
	if c, ok := m.Selected(); !ok || c.ID != "r1" {
		t.Fatalf("cursor should start on first recent item, got %+v", c)
	}
}

func TestModel_EmptyState(t *testing.T) {
	m := New(context.Background(), &stubSource{}, "")
	m, _ = m.Update(LoadedMsg{})
	if !strings.Contains(m.View(), "No confessions yet") {
		t.Fatalf("expected empty state, got %q", m.View())
	}
}

func TestModel_RefreshErrorKeepsList(t *testing.T) {
	src := &stubSource{snap: fullSnapshot()}
	m := New(context.Background(), src, "")
	m, _ = m.Update(LoadedMsg{Snapshot: src.snap, Err: errors.New("boom")})
	view := m.View()
	if !strings.Contains(view, "Rui") || !strings.Contains(view, "Couldn't refresh") {
		t.Fatalf("expected previous list and hint:\n%s", view)
	}
}

func TestModel_LikeSelected(t *testing.T) {
	src := &stubSource{snap: fullSnapshot()}
	m := New(context.Background(), src, "")
	m, _ = m.Update(LoadedMsg{Snapshot: src.snap})

	m, _ = m.Update(keyMsg("j"))
	m, cmd := m.Update(keyMsg("l"))
	if cmd == nil {
		t.Fatalf("expected like command")
	}
	m, _ = m.Update(cmd())
	if len(src.liked) != 1 || src.liked[0] != "r1" {
		t.Fatalf("expected like on r1, got %v", src.liked)
	}
	if c, _ := m.Selected(); !c.IsLiked {
		t.Fatalf("selected card should be liked after toggle")
	}
}

func TestModel_LikeFailureIsSilent(t *testing.T) {
	src := &stubSource{snap: fullSnapshot(), likeErr: errors.New("nope")}
	m := New(context.Background(), src, "")
	m, _ = m.Update(LoadedMsg{Snapshot: src.snap})
	_, cmd := m.Update(keyMsg("l"))
	m, _ = m.Update(cmd())
	if strings.Contains(m.View(), "nope") {
		t.Fatalf("like errors must not be shown")
	}
}

func TestModel_DropsResultsAfterStop(t *testing.T) {
	src := &stubSource{}
	m := New(context.Background(), src, "")
	m.Stop()
	m, _ = m.Update(LoadedMsg{Snapshot: fullSnapshot()})
	if !m.Loading() || !m.snap.Empty() {
		t.Fatalf("results after stop must be dropped")
	}
}

func TestModel_DropsStaleRefresh(t *testing.T) {
	m := New(context.Background(), &stubSource{}, "")
	m, _ = m.Update(LoadedMsg{Snapshot: fullSnapshot(), Err: feedapp.ErrStale})
	if !m.snap.Empty() {
		t.Fatalf("stale snapshot must be dropped")
	}
}

func TestModel_MarksOwnConfession(t *testing.T) {
	src := &stubSource{snap: fullSnapshot()}
	m := New(context.Background(), src, "a-r1")
	m, _ = m.Update(LoadedMsg{Snapshot: src.snap})
	if !strings.Contains(m.View(), "you") {
		t.Fatalf("own confession should carry a badge")
	}
}

func TestScrollTo_KeepsSelectionVisible(t *testing.T) {
	body := strings.Repeat("line\n", 49) + "line"
	out := scrollTo(body, []int{0, 20, 40}, 2, 10)
	if n := len(strings.Split(out, "\n")); n != 10 {
		t.Fatalf("expected 10 lines, got %d", n)
	}
}
