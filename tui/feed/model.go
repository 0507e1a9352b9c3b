package feed

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	feedapp "github.com/CrestNiraj12/terminalconfess/app/feed"
	"github.com/CrestNiraj12/terminalconfess/domain"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

// Source is the slice of the feed aggregator the home screen drives.
type Source interface {
	Refresh(ctx context.Context) error
	Like(ctx context.Context, id string) error
	Snapshot() feedapp.Snapshot
}

// --- Messages ---

// LoadedMsg is sent when a refresh finishes, successfully or not.
type LoadedMsg struct {
	Snapshot feedapp.Snapshot
	Err      error
}

// LikedMsg is sent when a like toggle finishes. Failures leave the snapshot
// untouched and are not surfaced.
type LikedMsg struct {
	ID       string
	Snapshot feedapp.Snapshot
	Err      error
}

// --- Model ---

// Model holds the state for the home feed screen.
type Model struct {
	src     Source
	ctx     context.Context
	cancel  context.CancelFunc
	userID  string
	snap    feedapp.Snapshot
	cursor  int
	loading bool
	err     error
	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a feed model bound to parent. Stop cancels any refresh or
// like the model started.
func New(parent context.Context, src Source, userID string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C6A0F6"))

	ctx, cancel := context.WithCancel(parent)
	return Model{
		src:     src,
		ctx:     ctx,
		cancel:  cancel,
		userID:  userID,
		snap:    src.Snapshot(),
		loading: true,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

// Stop cancels in-flight work. Results that arrive afterwards are dropped.
func (m Model) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// SetSize records the area available to the feed.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	return m
}

func (m Model) fetch() tea.Cmd {
	src, ctx := m.src, m.ctx
	return func() tea.Msg {
		err := src.Refresh(ctx)
		return LoadedMsg{Snapshot: src.Snapshot(), Err: err}
	}
}

func (m Model) like(id string) tea.Cmd {
	src, ctx := m.src, m.ctx
	return func() tea.Msg {
		err := src.Like(ctx, id)
		return LikedMsg{ID: id, Snapshot: src.Snapshot(), Err: err}
	}
}

// Update handles messages for the feed screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		if m.ctx.Err() != nil || errors.Is(msg.Err, feedapp.ErrStale) {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		m.snap = msg.Snapshot
		m.clampCursor()
		return m, nil

	case LikedMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.snap = msg.Snapshot
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.fetch(), m.spinner.Tick)

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Like):
			if c, ok := m.Selected(); ok {
				return m, m.like(c.ID)
			}
		}
	}
	return m, nil
}

// items returns trending cards first, then recent ones, in display order.
func (m Model) items() []domain.Confession {
	out := make([]domain.Confession, 0, len(m.snap.Trending)+len(m.snap.Recent))
	if m.snap.ShowTrending {
		out = append(out, m.snap.Trending...)
	}
	return append(out, m.snap.Recent...)
}

// Selected returns the confession under the cursor.
func (m Model) Selected() (domain.Confession, bool) {
	items := m.items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return domain.Confession{}, false
	}
	return items[m.cursor], true
}

// Loading reports whether a refresh is in flight.
func (m Model) Loading() bool { return m.loading }

func (m *Model) clampCursor() {
	n := len(m.items())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
