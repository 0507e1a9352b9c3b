// Package profile renders the signed-in user's profile screen.
package profile

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalconfess/app/account"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

// Loader fetches what the profile screen shows.
type Loader interface {
	LoadProfile(ctx context.Context) (account.Profile, error)
}

// LoadedMsg carries the loaded profile. Err is set when part of it failed.
type LoadedMsg struct {
	Profile account.Profile
	Err     error
}

// SignOutMsg asks the root model to end the session.
type SignOutMsg struct{}

// Model holds the profile screen state.
type Model struct {
	svc     Loader
	ctx     context.Context
	now     func() time.Time
	profile account.Profile
	loading bool
	err     string
	spinner spinner.Model
	keys    common.KeyMap
	width   int
}

// New creates the profile screen.
func New(ctx context.Context, svc Loader) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		svc:     svc,
		ctx:     ctx,
		now:     time.Now,
		loading: true,
		spinner: s,
		keys:    common.DefaultKeyMap(),
	}
}

// Init loads the profile.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick)
}

// SetWidth records the width available to the screen.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

func (m Model) load() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		p, err := svc.LoadProfile(ctx)
		return LoadedMsg{Profile: p, Err: err}
	}
}

// Update handles messages for the profile screen.
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
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.loading = false
		m.profile = msg.Profile
		m.err = ""
		if msg.Err != nil {
			m.err = common.ErrorText(msg.Err, "Some of your profile couldn't be loaded.")
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.load(), m.spinner.Tick)
		case key.Matches(msg, m.keys.SignOut):
			return m, func() tea.Msg { return SignOutMsg{} }
		}
	}
	return m, nil
}
