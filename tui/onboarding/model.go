// Package onboarding renders the three-step profile setup shown to new
// accounts.
package onboarding

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/domain"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

// Interests offered on the second step.
var Interests = []string{
	"💻 Coding", "🎵 Music", "🎬 Movies", "🏔 Travel",
	"📚 Reading", "🎨 Art", "🎮 Gaming", "⚽ Sports",
	"🍳 Cooking", "🧘 Meditation", "📸 Photography", "🎯 Productivity",
}

const (
	stepBio = iota
	stepInterests
	stepAvatar
	stepCount
)

const (
	bioLimit    = 280
	avatarLimit = 4
)

// Onboarder completes the signed-in user's profile.
type Onboarder interface {
	CompleteOnboarding(ctx context.Context, upd app.ProfileUpdate) (domain.User, error)
}

// DoneMsg is sent once the profile is saved.
type DoneMsg struct {
	User domain.User
}

type failedMsg struct {
	err error
}

// Model holds the onboarding wizard state.
type Model struct {
	svc      Onboarder
	ctx      context.Context
	step     int
	bio      textarea.Model
	cursor   int
	selected map[int]bool
	avatar   textinput.Model
	busy     bool
	err      string
	keys     common.KeyMap
}

// New creates the onboarding wizard.
func New(ctx context.Context, svc Onboarder) Model {
	bio := textarea.New()
	bio.Placeholder = "A line or two about you..."
	bio.CharLimit = bioLimit
	bio.SetWidth(60)
	bio.SetHeight(4)
	bio.KeyMap.InsertNewline.SetEnabled(false)
	bio.Focus()

	avatar := textinput.New()
	avatar.Placeholder = "an emoji, e.g. 🦉"
	avatar.CharLimit = avatarLimit

	return Model{
		svc:      svc,
		ctx:      ctx,
		bio:      bio,
		selected: make(map[int]bool),
		avatar:   avatar,
		keys:     common.DefaultKeyMap(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) setStep(step int) tea.Cmd {
	m.step = step
	m.err = ""
	m.bio.Blur()
	m.avatar.Blur()
	switch step {
	case stepBio:
		return m.bio.Focus()
	case stepAvatar:
		return m.avatar.Focus()
	}
	return nil
}

// Update handles messages for the onboarding wizard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case failedMsg:
		m.busy = false
		m.err = common.ErrorText(msg.err, "Couldn't save your profile. Please try again.")
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Back):
			if m.step > stepBio {
				cmd := m.setStep(m.step - 1)
				return m, cmd
			}
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			if m.step < stepCount-1 {
				cmd := m.setStep(m.step + 1)
				return m, cmd
			}
			m.busy = true
			m.err = ""
			return m, m.submit()
		}

		if m.step == stepInterests {
			switch {
			case key.Matches(msg, m.keys.Up):
				if m.cursor > 0 {
					m.cursor--
				}
			case key.Matches(msg, m.keys.Down):
				if m.cursor < len(Interests)-1 {
					m.cursor++
				}
			case key.Matches(msg, m.keys.Toggle):
				m.selected[m.cursor] = !m.selected[m.cursor]
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.step {
	case stepBio:
		m.bio, cmd = m.bio.Update(msg)
	case stepAvatar:
		m.avatar, cmd = m.avatar.Update(msg)
	}
	return m, cmd
}

// Profile returns the fields collected so far.
func (m Model) Profile() app.ProfileUpdate {
	upd := app.ProfileUpdate{Bio: strings.TrimSpace(m.bio.Value())}
	for i, name := range Interests {
		if m.selected[i] {
			upd.Interests = append(upd.Interests, name)
		}
	}
	if pic := strings.TrimSpace(m.avatar.Value()); pic != "" && utf8.RuneCountInString(pic) <= avatarLimit {
		upd.ProfilePicture = pic
	}
	return upd
}

func (m Model) submit() tea.Cmd {
	svc, ctx, upd := m.svc, m.ctx, m.Profile()
	return func() tea.Msg {
		u, err := svc.CompleteOnboarding(ctx, upd)
		if err != nil {
			return failedMsg{err: err}
		}
		return DoneMsg{User: u}
	}
}
