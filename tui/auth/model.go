// Package auth renders the sign-in / sign-up screen.
package auth

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalconfess/app"
	"github.com/CrestNiraj12/terminalconfess/app/guard"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

// Authenticator signs users in or up and returns the route to open next.
type Authenticator interface {
	Login(ctx context.Context, req app.LoginRequest, from guard.Route) (guard.Route, error)
	Register(ctx context.Context, req app.RegisterRequest, from guard.Route) (guard.Route, error)
}

// DoneMsg is sent after a successful sign-in or sign-up.
type DoneMsg struct {
	Next guard.Route
}

type failedMsg struct {
	err error
}

type mode int

const (
	signIn mode = iota
	signUp
)

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
)

// Model holds the state of the auth screen.
type Model struct {
	svc    Authenticator
	ctx    context.Context
	from   guard.Route
	mode   mode
	inputs [3]textinput.Model
	focus  int
	busy   bool
	err    string
	keys   common.KeyMap
}

// New creates the auth screen. from is the protected route that redirected
// here, if any.
func New(ctx context.Context, svc Authenticator, from guard.Route) Model {
	m := Model{svc: svc, ctx: ctx, from: from, keys: common.DefaultKeyMap()}

	m.inputs[fieldUsername] = newInput("username", 30)
	m.inputs[fieldEmail] = newInput("you@example.com", 254)
	pw := newInput("password", 128)
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	m.inputs[fieldPassword] = pw

	m.focus = fieldEmail
	m.inputs[m.focus].Focus()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) fields() []int {
	if m.mode == signUp {
		return []int{fieldUsername, fieldEmail, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword}
}

func (m *Model) moveFocus(delta int) {
	fields := m.fields()
	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	m.inputs[m.focus].Blur()
	m.focus = fields[pos]
	m.inputs[m.focus].Focus()
}

func (m Model) onLastField() bool {
	fields := m.fields()
	return m.focus == fields[len(fields)-1]
}

// Update handles messages for the auth screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case failedMsg:
		m.busy = false
		m.err = common.ErrorText(msg.err, "Something went wrong. Please try again.")
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.SwitchMode):
			if m.mode == signIn {
				m.mode = signUp
			} else {
				m.mode = signIn
			}
			m.err = ""
			m.inputs[m.focus].Blur()
			m.focus = m.fields()[0]
			m.inputs[m.focus].Focus()
			return m, textinput.Blink

		case msg.String() == "tab" || msg.String() == "down":
			m.moveFocus(1)
			return m, nil

		case msg.String() == "shift+tab" || msg.String() == "up":
			m.moveFocus(-1)
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			if !m.onLastField() {
				m.moveFocus(1)
				return m, nil
			}
			m.busy = true
			m.err = ""
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() tea.Cmd {
	svc, ctx, from := m.svc, m.ctx, m.from
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()
	if m.mode == signUp {
		req := app.RegisterRequest{
			Username: strings.TrimSpace(m.inputs[fieldUsername].Value()),
			Email:    email,
			Password: password,
		}
		return func() tea.Msg {
			next, err := svc.Register(ctx, req, from)
			if err != nil {
				return failedMsg{err: err}
			}
			return DoneMsg{Next: next}
		}
	}
	req := app.LoginRequest{Email: email, Password: password}
	return func() tea.Msg {
		next, err := svc.Login(ctx, req, from)
		if err != nil {
			return failedMsg{err: err}
		}
		return DoneMsg{Next: next}
	}
}
