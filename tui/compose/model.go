package compose

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalconfess/infra/editor"
)

// MaxLength is the longest confession the backend accepts.
const MaxLength = 1000

// --- Mode ---

type mode int

const (
	editorMode mode = iota
	inlineMode
)

// --- Messages ---

// DoneMsg is sent when composing is complete (submit or cancel).
type DoneMsg struct {
	Content string // Empty if cancelled
	Err     error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the create screen.
type Model struct {
	mode     mode
	editor   *editor.EnvEditor
	status   string
	err      error
	textarea textarea.Model // Only used in inline mode
}

// NewEditor creates a compose model that opens $EDITOR via tea.ExecProcess.
func NewEditor(ed *editor.EnvEditor) Model {
	return Model{
		mode:   editorMode,
		editor: ed,
		status: "Opening editor...",
	}
}

// NewInline creates a compose model with an inline textarea.
func NewInline() Model {
	ta := textarea.New()
	ta.Placeholder = "What have you never told anyone?"
	ta.CharLimit = MaxLength
	ta.SetWidth(72)
	ta.SetHeight(8)
	ta.Focus()

	return Model{
		mode:     inlineMode,
		textarea: ta,
	}
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor()
	case inlineMode:
		return textarea.Blink
	}
	return nil
}

// SetStatus shows a transient line under the input, e.g. a publish error.
func (m Model) SetStatus(s string) Model {
	m.status = s
	return m
}

// SetWidth resizes the inline textarea.
func (m Model) SetWidth(w int) Model {
	if m.mode == inlineMode && w > 20 {
		if w > 96 {
			w = 96
		}
		m.textarea.SetWidth(w)
	}
	return m
}

// launchEditor suspends Bubble Tea's raw mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd("")
	if err != nil {
		return done(DoneMsg{Err: fmt.Errorf("preparing editor: %w", err)})
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the create screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case editorFinishedMsg:
		if msg.err != nil {
			return m, done(DoneMsg{Err: fmt.Errorf("editor: %w", msg.err)})
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, done(DoneMsg{Err: err})
		}
		return m, done(DoneMsg{Content: content})

	case tea.KeyMsg:
		if m.mode != inlineMode {
			break
		}
		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{})
		case "ctrl+d":
			if m.textarea.Value() == "" {
				m.status = "Write something first."
				return m, nil
			}
			return m, done(DoneMsg{Content: m.textarea.Value()})
		}
	}

	if m.mode == inlineMode {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
