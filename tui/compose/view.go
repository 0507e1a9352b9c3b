package compose

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

// View renders the create screen based on the active mode.
func (m Model) View() string {
	if m.err != nil {
		return common.ErrorStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("New confession"))
		b.WriteString("\n\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(common.ErrorStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("ctrl+d: confess • esc: cancel • %d/%d chars",
				utf8.RuneCountInString(m.textarea.Value()), MaxLength),
		))
		return b.String()
	}

	return ""
}
