package auth

import (
	"strings"

	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

var labels = [3]string{"Username", "Email", "Password"}

// View renders the auth form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("🤫 TerminalConfess"))
	b.WriteString("\n")
	if m.mode == signUp {
		b.WriteString(common.TaglineStyle.Render("Create an account. Nobody will know it's you."))
	} else {
		b.WriteString(common.TaglineStyle.Render("Welcome back. Sign in to keep confessing."))
	}
	b.WriteString("\n\n")

	for _, f := range m.fields() {
		label := common.FieldStyle.Render(labels[f])
		if f == m.focus {
			label = common.FocusedFieldStyle.Render(labels[f])
		}
		b.WriteString(" " + label + "\n")
		b.WriteString(" " + m.inputs[f].View() + "\n\n")
	}

	if m.err != "" {
		b.WriteString(" " + common.ErrorStyle.Render(m.err) + "\n")
	}

	hint := "enter: sign in • tab: next field • ctrl+t: create an account • ctrl+c: quit"
	if m.mode == signUp {
		hint = "enter: sign up • tab: next field • ctrl+t: I already have an account • ctrl+c: quit"
	}
	if m.busy {
		hint = "Signing in..."
	}
	b.WriteString(common.StatusBarStyle.Render(hint))
	return b.String()
}
