package onboarding

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

var stepTitles = [stepCount]string{
	"Tell us about yourself",
	"What are you into?",
	"Pick an avatar",
}

// View renders the current onboarding step.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Welcome to TerminalConfess"))
	b.WriteString(common.TimestampStyle.Render(fmt.Sprintf("  step %d of %d", m.step+1, stepCount)))
	b.WriteString("\n\n")
	b.WriteString(" " + common.SectionStyle.UnsetMarginTop().Render(stepTitles[m.step]) + "\n\n")

	switch m.step {
	case stepBio:
		b.WriteString(m.bio.View())
		b.WriteString("\n")
		b.WriteString(common.TimestampStyle.Render(fmt.Sprintf(" %d/%d", len([]rune(m.bio.Value())), bioLimit)))
	case stepInterests:
		for i, name := range Interests {
			box := "[ ]"
			if m.selected[i] {
				box = "[x]"
			}
			line := fmt.Sprintf("%s %s", box, name)
			if i == m.cursor {
				b.WriteString(" " + common.FocusedFieldStyle.Render("> "+line) + "\n")
			} else {
				b.WriteString("   " + common.ContentStyle.Render(line) + "\n")
			}
		}
	case stepAvatar:
		b.WriteString(" " + m.avatar.View() + "\n")
		b.WriteString(common.TimestampStyle.Render(" Leave empty to use your initial."))
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n " + common.ErrorStyle.Render(m.err))
	}

	hint := "enter: next • esc: back"
	switch {
	case m.busy:
		hint = "Saving your profile..."
	case m.step == stepInterests:
		hint = "j/k: move • space: toggle • enter: next • esc: back"
	case m.step == stepAvatar:
		hint = "enter: finish • esc: back"
	}
	b.WriteString(common.StatusBarStyle.Render(hint))
	return b.String()
}
