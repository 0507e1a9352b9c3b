package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalconfess/app/guard"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

// View renders the active screen inside the chrome the guard chose.
func (a App) View() string {
	body := a.screenView()
	if a.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), body)
	}

	var b strings.Builder
	if a.chrome.TopNav {
		b.WriteString(a.renderTopNav())
	}
	b.WriteString(body)
	if a.status != "" {
		b.WriteString("\n" + common.StatusBarStyle.Render(a.status))
	}
	if a.showBottomNav() {
		b.WriteString(a.renderBottomNav())
	}
	return common.Clip(b.String(), a.width)
}

func (a App) screenView() string {
	switch a.route {
	case guard.Home:
		return a.feed.View()
	case guard.Create:
		return a.compose.View()
	case guard.Auth:
		return a.auth.View()
	case guard.Onboarding:
		return a.onboarding.View()
	case guard.Profile:
		return a.profile.View()
	case guard.Messages:
		return messagesView()
	default:
		return notFoundView()
	}
}

func messagesView() string {
	var b strings.Builder
	b.WriteString(common.SectionStyle.Render("Whispers"))
	b.WriteString("\n")
	b.WriteString(common.TaglineStyle.Render("Private messages are on their way. Nothing to read yet."))
	b.WriteString("\n")
	return b.String()
}

func notFoundView() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("404"))
	b.WriteString("\n")
	b.WriteString(common.ContentStyle.Render(" Nothing to confess here. This page doesn't exist."))
	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(" 1: go home • q: quit"))
	return b.String()
}
