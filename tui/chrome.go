package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalconfess/app/guard"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

// sidebarMinWidth is the narrowest terminal that gets the sidebar; below it
// the bottom bar takes over.
const sidebarMinWidth = 90

const sidebarWidth = 18

type navItem struct {
	route guard.Route
	key   string
	label string
}

var navItems = []navItem{
	{guard.Home, "1", "Home"},
	{guard.Messages, "2", "Whispers"},
	{guard.Create, "3", "Confess"},
	{guard.Profile, "4", "Profile"},
}

func (a App) wide() bool {
	return a.width == 0 || a.width >= sidebarMinWidth
}

func (a App) showSidebar() bool {
	return a.chrome.Sidebar && a.wide()
}

func (a App) showBottomNav() bool {
	return a.chrome.BottomNav && !a.wide()
}

// bodySize returns the area left for the active screen after chrome.
func (a App) bodySize() (int, int) {
	w, h := a.width, a.height
	if a.showSidebar() && w > 0 {
		w -= sidebarWidth + 3
	}
	if a.chrome.TopNav {
		h -= 2
	}
	if a.showBottomNav() {
		h -= 2
	}
	if a.status != "" {
		h -= 2
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func routeTitle(r guard.Route) string {
	for _, it := range navItems {
		if it.route == r {
			return it.label
		}
	}
	return ""
}

func (a App) renderTopNav() string {
	title := common.AppTitleStyle.Render("🤫 TerminalConfess")
	label := common.TimestampStyle.Render(routeTitle(a.route))
	return title + " " + label + "\n"
}

func (a App) renderSidebar() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.UnsetPadding().Render("TerminalConfess"))
	b.WriteString("\n\n")
	for _, it := range navItems {
		line := it.key + " " + it.label
		if it.route == a.route {
			b.WriteString(common.NavActiveStyle.Render("▌" + line))
		} else {
			b.WriteString(common.NavStyle.Render(" " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(common.NavStyle.Render(" q quit"))
	return common.SidebarStyle.Width(sidebarWidth).Render(b.String())
}

func (a App) renderBottomNav() string {
	parts := make([]string, 0, len(navItems))
	for _, it := range navItems {
		if it.route == a.route {
			parts = append(parts, common.NavActiveStyle.Render(it.key+" "+it.label))
		} else {
			parts = append(parts, common.NavStyle.Render(it.key+" "+it.label))
		}
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
