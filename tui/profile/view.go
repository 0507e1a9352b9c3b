package profile

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	feedapp "github.com/CrestNiraj12/terminalconfess/app/feed"
	"github.com/CrestNiraj12/terminalconfess/domain"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

var statBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#45475A")).
	Padding(0, 1).
	Align(lipgloss.Center).
	Width(14)

// View renders the profile screen.
func (m Model) View() string {
	if m.loading && m.profile.User.ID == "" {
		return fmt.Sprintf("\n %s Loading profile...\n", m.spinner.View())
	}

	u := m.profile.User
	author := &domain.Author{ID: u.ID, Username: u.Username, DisplayName: u.DisplayName, ProfilePicture: u.ProfilePicture}

	var b strings.Builder
	b.WriteString(common.AvatarStyle.Render(author.Avatar("?")))
	b.WriteString(" ")
	b.WriteString(common.AuthorStyle.Render(author.Name("User")))
	if u.Username != "" {
		b.WriteString(common.TimestampStyle.Render("  @" + u.Username))
	}
	b.WriteString("\n")
	if u.Bio != "" {
		b.WriteString(common.ContentStyle.Render(u.Bio) + "\n")
	}
	if len(u.Interests) > 0 {
		b.WriteString(common.TimestampStyle.Render(strings.Join(u.Interests, "  ")) + "\n")
	}

	s := m.profile.Stats
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		statBox.Render(fmt.Sprintf("%d\nconfessions", s.Confessions)),
		statBox.Render(fmt.Sprintf("%d\nlikes", s.Likes)),
		statBox.Render(fmt.Sprintf("%d\ncomments", s.Comments)),
		statBox.Render(fmt.Sprintf("%d\nfollowers", s.Followers)),
	))
	b.WriteString("\n")

	b.WriteString(common.SectionStyle.Render("Your confessions"))
	b.WriteString("\n")
	if len(m.profile.Confessions) == 0 {
		b.WriteString(common.TaglineStyle.Render("You haven't confessed anything yet.") + "\n")
	}
	width := m.width - 4
	if width <= 0 || width > 80 {
		width = 72
	}
	now := m.now()
	for _, e := range m.profile.Confessions {
		line := common.TimestampStyle.Render(feedapp.AgeBucket(e.CreatedAt, now)) + "  " +
			common.CounterStyle.Render(fmt.Sprintf("♥ %d  💬 %d", e.Likes, e.Comments))
		content := common.ContentStyle.Render(common.Excerpt(e.Content, width-4, 2))
		b.WriteString(common.UnselectedStyle.Width(width).Render(content+"\n"+line) + "\n")
	}

	if m.err != "" {
		b.WriteString(common.ErrorStyle.Render(m.err) + "\n")
	}
	b.WriteString(common.StatusBarStyle.Render("r: reload • X: sign out • 1: home"))
	return b.String()
}
