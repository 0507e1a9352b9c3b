package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalconfess/domain"
	"github.com/CrestNiraj12/terminalconfess/tui/common"
)

const (
	trendingNameFallback = "Anonymous"
	recentNameFallback   = "User"
	excerptLines         = 4
)

// View renders the feed screen.
func (m Model) View() string {
	if m.snap.Empty() {
		if m.loading {
			return fmt.Sprintf("\n %s Loading confessions...\n", m.spinner.View())
		}
		return "\n" + common.TaglineStyle.Render("No confessions yet. Press p to share the first one.") + "\n"
	}

	width := m.cardWidth()
	var (
		blocks   []string
		starts   []int // line offset of each card
		lines    int
		selected = m.cursor
		idx      int
	)
	add := func(s string) {
		blocks = append(blocks, s)
		lines += lipgloss.Height(s)
	}

	if m.snap.ShowTrending && len(m.snap.Trending) > 0 {
		add(common.SectionStyle.Render("🔥 Trending"))
		for _, c := range m.snap.Trending {
			starts = append(starts, lines)
			add(renderCard(c, idx == selected, trendingNameFallback, m.userID, width))
			idx++
		}
	}
	if len(m.snap.Recent) > 0 {
		add(common.SectionStyle.Render("Recent"))
		for _, c := range m.snap.Recent {
			starts = append(starts, lines)
			add(renderCard(c, idx == selected, recentNameFallback, m.userID, width))
			idx++
		}
	}

	body := strings.Join(blocks, "\n")
	body = scrollTo(body, starts, selected, m.height-1)

	status := m.statusLine()
	return body + "\n" + status
}

func (m Model) cardWidth() int {
	if m.width <= 0 {
		return 72
	}
	w := m.width - 4
	if w > 96 {
		w = 96
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) statusLine() string {
	switch {
	case m.loading:
		return common.StatusBarStyle.Render(m.spinner.View() + " refreshing")
	case m.err != nil:
		return common.StatusBarStyle.Render("Couldn't refresh. Showing the last loaded feed. r: retry")
	default:
		return common.StatusBarStyle.Render("j/k: move • l: like • r: refresh • p: confess")
	}
}

func renderCard(c domain.Confession, selected bool, nameFallback, userID string, width int) string {
	var head strings.Builder
	head.WriteString(common.AvatarStyle.Render(c.Author.Avatar("?")))
	head.WriteString(" ")
	head.WriteString(common.AuthorStyle.Render(c.Author.Name(nameFallback)))
	head.WriteString("  ")
	head.WriteString(common.TimestampStyle.Render(c.DisplayAge))
	if c.IsTrending {
		head.WriteString(common.TrendingBadgeStyle.Render("trending"))
	}
	if c.IsOwnedBy(userID) {
		head.WriteString(common.OwnBadgeStyle.Render("you"))
	}

	content := common.ContentStyle.Render(common.Excerpt(c.Content, width-4, excerptLines))
	card := head.String() + "\n" + content + "\n" + renderCounters(c)

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(width).Render(card)
}

func renderCounters(c domain.Confession) string {
	heart := common.CounterStyle.Render(fmt.Sprintf("♡ %d", c.LikeCount))
	if c.IsLiked {
		heart = common.LikedStyle.Render(fmt.Sprintf("♥ %d", c.LikeCount))
	}
	rest := common.CounterStyle.Render(fmt.Sprintf("  💬 %d  ↗ %d", c.CommentCount, c.ShareCount))
	return heart + rest
}

// scrollTo keeps the selected card in view when height is bounded.
func scrollTo(body string, starts []int, selected, height int) string {
	if height <= 0 || selected < 0 || selected >= len(starts) {
		return body
	}
	lines := strings.Split(body, "\n")
	if len(lines) <= height {
		return body
	}
	top := 0
	if starts[selected] >= height/2 {
		top = starts[selected] - height/3
	}
	if top+height > len(lines) {
		top = len(lines) - height
	}
	if top < 0 {
		top = 0
	}
	return strings.Join(lines[top:top+height], "\n")
}
