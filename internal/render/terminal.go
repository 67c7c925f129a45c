package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	weekdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	dayOffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Italic(true)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	pageStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4CAF50")).
			Padding(0, 1)
)

// Terminal renders week pages as bordered boxes for a terminal preview
type Terminal struct {
	Width int
}

// NewTerminal creates a Terminal with the given inner width
func NewTerminal(width int) *Terminal {
	if width < 24 {
		width = 24
	}
	return &Terminal{Width: width}
}

// RenderPage renders a single page
func (t *Terminal) RenderPage(p Page) string {
	var lines []string

	switch p.Kind {
	case PageWeek:
		heading := headingStyle.Render(p.Heading)
		caption := captionStyle.Render(p.Caption)
		gap := t.Width - lipgloss.Width(heading) - lipgloss.Width(caption)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, heading+strings.Repeat(" ", gap)+caption)

		for _, row := range p.Rows {
			style := weekdayStyle
			if row.DayOff {
				style = dayOffStyle
			}
			name := style.Render(row.Weekday)
			day := style.Render(fmt.Sprintf("%2d", row.Day))
			gap := t.Width - lipgloss.Width(name) - lipgloss.Width(day)
			if gap < 1 {
				gap = 1
			}
			lines = append(lines, name+strings.Repeat(" ", gap)+day)
			for _, l := range row.Labels {
				lines = append(lines, "  "+labelStyle.Render(l))
			}
		}
		lines = append(lines, footerStyle.Render(p.Workdays))
	case PageNotes:
		lines = append(lines, headingStyle.Render(p.Heading))
	default:
		lines = append(lines, "")
	}

	return pageStyle.Width(t.Width + 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Render renders the title and every page of doc
func (t *Terminal) Render(doc *Document) string {
	blocks := []string{headingStyle.Render(doc.Title)}
	for _, p := range doc.Pages {
		blocks = append(blocks, t.RenderPage(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
