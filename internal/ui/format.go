package ui

import (
	"html"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"

	"github.com/2beens/blogdesk/internal/blog"
)

const (
	shortDateLayout = "Jan 2, 2006"
	longDateLayout  = "Monday, January 2, 2006"
)

// descriptions and content are user provided and may carry markup
var textPolicy = bluemonday.StrictPolicy()

func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// shortDate renders e.g. "Jan 2, 2006 · 3 days ago", or the raw date if it can't be parsed.
func shortDate(b *blog.Blog, now time.Time) string {
	published, err := b.PublishedAt()
	if err != nil {
		return b.Date
	}
	return published.Local().Format(shortDateLayout) + " · " + humanize.RelTime(published, now, "ago", "from now")
}

func longDate(b *blog.Blog) string {
	published, err := b.PublishedAt()
	if err != nil {
		return b.Date
	}
	return published.Local().Format(longDateLayout)
}

func tags(categories []string) string {
	rendered := make([]string, 0, len(categories))
	for _, c := range categories {
		rendered = append(rendered, tagStyle.Render("#"+c))
	}
	return strings.Join(rendered, " ")
}

// excerpt wraps s to width and keeps at most maxLines lines.
func excerpt(s string, width, maxLines int) string {
	if width <= 0 {
		width = 40
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}
	lines = lines[:maxLines]
	lines[maxLines-1] += "…"
	return strings.Join(lines, "\n")
}
