package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/blogdesk/internal/blog"
)

type ListState int

const (
	ListLoading ListState = iota
	ListError
	ListEmpty
	ListLoaded
)

func (s ListState) String() string {
	switch s {
	case ListLoading:
		return "loading"
	case ListError:
		return "error"
	case ListEmpty:
		return "empty"
	case ListLoaded:
		return "loaded"
	}
	return "unknown"
}

// SelectBlogMsg is emitted when the user opens a blog from the list.
type SelectBlogMsg struct {
	ID string
}

type fetchStatus int

const (
	statusPending fetchStatus = iota
	statusError
	statusSuccess
)

// lines taken by one list entry: tags, title, two excerpt lines, date, gap
const listEntryHeight = 6

type ListView struct {
	deps *Deps
	keys keyMap

	// last settled fetch, the state is derived from these only
	status fetchStatus
	blogs  []*blog.Blog
	err    error
	seq    int

	cursor     int
	selectedID *string

	width  int
	height int
}

func NewListView(deps *Deps) *ListView {
	return &ListView{
		deps:   deps,
		keys:   defaultKeyMap(),
		status: statusPending,
		width:  48,
		height: 24,
	}
}

func (v *ListView) State() ListState {
	switch v.status {
	case statusPending:
		return ListLoading
	case statusError:
		return ListError
	}
	if len(v.blogs) == 0 {
		return ListEmpty
	}
	return ListLoaded
}

func (v *ListView) Blogs() []*blog.Blog {
	return v.blogs
}

func (v *ListView) Err() error {
	return v.err
}

func (v *ListView) Cursor() int {
	return v.cursor
}

// Reload runs the list query again. The cache decides whether it reaches the remote service.
func (v *ListView) Reload() tea.Cmd {
	v.seq++
	return fetchBlogs(v.deps, v.seq)
}

func (v *ListView) SetSelected(id *string) {
	v.selectedID = id
}

func (v *ListView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *ListView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case blogsFetchedMsg:
		if msg.seq != v.seq {
			return nil
		}
		if msg.err != nil {
			log.Errorf("failed to load blogs: %s", msg.err)
			v.status = statusError
			v.err = msg.err
			return nil
		}
		v.status = statusSuccess
		v.err = nil
		v.blogs = msg.blogs
		if v.cursor >= len(v.blogs) {
			v.cursor = max(0, len(v.blogs)-1)
		}
	case tea.KeyMsg:
		if v.State() != ListLoaded {
			return nil
		}
		switch {
		case key.Matches(msg, v.keys.Up):
			v.cursor = max(0, v.cursor-1)
		case key.Matches(msg, v.keys.Down):
			v.cursor = min(len(v.blogs)-1, v.cursor+1)
		case key.Matches(msg, v.keys.Home):
			v.cursor = 0
		case key.Matches(msg, v.keys.End):
			v.cursor = len(v.blogs) - 1
		case key.Matches(msg, v.keys.Open):
			id := v.blogs[v.cursor].ID
			return func() tea.Msg { return SelectBlogMsg{ID: id} }
		}
	}
	return nil
}

func (v *ListView) View() string {
	switch v.State() {
	case ListLoading:
		return v.skeleton()
	case ListError:
		return errorStyle.Render("Failed to load blogs") + "\n" + mutedStyle.Render(v.err.Error())
	case ListEmpty:
		return titleStyle.Render("No blogs found") + "\n" + mutedStyle.Render("Create your first blog to get started!")
	}

	textWidth := max(10, v.width-3)
	visible := max(1, v.height/listEntryHeight)
	first := 0
	if v.cursor >= visible {
		first = v.cursor - visible + 1
	}
	last := min(len(v.blogs), first+visible)

	now := v.deps.now()
	var sb strings.Builder
	for i := first; i < last; i++ {
		b := v.blogs[i]
		entry := strings.Join([]string{
			tags(b.Category),
			titleStyle.Render(excerpt(b.Title, textWidth, 1)),
			excerpt(plainText(b.Description), textWidth, 2),
			mutedStyle.Render(shortDate(b, now)),
		}, "\n")

		style := entryStyle
		switch {
		case v.selectedID != nil && *v.selectedID == b.ID:
			style = selectedEntryStyle
		case i == v.cursor:
			style = cursorEntryStyle
		}
		sb.WriteString(style.Render(entry))
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (v *ListView) skeleton() string {
	bar := func(w int) string {
		return skeletonStyle.Render(strings.Repeat("░", max(1, w)))
	}
	w := max(10, v.width-4)
	entry := lipgloss.JoinVertical(lipgloss.Left, bar(w/4), bar(w*3/4), bar(w), bar(w/3))
	return strings.Join([]string{entry, entry, entry}, "\n\n")
}
