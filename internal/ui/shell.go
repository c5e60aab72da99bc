package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

const appTitle = "blogdesk — your daily dose of insights"

// Shell is the root model. It owns the selected blog and whether the create form is open.
type Shell struct {
	deps *Deps
	keys keyMap
	help help.Model

	list   *ListView
	detail *DetailView
	create *CreateFlow

	selectedID *string
	showCreate bool

	width  int
	height int
}

var _ tea.Model = (*Shell)(nil)

func NewShell(deps *Deps) *Shell {
	return &Shell{
		deps:   deps,
		keys:   defaultKeyMap(),
		help:   help.New(),
		list:   NewListView(deps),
		detail: NewDetailView(deps),
	}
}

func (s *Shell) List() *ListView {
	return s.list
}

func (s *Shell) Detail() *DetailView {
	return s.detail
}

// Create returns the open create flow, nil when closed.
func (s *Shell) Create() *CreateFlow {
	return s.create
}

func (s *Shell) SelectedID() *string {
	return s.selectedID
}

func (s *Shell) ShowCreate() bool {
	return s.showCreate
}

func (s *Shell) Init() tea.Cmd {
	return s.list.Reload()
}

func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		return s, nil

	case SelectBlogMsg:
		id := msg.ID
		return s, s.selectBlog(&id)

	case CreateClosedMsg:
		s.showCreate = false
		s.create = nil
		if msg.Created == nil {
			return s, nil
		}
		return s, s.list.Reload()

	case blogCreatedMsg:
		if s.create != nil && msg.flow == s.create {
			return s, s.create.Update(msg)
		}
		// the submitting form was closed, a reopened one keeps its draft
		if msg.err == nil {
			s.deps.Cache.Invalidate(listKey)
			return s, s.list.Reload()
		}
		return s, nil

	case blogsFetchedMsg:
		return s, s.list.Update(msg)

	case blogFetchedMsg, sharedMsg, copiedExpiredMsg:
		return s, s.detail.Update(msg)

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if s.showCreate {
		return s, s.create.Update(msg)
	}
	return s, nil
}

func (s *Shell) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if s.showCreate {
		return s.create.Update(msg)
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		return tea.Quit
	case key.Matches(msg, s.keys.New):
		s.showCreate = true
		s.create = NewCreateFlow(s.deps)
		s.create.SetWidth(s.formWidth())
		return s.create.Init()
	case key.Matches(msg, s.keys.Back):
		if s.selectedID != nil {
			return s.selectBlog(nil)
		}
	case key.Matches(msg, s.keys.Reload):
		s.deps.Cache.Invalidate(listKey)
		return s.list.Reload()
	case key.Matches(msg, s.keys.Up, s.keys.Down, s.keys.Home, s.keys.End, s.keys.Open):
		return s.list.Update(msg)
	default:
		return s.detail.Update(msg)
	}
	return nil
}

func (s *Shell) selectBlog(id *string) tea.Cmd {
	if id != nil && s.selectedID != nil && *id == *s.selectedID {
		return nil
	}
	s.selectedID = id
	s.list.SetSelected(id)
	if id != nil {
		log.Debugf("blog [%s] selected", *id)
	}
	return s.detail.Select(id)
}

func (s *Shell) resize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width

	// header and footer take a line each, pane borders two more
	paneHeight := max(3, height-4)
	listWidth := max(24, width*2/5)
	detailWidth := max(24, width-listWidth)
	s.list.SetSize(listWidth-4, paneHeight)
	s.detail.SetSize(detailWidth-4, paneHeight)
	if s.create != nil {
		s.create.SetWidth(s.formWidth())
	}
}

func (s *Shell) formWidth() int {
	if s.width == 0 {
		return 72
	}
	return max(30, min(100, s.width-4))
}

func (s *Shell) View() string {
	header := headerStyle.Render(appTitle)
	if s.showCreate {
		return lipgloss.JoinVertical(lipgloss.Left, header, s.create.View())
	}

	listWidth := max(24, s.width*2/5)
	detailWidth := max(24, s.width-listWidth)
	paneHeight := max(3, s.height-4)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Width(listWidth-2).Height(paneHeight).Render(s.list.View()),
		paneStyle.Width(detailWidth-2).Height(paneHeight).Render(s.detail.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, panes, s.help.View(s.keys))
}
