package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/blogdesk/internal/blog"
)

// Draft is a blog being written, plus the category text not yet added.
type Draft struct {
	blog.CreateInput
	CategoryBuffer string
}

// AddCategory normalizes the buffer and appends it unless it is empty or already there.
func (d *Draft) AddCategory() bool {
	tag := blog.NormalizeTag(d.CategoryBuffer)
	if tag == "" || slices.Contains(d.Category, tag) {
		return false
	}
	d.Category = append(d.Category, tag)
	d.CategoryBuffer = ""
	return true
}

func (d *Draft) RemoveCategory(tag string) bool {
	i := slices.Index(d.Category, tag)
	if i < 0 {
		return false
	}
	d.Category = slices.Delete(d.Category, i, i+1)
	return true
}

func (d *Draft) Valid() bool {
	return strings.TrimSpace(d.Title) != "" &&
		strings.TrimSpace(d.Description) != "" &&
		strings.TrimSpace(d.Content) != ""
}

func (d *Draft) Input() blog.CreateInput {
	input := d.CreateInput
	input.Category = slices.Clone(d.Category)
	return input
}

// CreateClosedMsg is emitted when the create flow is done. Created is nil on cancel.
type CreateClosedMsg struct {
	Created *blog.Blog
}

type formField int

const (
	fieldTitle formField = iota
	fieldCategory
	fieldDescription
	fieldCoverImage
	fieldContent
	fieldsCount
)

type CreateFlow struct {
	deps *Deps
	keys formKeyMap
	help help.Model

	draft Draft

	title       textinput.Model
	category    textinput.Model
	description textarea.Model
	coverImage  textinput.Model
	content     textarea.Model
	focus       formField

	submitting bool
	err        error

	width int
}

func NewCreateFlow(deps *Deps) *CreateFlow {
	f := &CreateFlow{
		deps:  deps,
		keys:  defaultFormKeyMap(),
		help:  help.New(),
		width: 72,
	}

	f.title = textinput.New()
	f.title.Placeholder = "Enter blog title"
	f.title.CharLimit = 200

	f.category = textinput.New()
	f.category.Placeholder = "Add a category and press enter"
	f.category.CharLimit = 40

	f.description = textarea.New()
	f.description.Placeholder = "Brief description of your blog"
	f.description.ShowLineNumbers = false
	f.description.SetHeight(2)

	f.coverImage = textinput.New()
	f.coverImage.Placeholder = "https://example.com/image.jpg"

	f.content = textarea.New()
	f.content.Placeholder = "Write your blog content here. Separate paragraphs with a blank line."
	f.content.ShowLineNumbers = false
	f.content.SetHeight(8)
	f.content.CharLimit = 0

	f.SetWidth(f.width)
	return f
}

func (f *CreateFlow) Init() tea.Cmd {
	return f.setFocus(fieldTitle)
}

func (f *CreateFlow) Draft() *Draft {
	return &f.draft
}

func (f *CreateFlow) Submitting() bool {
	return f.submitting
}

func (f *CreateFlow) Err() error {
	return f.err
}

func (f *CreateFlow) SetWidth(width int) {
	f.width = width
	inner := max(20, width-8)
	f.title.Width = inner
	f.category.Width = inner
	f.coverImage.Width = inner
	f.description.SetWidth(inner)
	f.content.SetWidth(inner)
	f.help.Width = inner
}

// Submit sends the draft, unless it is incomplete or a submit is already in flight.
func (f *CreateFlow) Submit() tea.Cmd {
	f.syncDraft()
	if f.submitting || !f.draft.Valid() {
		return nil
	}
	f.submitting = true
	f.err = nil
	return createBlog(f.deps, f, f.draft.Input())
}

func (f *CreateFlow) Cancel() tea.Cmd {
	return func() tea.Msg { return CreateClosedMsg{} }
}

func (f *CreateFlow) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case blogCreatedMsg:
		if msg.flow != f {
			return nil
		}
		f.submitting = false
		if msg.err != nil {
			log.Errorf("failed to create blog: %s", msg.err)
			f.err = msg.err
			return nil
		}
		log.Infof("blog [%s] created", msg.blog.ID)
		f.deps.Cache.Invalidate(listKey)
		created := msg.blog
		return func() tea.Msg { return CreateClosedMsg{Created: created} }
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Cancel):
			return f.Cancel()
		case key.Matches(msg, f.keys.Submit):
			return f.Submit()
		case key.Matches(msg, f.keys.Next):
			return f.setFocus((f.focus + 1) % fieldsCount)
		case key.Matches(msg, f.keys.Prev):
			return f.setFocus((f.focus + fieldsCount - 1) % fieldsCount)
		}

		if f.focus == fieldCategory {
			switch {
			case key.Matches(msg, f.keys.AddTag):
				f.syncDraft()
				f.draft.AddCategory()
				f.category.SetValue(f.draft.CategoryBuffer)
				return nil
			case key.Matches(msg, f.keys.RemoveTag):
				f.syncDraft()
				f.removeTag()
				return nil
			}
		}
	}

	cmd := f.updateFocused(msg)
	f.syncDraft()
	return cmd
}

// removeTag drops the tag typed in the buffer, or the last one when the buffer is empty.
func (f *CreateFlow) removeTag() {
	if tag := blog.NormalizeTag(f.draft.CategoryBuffer); tag != "" {
		if f.draft.RemoveCategory(tag) {
			f.draft.CategoryBuffer = ""
			f.category.SetValue("")
		}
		return
	}
	if n := len(f.draft.Category); n > 0 {
		f.draft.RemoveCategory(f.draft.Category[n-1])
	}
}

func (f *CreateFlow) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldCategory:
		f.category, cmd = f.category.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldCoverImage:
		f.coverImage, cmd = f.coverImage.Update(msg)
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

func (f *CreateFlow) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.title.Blur()
	f.category.Blur()
	f.description.Blur()
	f.coverImage.Blur()
	f.content.Blur()

	switch field {
	case fieldTitle:
		return f.title.Focus()
	case fieldCategory:
		return f.category.Focus()
	case fieldDescription:
		return f.description.Focus()
	case fieldCoverImage:
		return f.coverImage.Focus()
	case fieldContent:
		return f.content.Focus()
	}
	return nil
}

func (f *CreateFlow) syncDraft() {
	f.draft.Title = f.title.Value()
	f.draft.CategoryBuffer = f.category.Value()
	f.draft.Description = f.description.Value()
	f.draft.CoverImage = strings.TrimSpace(f.coverImage.Value())
	f.draft.Content = f.content.Value()
}

func (f *CreateFlow) label(field formField, text string, required bool) string {
	style := labelStyle
	if f.focus == field {
		style = focusedLabelStyle
	}
	l := style.Render(text)
	if required {
		l += requiredStyle.Render(" *")
	}
	return l
}

func (f *CreateFlow) View() string {
	rows := []string{
		bigTitleStyle.Render("Create New Blog"),
	}
	if f.err != nil {
		rows = append(rows, bannerStyle.Render("Failed to create blog. Please try again.\n"+f.err.Error()), "")
	}

	categories := mutedStyle.Render("no categories yet")
	if len(f.draft.Category) > 0 {
		categories = tags(f.draft.Category)
	}

	rows = append(rows,
		f.label(fieldTitle, "Title", true), f.title.View(), "",
		f.label(fieldCategory, "Categories", false), categories, f.category.View(), "",
		f.label(fieldDescription, "Description", true), f.description.View(), "",
		f.label(fieldCoverImage, "Cover Image URL", false), f.coverImage.View(), "",
		f.label(fieldContent, "Content", true), f.content.View(), "",
	)

	if f.submitting {
		rows = append(rows, mutedStyle.Render("Publishing…"))
	} else {
		rows = append(rows, f.help.View(f.keys))
	}

	return modalStyle.Width(f.width).Render(strings.Join(rows, "\n"))
}
