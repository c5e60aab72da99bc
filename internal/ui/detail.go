package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/blogdesk/internal/blog"
	"github.com/2beens/blogdesk/internal/share"
)

// CopiedWindow is how long the "Copied!" acknowledgment stays visible.
const CopiedWindow = 2 * time.Second

type DetailState int

const (
	DetailEmpty DetailState = iota
	DetailLoading
	DetailError
	DetailReady
)

func (s DetailState) String() string {
	switch s {
	case DetailEmpty:
		return "empty"
	case DetailLoading:
		return "loading"
	case DetailError:
		return "error"
	case DetailReady:
		return "ready"
	}
	return "unknown"
}

type sharedMsg struct {
	seq    int
	method share.Method
	err    error
}

type copiedExpiredMsg struct {
	copySeq int
}

type DetailView struct {
	deps *Deps
	keys keyMap

	selectedID *string
	// bumped on every selection, fetch results carrying an older one are dropped
	seq   int
	state DetailState
	blog  *blog.Blog
	err   error

	reactions Reactions

	copied  bool
	copySeq int
	notice  string

	viewport viewport.Model
	width    int
	height   int
}

func NewDetailView(deps *Deps) *DetailView {
	return &DetailView{
		deps:     deps,
		keys:     defaultKeyMap(),
		state:    DetailEmpty,
		viewport: viewport.New(60, 20),
		width:    60,
		height:   20,
	}
}

// Select shows the blog with the given id, nil clears the selection without fetching.
func (v *DetailView) Select(id *string) tea.Cmd {
	v.seq++
	v.reactions.Reset()
	v.copied = false
	v.notice = ""
	v.blog = nil
	v.err = nil
	v.viewport.GotoTop()

	if id == nil {
		v.selectedID = nil
		v.state = DetailEmpty
		return nil
	}

	selected := *id
	v.selectedID = &selected
	v.state = DetailLoading
	return fetchBlog(v.deps, selected, v.seq)
}

func (v *DetailView) State() DetailState {
	return v.state
}

func (v *DetailView) Blog() *blog.Blog {
	return v.blog
}

func (v *DetailView) Err() error {
	return v.err
}

func (v *DetailView) Reactions() *Reactions {
	return &v.reactions
}

func (v *DetailView) Copied() bool {
	return v.copied
}

func (v *DetailView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(1, height)
	v.refreshContent()
}

func (v *DetailView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case blogFetchedMsg:
		if msg.seq != v.seq || v.selectedID == nil || *v.selectedID != msg.id {
			log.Tracef("dropping stale fetch result for blog [%s]", msg.id)
			return nil
		}
		if msg.err != nil {
			log.Errorf("failed to load blog [%s]: %s", msg.id, msg.err)
			v.state = DetailError
			v.err = msg.err
			return nil
		}
		v.state = DetailReady
		v.blog = msg.blog
		v.reactions.Seed(msg.blog.LikesCount(), msg.blog.DislikesCount())
		v.refreshContent()
	case sharedMsg:
		return v.onShared(msg)
	case copiedExpiredMsg:
		if msg.copySeq == v.copySeq {
			v.copied = false
		}
	case tea.KeyMsg:
		if v.state != DetailReady {
			return nil
		}
		switch {
		case key.Matches(msg, v.keys.Like):
			v.reactions.Like()
			v.countReaction("like")
		case key.Matches(msg, v.keys.Dislike):
			v.reactions.Dislike()
			v.countReaction("dislike")
		case key.Matches(msg, v.keys.Share):
			return v.Share()
		case key.Matches(msg, v.keys.Copy):
			return v.CopyLink()
		case key.Matches(msg, v.keys.PageDn):
			v.viewport.SetYOffset(v.viewport.YOffset + v.viewport.Height)
		case key.Matches(msg, v.keys.PageUp):
			v.viewport.SetYOffset(v.viewport.YOffset - v.viewport.Height)
		}
	}
	return nil
}

func (v *DetailView) link() string {
	return share.Link(v.deps.ShareBaseURL, v.blog.ID, v.blog.Title)
}

// Share hands the blog link to the native share command, or copies it when that is not possible.
func (v *DetailView) Share() tea.Cmd {
	if v.state != DetailReady || v.deps.Share == nil {
		return nil
	}
	seq := v.seq
	req := share.Request{
		Title: v.blog.Title,
		Text:  share.Text(v.blog.Title),
		URL:   v.link(),
	}
	sharer := v.deps.Share
	ctx := v.deps.context()
	return func() tea.Msg {
		method, err := sharer.Share(ctx, req)
		return sharedMsg{seq: seq, method: method, err: err}
	}
}

func (v *DetailView) CopyLink() tea.Cmd {
	if v.state != DetailReady || v.deps.Share == nil {
		return nil
	}
	seq := v.seq
	link := v.link()
	sharer := v.deps.Share
	return func() tea.Msg {
		return sharedMsg{seq: seq, method: share.MethodClipboard, err: sharer.Copy(link)}
	}
}

func (v *DetailView) onShared(msg sharedMsg) tea.Cmd {
	if msg.seq != v.seq {
		return nil
	}
	if msg.err != nil {
		log.Errorf("failed to share blog: %s", msg.err)
		v.notice = fmt.Sprintf("Could not share: %s", msg.err)
		return nil
	}
	v.notice = ""
	if msg.method != share.MethodClipboard {
		return nil
	}

	v.copied = true
	v.copySeq++
	copySeq := v.copySeq
	return v.deps.tick(CopiedWindow, func(time.Time) tea.Msg {
		return copiedExpiredMsg{copySeq: copySeq}
	})
}

func (v *DetailView) countReaction(reaction string) {
	if v.deps.Metrics != nil {
		v.deps.Metrics.CounterReactions.WithLabelValues(reaction).Inc()
	}
}

func (v *DetailView) refreshContent() {
	if v.blog == nil {
		return
	}

	width := max(20, v.width)
	var sb strings.Builder
	if v.blog.CoverImage != "" {
		sb.WriteString(mutedStyle.Render("cover: " + v.blog.CoverImage))
		sb.WriteString("\n\n")
	}
	for _, p := range v.blog.Paragraphs() {
		sb.WriteString(excerpt(plainText(p), width, 1<<16))
		sb.WriteString("\n\n")
	}
	v.viewport.SetContent(strings.TrimRight(sb.String(), "\n"))
}

func (v *DetailView) View() string {
	switch v.state {
	case DetailEmpty:
		return mutedStyle.Render("Select a blog to read")
	case DetailLoading:
		return mutedStyle.Render("Loading…")
	case DetailError:
		return errorStyle.Render("Failed to load blog") + "\n" +
			v.err.Error() + "\n\n" +
			mutedStyle.Render("esc: go back")
	}

	width := max(20, v.width)
	header := []string{
		mutedStyle.Render("← esc: back"),
		"",
		tags(v.blog.Category),
		bigTitleStyle.Render(excerpt(v.blog.Title, width, 3)),
		mutedStyle.Render(longDate(v.blog)),
		"",
		v.reactionBar(),
	}
	if desc := plainText(v.blog.Description); desc != "" {
		header = append(header, "", excerpt(desc, width, 1<<16))
	}
	header = append(header, "")

	head := strings.Join(header, "\n")
	v.viewport.Height = max(1, v.height-strings.Count(head, "\n")-1)
	return head + "\n" + v.viewport.View()
}

func (v *DetailView) reactionBar() string {
	like := reactionStyle
	dislike := reactionStyle
	switch v.reactions.Reaction() {
	case ReactionLiked:
		like = activeReactionStyle
	case ReactionDisliked:
		dislike = activeReactionStyle
	}

	bar := like.Render(fmt.Sprintf("▲ %d", v.reactions.Likes())) +
		dislike.Render(fmt.Sprintf("▼ %d", v.reactions.Dislikes())) +
		reactionStyle.Render("share")
	switch {
	case v.copied:
		bar += " " + successStyle.Render("Copied!")
	case v.notice != "":
		bar += " " + errorStyle.Render(v.notice)
	}
	return bar
}
