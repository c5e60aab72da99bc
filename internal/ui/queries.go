package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2beens/blogdesk/internal/blog"
	"github.com/2beens/blogdesk/internal/cache"
)

var listKey = cache.Key{"blogs"}

func blogKey(id string) cache.Key {
	return cache.Key{"blog", id}
}

type blogsFetchedMsg struct {
	seq   int
	blogs []*blog.Blog
	err   error
}

type blogFetchedMsg struct {
	id   string
	seq  int
	blog *blog.Blog
	err  error
}

// blogCreatedMsg carries the flow that submitted, the form may have been reopened since.
type blogCreatedMsg struct {
	flow *CreateFlow
	blog *blog.Blog
	err  error
}

func fetchBlogs(d *Deps, seq int) tea.Cmd {
	return func() tea.Msg {
		blogs, err := cache.Fetch(d.context(), d.Cache, listKey, d.staleTime(), d.Api.ListBlogs)
		return blogsFetchedMsg{seq: seq, blogs: blogs, err: err}
	}
}

func fetchBlog(d *Deps, id string, seq int) tea.Cmd {
	return func() tea.Msg {
		b, err := cache.Fetch(d.context(), d.Cache, blogKey(id), d.staleTime(), func(ctx context.Context) (*blog.Blog, error) {
			return d.Api.GetBlog(ctx, id)
		})
		return blogFetchedMsg{id: id, seq: seq, blog: b, err: err}
	}
}

func createBlog(d *Deps, flow *CreateFlow, input blog.CreateInput) tea.Cmd {
	return func() tea.Msg {
		created, err := d.Api.CreateBlog(d.context(), input)
		return blogCreatedMsg{flow: flow, blog: created, err: err}
	}
}
