package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2beens/blogdesk/internal/blog"
	"github.com/2beens/blogdesk/internal/cache"
	"github.com/2beens/blogdesk/internal/share"
	"github.com/2beens/blogdesk/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=ui

type BlogApi interface {
	ListBlogs(ctx context.Context) ([]*blog.Blog, error)
	GetBlog(ctx context.Context, id string) (*blog.Blog, error)
	CreateBlog(ctx context.Context, input blog.CreateInput) (*blog.Blog, error)
}

var _ BlogApi = (*blog.Api)(nil)

// Deps is shared by all views of the app.
type Deps struct {
	// Ctx lives as long as the program and is cancelled on shutdown,
	// requests started by commands derive from it
	Ctx          context.Context
	Api          BlogApi
	Cache        *cache.QueryCache
	StaleTime    time.Duration
	Share        *share.Service
	ShareBaseURL string
	Metrics      *metrics.Manager

	// Now and Tick default to time.Now and tea.Tick
	Now  func() time.Time
	Tick func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

func (d *Deps) context() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

func (d *Deps) staleTime() time.Duration {
	if d.StaleTime <= 0 {
		return cache.DefaultStaleTime
	}
	return d.StaleTime
}

func (d *Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d *Deps) tick(duration time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	if d.Tick == nil {
		return tea.Tick(duration, fn)
	}
	return d.Tick(duration, fn)
}
