package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2beens/blogdesk/internal/blog"
	"github.com/2beens/blogdesk/internal/blog/blogtest"
)

func TestListView_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)

	api.EXPECT().ListBlogs(gomock.Any()).Return([]*blog.Blog{}, nil).Times(1)

	v := NewListView(deps)
	assert.Equal(t, ListLoading, v.State())
	assert.NotContains(t, v.View(), "No blogs found")

	v.Update(v.Reload()())
	assert.Equal(t, ListEmpty, v.State())
	assert.Contains(t, v.View(), "No blogs found")
	assert.Contains(t, v.View(), "Create your first blog to get started!")
	assert.NotContains(t, v.View(), "Failed to load blogs")
}

func TestListView_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)

	api.EXPECT().ListBlogs(gomock.Any()).Return(nil, errors.New("Failed to fetch blogs")).Times(1)

	v := NewListView(deps)
	v.Update(v.Reload()())
	assert.Equal(t, ListError, v.State())
	assert.EqualError(t, v.Err(), "Failed to fetch blogs")
	assert.Contains(t, v.View(), "Failed to load blogs")
	assert.Contains(t, v.View(), "Failed to fetch blogs")
}

func TestListView_LoadedAndCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)

	blogs := blogtest.FakeBlogs(3)
	blogs[0].Title = "Generics in practice"
	blogs[0].Date = "2026-10-14T08:00:00.000Z"
	blogs[0].Description = "<b>Type</b> parameters &amp; you"
	api.EXPECT().ListBlogs(gomock.Any()).Return(blogs, nil).Times(1)

	v := NewListView(deps)
	v.SetSize(80, 40)
	v.Update(v.Reload()())
	// second load within the freshness window is served from the cache
	v.Update(v.Reload()())

	require.Equal(t, ListLoaded, v.State())
	assert.Len(t, v.Blogs(), 3)

	view := v.View()
	assert.Contains(t, view, "Generics in practice")
	assert.Contains(t, view, "Type parameters & you")
	assert.NotContains(t, view, "<b>")
	assert.Contains(t, view, "Oct 14, 2026")
	assert.Contains(t, view, "3 days ago")
	assert.Contains(t, view, "#TECH")
}

func TestListView_StaleResultDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)

	v := NewListView(deps)
	v.Reload()
	v.Reload()

	v.Update(blogsFetchedMsg{seq: 1, blogs: blogtest.FakeBlogs(2)})
	assert.Equal(t, ListLoading, v.State())
	v.Update(blogsFetchedMsg{seq: 2, blogs: []*blog.Blog{}})
	assert.Equal(t, ListEmpty, v.State())
}

func TestListView_CursorAndSelect(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)

	v := NewListView(deps)
	// keys do nothing before there is something to move over
	assert.Nil(t, v.Update(keyPress("enter")))

	v.Update(blogsFetchedMsg{seq: 0, blogs: blogtest.FakeBlogs(3)})
	require.Equal(t, ListLoaded, v.State())

	v.Update(keyPress("up"))
	assert.Equal(t, 0, v.Cursor())
	v.Update(keyPress("down"))
	v.Update(keyPress("j"))
	v.Update(keyPress("down"))
	assert.Equal(t, 2, v.Cursor())
	v.Update(keyPress("home"))
	assert.Equal(t, 0, v.Cursor())
	v.Update(keyPress("end"))
	assert.Equal(t, 2, v.Cursor())

	cmd := v.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SelectBlogMsg{ID: "3"}, cmd())
}

func TestListState_String(t *testing.T) {
	assert.Equal(t, "loading", ListLoading.String())
	assert.Equal(t, "error", ListError.String())
	assert.Equal(t, "empty", ListEmpty.String())
	assert.Equal(t, "loaded", ListLoaded.String())
}

func TestListView_FetchUsesProgramContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	deps.Ctx = ctx
	api.EXPECT().ListBlogs(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]*blog.Blog, error) {
		return nil, ctx.Err()
	}).Times(1)

	cancel()
	v := NewListView(deps)
	v.Update(v.Reload()())
	assert.Equal(t, ListError, v.State())
	assert.ErrorIs(t, v.Err(), context.Canceled)
	assert.False(t, deps.Cache.Peek(listKey))
}
