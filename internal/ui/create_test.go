package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2beens/blogdesk/internal/blog"
	"github.com/2beens/blogdesk/internal/blog/blogtest"
)

func TestDraft_AddCategory(t *testing.T) {
	d := &Draft{}

	d.CategoryBuffer = "  tech "
	assert.True(t, d.AddCategory())
	assert.Equal(t, []string{"TECH"}, d.Category)
	assert.Empty(t, d.CategoryBuffer)

	d.CategoryBuffer = "tech"
	assert.False(t, d.AddCategory())
	assert.Equal(t, []string{"TECH"}, d.Category)

	d.CategoryBuffer = "   "
	assert.False(t, d.AddCategory())

	d.CategoryBuffer = "Finance"
	assert.True(t, d.AddCategory())
	assert.Equal(t, []string{"TECH", "FINANCE"}, d.Category)
}

func TestDraft_RemoveCategory(t *testing.T) {
	d := &Draft{CreateInput: blog.CreateInput{Category: []string{"TECH", "GO", "FINANCE"}}}

	assert.False(t, d.RemoveCategory("go"))
	assert.True(t, d.RemoveCategory("GO"))
	assert.Equal(t, []string{"TECH", "FINANCE"}, d.Category)
	assert.False(t, d.RemoveCategory("GO"))
}

func TestDraft_Valid(t *testing.T) {
	d := &Draft{CreateInput: blog.CreateInput{Title: "t", Description: "d", Content: "c"}}
	assert.True(t, d.Valid())

	d.Title = "   "
	assert.False(t, d.Valid())
	d.Title = "t"
	d.Description = ""
	assert.False(t, d.Valid())
	d.Description = "d"
	d.Content = "\n\n"
	assert.False(t, d.Valid())
}

func TestDraft_InputIsACopy(t *testing.T) {
	d := &Draft{CreateInput: blog.CreateInput{Title: "t", Category: []string{"GO"}}}
	input := d.Input()
	input.Category[0] = "CHANGED"
	assert.Equal(t, []string{"GO"}, d.Category)
}

func fillForm(f *CreateFlow, title string, categories []string, description, content string) {
	f.Init()
	typeText(f, title)
	f.Update(keyPress("tab"))
	for _, c := range categories {
		typeText(f, c)
		f.Update(keyPress("enter"))
	}
	f.Update(keyPress("tab"))
	typeText(f, description)
	f.Update(keyPress("tab"))
	f.Update(keyPress("tab"))
	typeText(f, content)
}

func TestCreateFlow_FormFillsDraft(t *testing.T) {
	deps, _, _ := newTestDeps(t, NewMockBlogApi(gomock.NewController(t)))
	f := NewCreateFlow(deps)

	fillForm(f, "Go generics", []string{"tech", "go"}, "type params", "first\n\nsecond")
	d := f.Draft()
	assert.Equal(t, "Go generics", d.Title)
	assert.Equal(t, []string{"TECH", "GO"}, d.Category)
	assert.Equal(t, "type params", d.Description)
	assert.Equal(t, "first\n\nsecond", d.Content)
	assert.True(t, d.Valid())

	f.Update(keyPress("shift+tab"))
	f.Update(keyPress("shift+tab"))
	f.Update(keyPress("shift+tab"))

	// a duplicate is ignored and stays in the buffer
	typeText(f, "Tech")
	f.Update(keyPress("enter"))
	assert.Equal(t, []string{"TECH", "GO"}, d.Category)
	assert.Equal(t, "Tech", d.CategoryBuffer)

	// ctrl+x drops the typed tag, or the last one when nothing is typed
	f.Update(keyPress("ctrl+x"))
	assert.Equal(t, []string{"GO"}, d.Category)
	assert.Empty(t, d.CategoryBuffer)
	f.Update(keyPress("ctrl+x"))
	assert.Empty(t, d.Category)
}

func TestCreateFlow_InvalidSubmitIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)
	api.EXPECT().CreateBlog(gomock.Any(), gomock.Any()).Times(0)

	f := NewCreateFlow(deps)
	fillForm(f, "", nil, "valid", "valid")

	assert.Nil(t, f.Update(keyPress("ctrl+s")))
	assert.False(t, f.Submitting())
	assert.NoError(t, f.Err())
	assert.NotContains(t, f.View(), "Failed to create blog")
}

func TestCreateFlow_SubmitSuccess(t *testing.T) {
	server := blogtest.NewServer()
	defer server.Close()
	server.Add(blogtest.FakeBlogs(2)...)

	deps, _, _ := newTestDeps(t, blog.NewApi(server.URL, server.Client()))

	list := NewListView(deps)
	list.Update(list.Reload()())
	require.Len(t, list.Blogs(), 2)

	f := NewCreateFlow(deps)
	fillForm(f, "Go generics", []string{"tech", "go"}, "type params", "first\n\nsecond")

	cmd := f.Update(keyPress("ctrl+s"))
	require.NotNil(t, cmd)
	assert.True(t, f.Submitting())
	assert.Contains(t, f.View(), "Publishing…")
	// repeated activation while in flight sends nothing
	assert.Nil(t, f.Submit())
	assert.Nil(t, f.Update(keyPress("ctrl+s")))

	closeCmd := f.Update(cmd())
	require.NotNil(t, closeCmd)
	closed, ok := closeCmd().(CreateClosedMsg)
	require.True(t, ok)
	require.NotNil(t, closed.Created)
	assert.Equal(t, "Go generics", closed.Created.Title)
	assert.Equal(t, []string{"TECH", "GO"}, closed.Created.Category)
	assert.Equal(t, 1, server.Calls(blogtest.RouteCreate))
	assert.False(t, deps.Cache.Peek(listKey))

	list.Update(list.Reload()())
	assert.Len(t, list.Blogs(), 3)
	assert.Equal(t, 2, server.Calls(blogtest.RouteList))
}

func TestCreateFlow_IgnoresResultOfOtherFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)
	api.EXPECT().CreateBlog(gomock.Any(), gomock.Any()).
		Return(&blog.Blog{ID: "1", Title: "First"}, nil).Times(1)

	first := NewCreateFlow(deps)
	fillForm(first, "First", nil, "d", "c")
	submit := first.Submit()
	require.NotNil(t, submit)
	result := submit()

	second := NewCreateFlow(deps)
	fillForm(second, "Second", []string{"go"}, "d2", "c2")
	assert.Nil(t, second.Update(result))
	assert.False(t, second.Submitting())
	assert.NoError(t, second.Err())
	assert.Equal(t, "Second", second.Draft().Title)

	assert.NotNil(t, first.Update(result))
	assert.False(t, first.Submitting())
}

func TestCreateFlow_SubmitFailureKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)

	var sent []blog.CreateInput
	api.EXPECT().CreateBlog(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input blog.CreateInput) (*blog.Blog, error) {
		sent = append(sent, input)
		if len(sent) == 1 {
			return nil, errors.New("Failed to create blog")
		}
		return &blog.Blog{ID: "1", Title: input.Title}, nil
	}).Times(2)

	f := NewCreateFlow(deps)
	fillForm(f, "Retry me", []string{"go"}, "d", "c")

	assert.Nil(t, f.Update(f.Submit()()))
	assert.False(t, f.Submitting())
	assert.EqualError(t, f.Err(), "Failed to create blog")
	view := f.View()
	assert.Contains(t, view, "Failed to create blog. Please try again.")
	assert.Equal(t, "Retry me", f.Draft().Title)
	assert.Equal(t, []string{"GO"}, f.Draft().Category)

	closeCmd := f.Update(f.Submit()())
	require.NotNil(t, closeCmd)
	assert.NoError(t, f.Err())
	require.Len(t, sent, 2)
	assert.Equal(t, sent[0], sent[1])

	for _, input := range sent {
		for _, c := range input.Category {
			assert.Equal(t, strings.ToUpper(c), c)
		}
	}
}

func TestCreateFlow_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockBlogApi(ctrl)
	deps, _, _ := newTestDeps(t, api)

	f := NewCreateFlow(deps)
	fillForm(f, "t", nil, "d", "c")
	cmd := f.Update(keyPress("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, CreateClosedMsg{}, cmd())
}
