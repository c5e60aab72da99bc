package blog

import (
	"errors"
	"strings"
	"time"
)

// ParagraphSeparator splits blog content into paragraphs.
const ParagraphSeparator = "\n\n"

var (
	ErrBlogDateInvalid = errors.New("blog date invalid")
)

type Blog struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    []string `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	CoverImage  string   `json:"coverImage"`
	Content     string   `json:"content"`
	// counts are optional on the wire, older blogs don't have them at all
	Likes    *int `json:"likes,omitempty"`
	Dislikes *int `json:"dislikes,omitempty"`
}

// CreateInput is what the author fills in, id and date are added on submit.
type CreateInput struct {
	Title       string   `json:"title"`
	Category    []string `json:"category"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
	Content     string   `json:"content"`
}

// createRequest is the body of POST /blogs
type createRequest struct {
	CreateInput
	ID   string `json:"id"`
	Date string `json:"date"`
}

func (b *Blog) LikesCount() int {
	return nonNegative(b.Likes)
}

func (b *Blog) DislikesCount() int {
	return nonNegative(b.Dislikes)
}

func (b *Blog) Paragraphs() []string {
	if b.Content == "" {
		return nil
	}
	return strings.Split(b.Content, ParagraphSeparator)
}

func (b *Blog) PublishedAt() (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, b.Date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBlogDateInvalid
}

// NormalizeTag trims and uppercases a category tag.
func NormalizeTag(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}

func nonNegative(n *int) int {
	if n == nil || *n < 0 {
		return 0
	}
	return *n
}
