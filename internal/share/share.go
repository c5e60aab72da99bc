package share

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/blogdesk/internal/telemetry/metrics"
)

type Method string

const (
	MethodNative    Method = "native"
	MethodClipboard Method = "clipboard"
)

var ErrClipboardUnavailable = errors.New("clipboard unavailable")

type Request struct {
	Title string
	Text  string
	URL   string
}

// Sharer is a native share capability, e.g. a desktop share sheet.
type Sharer interface {
	Share(ctx context.Context, req Request) error
}

type Clipboard interface {
	WriteAll(text string) error
}

// Link builds the public URL of a blog, e.g. https://blogs.example.com/blogs/42/my-first-post
func Link(baseURL, id, title string) string {
	link := fmt.Sprintf("%s/blogs/%s", strings.TrimSuffix(baseURL, "/"), url.PathEscape(id))
	if s := slug.Make(title); s != "" {
		link += "/" + s
	}
	return link
}

func Text(title string) string {
	if title == "" {
		return "Check out this blog!"
	}
	return "Check out this blog: " + title
}

// Service shares through the native sharer when there is one, and falls back
// to copying the URL to the clipboard when there is none or it fails.
type Service struct {
	native    Sharer
	clipboard Clipboard
	metrics   *metrics.Manager
}

func NewService(native Sharer, clip Clipboard, metricsManager *metrics.Manager) *Service {
	return &Service{
		native:    native,
		clipboard: clip,
		metrics:   metricsManager,
	}
}

func (s *Service) NativeAvailable() bool {
	return s.native != nil
}

func (s *Service) Share(ctx context.Context, req Request) (Method, error) {
	if s.native != nil {
		err := s.native.Share(ctx, req)
		if err == nil {
			s.count(MethodNative)
			return MethodNative, nil
		}
		// cancelled or failed, copying the link is still useful
		log.Debugf("native share failed, falling back to clipboard: %s", err)
	}

	if err := s.Copy(req.URL); err != nil {
		return "", err
	}
	return MethodClipboard, nil
}

func (s *Service) Copy(text string) error {
	if s.clipboard == nil {
		return ErrClipboardUnavailable
	}
	if err := s.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	s.count(MethodClipboard)
	return nil
}

func (s *Service) count(method Method) {
	if s.metrics != nil {
		s.metrics.CounterShares.WithLabelValues(string(method)).Inc()
	}
}

// CommandSharer runs an external command with the share text and URL appended as the last
// two arguments, e.g. ["termux-share", "-a", "send"].
type CommandSharer struct {
	command []string
}

// NewCommandSharer returns nil when no command is configured, meaning no native share.
func NewCommandSharer(command []string) Sharer {
	if len(command) == 0 || command[0] == "" {
		return nil
	}
	if _, err := exec.LookPath(command[0]); err != nil {
		log.Warnf("share command [%s] not found, native share disabled: %s", command[0], err)
		return nil
	}
	return &CommandSharer{command: command}
}

func (c *CommandSharer) Share(ctx context.Context, req Request) error {
	args := slices.Concat(c.command[1:], []string{req.Text, req.URL})
	cmd := exec.CommandContext(ctx, c.command[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("run share command %s: %w: %s", c.command[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

type systemClipboard struct{}

// SystemClipboard returns nil when no clipboard utility is available on the system.
func SystemClipboard() Clipboard {
	if clipboard.Unsupported {
		log.Warnln("system clipboard not supported")
		return nil
	}
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
