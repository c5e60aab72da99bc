package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("whatever"))
}

func TestLogFileName(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "blogdesk.log", LogFileName(""))
	assert.Equal(t, filepath.Join(dir, "blogdesk.log"), LogFileName(dir))
	assert.Equal(t, filepath.Join(dir, "client.log"), LogFileName(filepath.Join(dir, "client")))
	assert.Equal(t, filepath.Join(dir, "client.log"), LogFileName(filepath.Join(dir, "client.log")))
}

func TestSetup_WritesToFile(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(logrus.InfoLevel)

	logFile := filepath.Join(t.TempDir(), "test.log")
	Setup(LoggerSetupParams{
		LogsPath: logFile,
		LogLevel: "debug",
	})
	logrus.Debugf("hello from %s", "test")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello from test")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

type capturingTransport struct {
	events []*sentry.Event
}

func (c *capturingTransport) Flush(_ time.Duration) bool { return true }

func (c *capturingTransport) FlushWithContext(_ context.Context) bool { return true }

func (c *capturingTransport) Configure(_ sentry.ClientOptions) {}

func (c *capturingTransport) SendEvent(event *sentry.Event) {
	c.events = append(c.events, event)
}

func (c *capturingTransport) Close() {}

func TestSentryHook_Fire(t *testing.T) {
	transport := &capturingTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{Transport: transport})
	require.NoError(t, err)

	hook := &SentryHook{
		levels: []logrus.Level{logrus.ErrorLevel},
		hub:    sentry.NewHub(client, sentry.NewScope()),
	}
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)

	logger.WithField("blog", "42").Errorf("failed to fetch blog")
	logger.Infof("not forwarded")

	require.Len(t, transport.events, 1)
	assert.Equal(t, sentry.LevelError, transport.events[0].Level)
	assert.Equal(t, "42", transport.events[0].Extra["blog"])
}
