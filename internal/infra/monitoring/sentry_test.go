package monitoring

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"voterdesk/config"
	"voterdesk/internal/errors"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type recordingTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (t *recordingTransport) Configure(sentry.ClientOptions) {}
func (t *recordingTransport) Flush(time.Duration) bool { return true }
func (t *recordingTransport) FlushWithContext(context.Context) bool { return true }
func (t *recordingTransport) Close() {}
func (t *recordingTransport) SendEvent(event *sentry.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events = append(t.events, event)
}

func TestReporter_Disabled(t *testing.T) {
	reporter, err := NewReporter(ReporterParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, err)
	assert.False(t, reporter.Enabled())
	assert.NotPanics(t, func() {
		reporter.Capture(nil, errors.New("boom"), nil)
		reporter.Flush()
	})
}

func TestReporter_CaptureWithTags(t *testing.T) {
	transport := &recordingTransport{}
	reporter, err := newReporter(sentry.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/voters", nil)
	reporter.Capture(req, errors.New("connection reset by peer"), map[string]string{"request_id": "req-1"})
	reporter.Capture(req, nil, nil)

	require.Len(t, transport.events, 1)
	event := transport.events[0]
	assert.Equal(t, "req-1", event.Tags["request_id"])
	require.NotEmpty(t, event.Exception)
	assert.Equal(t, "connection reset by peer", event.Exception[len(event.Exception)-1].Value)
}
