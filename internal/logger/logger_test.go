package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_ServerRole verifies that the server binary's logger stamps
// every entry with its role label, so server and client lines can be told
// apart when logs are aggregated.
func TestNewLogger_ServerRole(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("datebook-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("Launching HTTP server")

	entry := logEntry(t, &buf)
	assert.Equal(t, "datebook-server", entry["role"])
	assert.Equal(t, "Launching HTTP server", entry["message"])
}

// TestNewLogger_EntryCarriesTimestamp verifies that entries are timestamped.
func TestNewLogger_EntryCarriesTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("datebook-server")
	l.Logger = l.Output(&buf)

	l.Debug().Msg("received configs")

	_, hasTime := logEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldIsFunc verifies the caller field rename: entries
// point at the emitting function, not file:line.
func TestNewLogger_CallerFieldIsFunc(t *testing.T) {
	NewLogger("datebook-server")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewClientLogger_NotNil verifies the client constructor; the TUI owns
// stdout, so the client logger must come up even when it falls back from its
// log file.
func TestNewClientLogger_NotNil(t *testing.T) {
	l := NewClientLogger("datebook-client")
	require.NotNil(t, l)
}

// TestNop_Discards verifies that Nop loggers, handed to sessions and adapters
// in tests, never write anything.
func TestNop_Discards(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("load people failed, keeping cached list")

	assert.Empty(t, buf.String())
}

// TestGetChildLogger_TraceFieldStaysOnChild mirrors how the trace-id
// middleware works: the child is enriched with a trace_id while the parent
// keeps logging without one.
func TestGetChildLogger_TraceFieldStaysOnChild(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("datebook-server")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.Output(&childBuf)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "trace-1")
	})

	child.Info().Msg("handled request")
	parent.Info().Msg("server running")

	childEntry := logEntry(t, &childBuf)
	assert.Equal(t, "trace-1", childEntry["trace_id"])
	assert.Equal(t, "datebook-server", childEntry["role"], "child inherits the role")

	_, parentHasTrace := logEntry(t, &parentBuf)["trace_id"]
	assert.False(t, parentHasTrace, "parent must not pick up the child's trace id")
}

// TestFromRequest_ReturnsMiddlewareLogger verifies that a handler sees the
// request-scoped logger the middleware chain attached, trace id included.
func TestFromRequest_ReturnsMiddlewareLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-42").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/collections/people/documents", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)
	l.Info().Msg("querying documents")

	assert.Equal(t, "trace-42", logEntry(t, &buf)["trace_id"])
}

// TestFromContext_NeverNil verifies the fallback to zerolog's global logger
// for contexts that never went through the middleware.
func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}
