package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace id. Inbound values are reused so a
// client can correlate its own retries; otherwise a fresh uuid is minted.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace-id-scoped logger to the request context, so
// every document and auth handler logs under the same trace id, and echoes
// the id back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		traced := h.logger.GetChildLogger()
		traced.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(traced.WithContext(r.Context())))
	})
}
