package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/apiref/internal/api/shared"
	"github.com/phrazzld/apiref/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and the
// X-Trace-ID response header, and attaches a logger carrying it.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		w.Header().Set(shared.TraceIDHeader, traceID)

		log := logger.FromContextOrDefault(ctx, nil).With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
