package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/ring-analytics/pkg/problem"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Recovery turns a panicking handler into a 500 problem response and marks
// the request span as failed.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Printf("[api] panic recovered on %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
			span := trace.SpanFromContext(r.Context())
			span.SetStatus(codes.Error, "panic")

			problem.InternalError("An unexpected error occurred").Write(w)
		}()

		next.ServeHTTP(w, r)
	})
}
