// internal/server/middleware.go
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/pkg/registry"
)

const requestIDHeader = "X-Request-Id"

// requestID tags every request with a uuid unless the caller brought one.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request and feeds the otel counters.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(started)
		route := r.URL.Path
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), route, ww.Status())
			s.obs.RecordDuration(r.Context(), route, elapsed)
		}

		s.logger.Info("request handled", map[string]interface{}{
			"method":     r.Method,
			"path":       route,
			"status":     ww.Status(),
			"durationMs": elapsed.Milliseconds(),
			"requestId":  ww.Header().Get(requestIDHeader),
		})
	})
}

var (
	postingCollections     = registry.Default().PostingNames()
	applicationCollections = registry.Default().ApplicationNames()
)

// requireCollection rejects requests naming a collection outside the
// allow-list, so the pass-through endpoints cannot reach arbitrary
// upstream paths.
func (s *Server) requireCollection(allowed map[string]bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			collection := chi.URLParam(r, "collection")
			if !allowed[collection] {
				writeError(w, s.logger, apperrors.NewBadRequestError("unknown collection: "+collection))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
