// internal/server/server.go
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"talenthub-dashboard/internal/common/config"
	"talenthub-dashboard/internal/common/logger"
	"talenthub-dashboard/internal/common/observability"
	"talenthub-dashboard/internal/dashboards/employer"
	"talenthub-dashboard/internal/dashboards/member"
	"talenthub-dashboard/internal/dashboards/mentor"
	"talenthub-dashboard/internal/marketplace"
	"talenthub-dashboard/internal/mutations"
)

// Server is the HTTP surface in front of the dashboard composers and the
// mutation service.
type Server struct {
	cfg        *config.Config
	logger     logger.Logger
	obs        *observability.Observability
	client     *marketplace.Client
	employer   *employer.Handler
	mentor     *mentor.Handler
	member     *member.Handler
	mutations  *mutations.Service
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	log logger.Logger,
	obs *observability.Observability,
	client *marketplace.Client,
	employerHandler *employer.Handler,
	mentorHandler *mentor.Handler,
	memberHandler *member.Handler,
	mutationService *mutations.Service,
) *Server {
	s := &Server{
		cfg:       cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "http-server"}),
		obs:       obs,
		client:    client,
		employer:  employerHandler,
		mentor:    mentorHandler,
		member:    memberHandler,
		mutations: mutationService,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}
	return s
}

// Router assembles the full route tree. Exposed separately so tests can
// drive it through httptest without binding a port.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/debug", chimiddleware.Profiler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/dashboards", func(r chi.Router) {
			r.Get("/employer", s.handleEmployerDashboard)
			r.Get("/mentor", s.handleMentorDashboard)
			r.Get("/member", s.handleMemberDashboard)
			r.Post("/refresh", s.handleRefresh)
		})

		r.Route("/postings/{collection}", func(r chi.Router) {
			r.Use(s.requireCollection(postingCollections))
			r.Post("/", s.handleCreatePosting)
			r.Get("/{id}", s.handleGetPosting)
			r.Put("/{id}", s.handleUpdatePosting)
			r.Delete("/{id}", s.handleDeletePosting)
			r.Post("/{id}/archive", s.handleToggleArchive)
		})

		r.Route("/company", func(r chi.Router) {
			r.Get("/{id}", s.handleGetCompany)
			r.Post("/", s.handleUpsertCompany)
			r.Put("/{id}", s.handleUpsertCompany)
		})

		r.Route("/applications/{collection}", func(r chi.Router) {
			r.Use(s.requireCollection(applicationCollections))
			r.Post("/{id}/status", s.handleUpdateApplicationStatus)
			r.Delete("/{id}", s.handleDeleteApplication)
		})
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": s.cfg.App.Name,
		"version": s.cfg.App.Version,
	})
}
