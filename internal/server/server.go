/*
Package server exposes a brace.Designer over HTTP.

ROUTES:

	GET  /healthz
	GET  /api/catalog/{sections|materials|bolt-diameters|bolt-materials}
	GET  /api/brace                              snapshot of the joint
	PUT  /api/brace/{section|material|bolts|gusset|force}
	GET  /api/brace/geometry/{section|gusset|bolts}?unit=m|cm|mm
	GET  /api/brace/joint-length?unit=
	GET  /api/brace/bolt-dimensions?unit=
	GET  /api/brace/thickness?unit=
	GET  /api/brace/preview.png
	POST /api/checks/{base-yield|bolt-yield|gusset-yield|all}
	GET  /api/results/last[.pdf|.xlsx]

Lengths default to meters. Errors are JSON bodies {"error": ..., "details": ...}.
*/
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/alexiusacademia/gobrace/internal/config"
	"github.com/alexiusacademia/gobrace/internal/logger"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/sections", h.ListSections)
			r.Get("/materials", h.ListMaterials)
			r.Get("/bolt-diameters", h.ListBoltDiameters)
			r.Get("/bolt-materials", h.ListBoltMaterials)
		})

		r.Route("/brace", func(r chi.Router) {
			r.Get("/", h.GetBrace)
			r.Put("/section", h.PutSection)
			r.Put("/material", h.PutMaterial)
			r.Put("/bolts", h.PutBolts)
			r.Put("/gusset", h.PutGusset)
			r.Put("/force", h.PutForce)

			r.Get("/geometry/section", h.SectionGeometry)
			r.Get("/geometry/gusset", h.GussetGeometry)
			r.Get("/geometry/bolts", h.BoltGeometry)
			r.Get("/joint-length", h.JointLength)
			r.Get("/bolt-dimensions", h.BoltDimensions)
			r.Get("/thickness", h.Thickness)
			r.Get("/preview.png", h.Preview)
		})

		r.Route("/checks", func(r chi.Router) {
			r.Post("/base-yield", h.CheckBaseYield)
			r.Post("/bolt-yield", h.CheckBoltYield)
			r.Post("/gusset-yield", h.CheckGussetYield)
			r.Post("/all", h.CheckAll)
		})

		r.Route("/results", func(r chi.Router) {
			r.Get("/last", h.LastResult)
			r.Get("/last.pdf", h.LastResultPDF)
			r.Get("/last.xlsx", h.LastResultXLSX)
		})
	})

	return r
}

// requestLogger logs one line per request through zap.
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Server runs the router until its context is cancelled.
type Server struct {
	srv             *http.Server
	log             *logger.Logger
	shutdownTimeout time.Duration
}

func New(cfg config.HTTP, h *Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(h, cfg.CORSOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log:             h.log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server.Run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.log.Info("http server shutting down")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server.Run: shutdown: %w", err)
	}
	return nil
}
