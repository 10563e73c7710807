// Package web serves the local strip tool: a JSON API over the urlstrip
// library plus a small embedded UI.
package web

import (
	"context"
	"embed"
	"net/http"
	"time"

	"go.uber.org/zap"
)

//go:embed static/*
var staticFS embed.FS

type Server struct {
	log *zap.Logger
	mux *http.ServeMux
}

func New(log *zap.Logger) *Server {
	s := &Server{log: log, mux: http.NewServeMux()}

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/app.js", s.handleStatic("static/app.js", "application/javascript; charset=utf-8"))
	s.mux.HandleFunc("/styles.css", s.handleStatic("static/styles.css", "text/css; charset=utf-8"))
	s.mux.HandleFunc("/api/strip", s.handleStrip)
	s.mux.HandleFunc("/api/domains", s.handleDomains)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("graceful shutdown", zap.Error(err))
		}
	}()

	s.log.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}
