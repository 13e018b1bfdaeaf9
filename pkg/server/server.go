// Package server exposes the wallet checker and the mock leaderboard as a
// small HTTP JSON API for the dashboard page.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Anshu84487/monad-stats/pkg/scanner"
)

// Server is the HTTP JSON API in front of a Checker.
type Server struct {
	logger      zerolog.Logger
	checker     *scanner.Checker
	httpSrv     *http.Server
	bind        string
	port        int
	defaultSpan uint64
}

func New(logger zerolog.Logger, checker *scanner.Checker, bind string, port int, defaultSpan uint64) *Server {
	s := &Server{
		logger:      logger,
		checker:     checker,
		bind:        bind,
		port:        port,
		defaultSpan: defaultSpan,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Handler:           corsMiddleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// corsMiddleware allows cross-origin requests from the dashboard page.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler returns the root handler, routes and middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start blocks serving HTTP until Shutdown is called or the listener
// fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.bind, s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.logger.Info().Str("addr", addr).Msg("api listening")
	if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
