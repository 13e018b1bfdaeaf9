package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Anshu84487/monad-stats/pkg/leaderboard"
	"github.com/Anshu84487/monad-stats/pkg/scanner"
)

type checkRequest struct {
	Address string `json:"address"`
	Span    uint64 `json:"span"`
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/check", s.handleCheck)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/cancel", s.handleCancel)
	mux.HandleFunc("/api/leaderboard", s.handleLeaderboard)
}

// handleCheck starts a wallet check. With ?wait=1 it blocks until the
// check finishes and returns the final snapshot; otherwise it returns 202
// immediately and the page polls /api/status.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Span == 0 {
		req.Span = s.defaultSpan
	}

	if r.URL.Query().Get("wait") == "1" {
		if _, err := s.checker.Check(r.Context(), req.Address, req.Span); err != nil {
			s.writeCheckError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.checker.Snapshot())
		return
	}

	// the check outlives the request; the page observes it via /api/status
	go func() {
		if _, err := s.checker.Check(context.Background(), req.Address, req.Span); err != nil {
			s.logger.Err(err).Str("address", req.Address).Msg("check failed")
		}
	}()
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

// writeCheckError maps checker errors to HTTP responses.
func (s *Server) writeCheckError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scanner.ErrInvalidAddress):
		writeError(w, http.StatusBadRequest, "bad-address")
	case errors.Is(err, scanner.ErrCheckRunning):
		writeError(w, http.StatusConflict, "a check is already running")
	default:
		// only the coarse status leaks out, no error detail
		writeError(w, http.StatusBadGateway, "error")
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	writeJSON(w, http.StatusOK, s.checker.Snapshot())
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	s.checker.Cancel()
	writeJSON(w, http.StatusAccepted, s.checker.Snapshot())
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	writeJSON(w, http.StatusOK, leaderboard.Top(10))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
