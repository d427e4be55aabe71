package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/auth"
	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Pong! Service is alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Seconds(),
	})
}

func (s *Server) handleAuthTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Auth routes are reachable",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error("register_decode_failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Registration failed",
			"error":   err.Error(),
		})
		return
	}

	res, err := s.auth.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false, "message": "Missing required fields",
			})
		case errors.Is(err, auth.ErrInvalidEmail):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false, "message": "Invalid email address",
			})
		case errors.Is(err, auth.ErrInvalidRole):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false, "message": "Invalid role",
			})
		default:
			s.logger.Error("register_failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful",
		"token":   res.Token,
		"user":    res.User,
	})
}
