package handler

import (
	"net/http"

	restTypes "github.com/designerscolony/colony/internal/rest/types"
	"github.com/designerscolony/colony/internal/session"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// SessionHandler handles per-owner authentication flag endpoints.
type SessionHandler struct {
	sessions *session.Store
	logger   *zap.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions *session.Store, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger.Named("session_handler"),
	}
}

// GetSession reports the owner's authentication flag.
func (h *SessionHandler) GetSession(w http.ResponseWriter, req bunrouter.Request) error {
	authenticated, err := h.sessions.IsAuthenticated(req.Context(), req.Param("owner"))
	if err != nil {
		h.logger.Error("Failed to read session", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to read session"})
	}

	return writeJSON(w, http.StatusOK, restTypes.SessionResponse{Authenticated: authenticated})
}

// Login sets the flag. On the anonymous-to-authenticated edge the
// tracker migration runs before this returns.
func (h *SessionHandler) Login(w http.ResponseWriter, req bunrouter.Request) error {
	if err := h.sessions.Login(req.Context(), req.Param("owner")); err != nil {
		h.logger.Error("Failed to log in", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to log in"})
	}

	return writeJSON(w, http.StatusOK, restTypes.SessionResponse{Authenticated: true})
}

// Logout clears the flag. Migrated rows stay in the permanent
// partition.
func (h *SessionHandler) Logout(w http.ResponseWriter, req bunrouter.Request) error {
	if err := h.sessions.Logout(req.Context(), req.Param("owner")); err != nil {
		h.logger.Error("Failed to log out", zap.Error(err))

		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "failed to log out"})
	}

	return writeJSON(w, http.StatusOK, restTypes.SessionResponse{Authenticated: false})
}
