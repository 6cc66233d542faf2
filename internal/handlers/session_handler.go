package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/appstate"
	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/internal/warroom"
	"github.com/gin-gonic/gin"
)

// SessionHandler serves the session history and war room entry
type SessionHandler struct {
	sessions services.SessionServiceInterface
	machines *appstate.Registry
	rooms    *warroom.Manager
}

// NewSessionHandler creates the session handler
func NewSessionHandler(sessions services.SessionServiceInterface, machines *appstate.Registry, rooms *warroom.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions, machines: machines, rooms: rooms}
}

// List handles GET /sessions
func (h *SessionHandler) List(c *gin.Context) {
	status := models.SessionStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}

	sessions, err := h.sessions.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// Join handles POST /sessions/:id/join: validates the session, moves the
// state machine into the war room and opens a room with the starter code.
func (h *SessionHandler) Join(c *gin.Context) {
	claims, ok := middleware.GetAppSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	sess, err := h.sessions.Joinable(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	machine := h.machines.Get(claims.UserID)
	view, err := machine.JoinSession(sess.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	userName := claims.Name
	if userName == "" {
		userName = "Mentee"
	}
	room := h.rooms.Open(claims.UserID, sess.ID, userName, store.InitialCode)

	c.JSON(http.StatusOK, gin.H{
		"view":    view,
		"session": sess,
		"room": gin.H{
			"sessionId": room.SessionID,
			"code":      room.Code(),
			"chat":      room.Chat(),
			"quality":   room.Quality(),
		},
	})
}
