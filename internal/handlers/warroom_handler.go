package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/appstate"
	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/codementor/codementor-api/internal/warroom"
	"github.com/gin-gonic/gin"

	"github.com/codementor/codementor-api/internal/ai"
)

// WarRoomHandler serves the live session view: chat, the code buffer,
// runs, connection quality and the feedback gate.
type WarRoomHandler struct {
	sessions     services.SessionServiceInterface
	machines     *appstate.Registry
	rooms        *warroom.Manager
	collaborator ai.Collaborator
	toasts       *notify.Service
}

// NewWarRoomHandler creates the war room handler
func NewWarRoomHandler(sessions services.SessionServiceInterface, machines *appstate.Registry, rooms *warroom.Manager, collaborator ai.Collaborator, toasts *notify.Service) *WarRoomHandler {
	return &WarRoomHandler{sessions: sessions, machines: machines, rooms: rooms, collaborator: collaborator, toasts: toasts}
}

func (h *WarRoomHandler) room(c *gin.Context) (string, *warroom.Room, bool) {
	claims, ok := middleware.GetAppSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return "", nil, false
	}

	room, err := h.rooms.Get(claims.UserID)
	if err != nil {
		respondError(c, err)
		return "", nil, false
	}
	return claims.UserID, room, true
}

// Get handles GET /warroom
func (h *WarRoomHandler) Get(c *gin.Context) {
	_, room, ok := h.room(c)
	if !ok {
		return
	}

	mic, cam := room.Media()
	c.JSON(http.StatusOK, gin.H{
		"sessionId":   room.SessionID,
		"code":        room.Code(),
		"chat":        room.Chat(),
		"quality":     room.Quality(),
		"micOn":       mic,
		"camOn":       cam,
		"aiAvailable": h.collaborator.IsAvailable(),
	})
}

// Chat handles POST /warroom/chat
func (h *WarRoomHandler) Chat(c *gin.Context) {
	var req models.SendChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	_, room, ok := h.room(c)
	if !ok {
		return
	}

	msg, err := room.SendChat(req.Text)
	if err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Code handles POST /warroom/code
func (h *WarRoomHandler) Code(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	_, room, ok := h.room(c)
	if !ok {
		return
	}

	if err := room.UpdateCode(req.Code); err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"length": len(req.Code)})
}

// Run handles POST /warroom/run
func (h *WarRoomHandler) Run(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	// Body is optional; the buffer is the source of truth
	_ = c.ShouldBindJSON(&req)

	_, room, ok := h.room(c)
	if !ok {
		return
	}

	result, err := room.RunCode(c.Request.Context(), h.collaborator, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BeginClose handles POST /warroom/close: opens the feedback gate
func (h *WarRoomHandler) BeginClose(c *gin.Context) {
	claims, ok := middleware.GetAppSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	machine := h.machines.Get(claims.UserID)
	if err := machine.BeginClose(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"closePending": true})
}

// Feedback handles POST /warroom/feedback: submits the rating, records it
// on the session, closes the room and returns to the dashboard.
func (h *WarRoomHandler) Feedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	claims, ok := middleware.GetAppSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	machine := h.machines.Get(claims.UserID)
	sessionID, _ := machine.ActiveSession()

	feedback := models.SessionFeedback{Rating: req.Rating, Comment: req.Comment}
	view, err := machine.SubmitFeedback(feedback)
	if err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}

	if sessionID != "" {
		if err := h.sessions.RecordFeedback(c.Request.Context(), sessionID, feedback); err != nil {
			h.toasts.Add("Feedback saved for this session only", notify.SeverityError)
		}
	}

	h.rooms.Close(claims.UserID)
	h.toasts.Add("Thanks for your feedback!", notify.SeveritySuccess)

	c.JSON(http.StatusOK, gin.H{"view": view})
}

// Media handles POST /warroom/media
func (h *WarRoomHandler) Media(c *gin.Context) {
	var req struct {
		MicOn bool `json:"micOn"`
		CamOn bool `json:"camOn"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	_, room, ok := h.room(c)
	if !ok {
		return
	}

	room.SetMedia(req.MicOn, req.CamOn)
	c.JSON(http.StatusOK, gin.H{"micOn": req.MicOn, "camOn": req.CamOn})
}
