package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ProblemHandler serves the practice repository
type ProblemHandler struct {
	problems services.ProblemServiceInterface
	toasts   *notify.Service
}

// NewProblemHandler creates the problem handler
func NewProblemHandler(problems services.ProblemServiceInterface, toasts *notify.Service) *ProblemHandler {
	return &ProblemHandler{problems: problems, toasts: toasts}
}

// List handles GET /problems
func (h *ProblemHandler) List(c *gin.Context) {
	problems, err := h.problems.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"problems": problems})
}

// Get handles GET /problems/:id
func (h *ProblemHandler) Get(c *gin.Context) {
	problem, err := h.problems.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// SubmitSolution handles POST /problems/:id/solution
func (h *ProblemHandler) SubmitSolution(c *gin.Context) {
	var req models.SubmitSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	solution, prediction, err := h.problems.SubmitSolution(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}

	h.toasts.Add("Solution submitted", notify.SeveritySuccess)
	c.JSON(http.StatusOK, gin.H{
		"solution":   solution,
		"prediction": prediction,
	})
}
