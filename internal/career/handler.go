package career

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches career-tool routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/career/resume-score", h.resumeScore)
	rg.POST("/career/interview-score", h.interviewScore)
	rg.GET("/career/stats", h.stats)
}

type resumeScoreRequest struct {
	ResumeText string `json:"resumeText"`
}

func (h *Handler) resumeScore(c *gin.Context) {
	var req resumeScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	analysis, err := h.Svc.AnalyzeResume(c.Request.Context(), req.ResumeText)
	if err != nil {
		switch {
		case errors.Is(err, ErrResumeTooShort):
			respond.Error(c, http.StatusBadRequest, "validation_error", "resumeText must be at least 20 characters", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	respond.OK(c, analysis)
}

type interviewScoreRequest struct {
	Prompt          string `json:"prompt"`
	Response        string `json:"response"`
	DurationSeconds *int   `json:"duration"`
}

func (h *Handler) interviewScore(c *gin.Context) {
	var req interviewScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	eval, err := h.Svc.ScoreInterview(c.Request.Context(),
		middleware.UserIDFromContext(c),
		req.Prompt,
		req.Response,
		req.DurationSeconds)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "prompt and response are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score response", nil)
		}
		return
	}

	respond.OK(c, eval)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute stats", nil)
		return
	}
	respond.OK(c, stats)
}
