package applications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/users"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	applying := rg.Group("", middleware.RequireRole(users.RoleSeeker, users.RoleAlumni, users.RoleStudent))
	applying.POST("/jobs/:id/applications", h.apply)
	applying.DELETE("/applications/:id", h.withdraw)

	rg.GET("/applications/mine", h.listMine)

	reviewing := rg.Group("", middleware.RequireRole(users.RolePoster, users.RoleAdmin))
	reviewing.GET("/jobs/:id/applications", h.listForJob)
	reviewing.PATCH("/applications/:id/status", h.setStatus)
}

type applyRequest struct {
	CoverNote  string `json:"coverNote"`
	ResumeText string `json:"resumeText"`
}

func (h *Handler) apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.Apply(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c),
		req.CoverNote,
		req.ResumeText)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrJobClosed):
			respond.Error(c, http.StatusBadRequest, "validation_error", "job is not accepting applications", nil)
		case errors.Is(err, ErrDuplicate):
			respond.Error(c, http.StatusBadRequest, "conflict", "you already applied to this job", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit application", nil)
		}
		return
	}

	c.Set("applicationId", app.ID)
	c.Set("jobId", app.JobID)
	respond.Created(c, app)
}

func (h *Handler) listMine(c *gin.Context) {
	listed, err := h.Svc.ListMine(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}
	respond.OK(c, gin.H{"applications": listed})
}

func (h *Handler) listForJob(c *gin.Context) {
	listed, err := h.Svc.ListForJob(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c),
		middleware.UserRoleFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "not the job owner", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		}
		return
	}
	respond.OK(c, gin.H{"applications": listed})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) setStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.SetStatus(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c),
		middleware.UserRoleFromContext(c),
		req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "status must be one of pending, reviewed, shortlisted, rejected, accepted", nil)
		case errors.Is(err, ErrNotFound), errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "not the job owner", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update status", nil)
		}
		return
	}

	c.Set("applicationId", app.ID)
	respond.OK(c, app)
}

func (h *Handler) withdraw(c *gin.Context) {
	err := h.Svc.Withdraw(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "not your application", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to withdraw application", nil)
		}
		return
	}
	respond.Message(c, http.StatusOK, "application withdrawn")
}
