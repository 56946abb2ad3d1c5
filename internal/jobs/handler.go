package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)

	posting := rg.Group("", middleware.RequireRole(users.RolePoster, users.RoleAdmin))
	posting.POST("/jobs", h.create)
	posting.PUT("/jobs/:id", h.update)
	posting.PATCH("/jobs/:id/status", h.setStatus)
	posting.DELETE("/jobs/:id", h.remove)
}

type jobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	SalaryRange string `json:"salaryRange"`
	JobType     string `json:"jobType"`
}

func (r jobRequest) toInput() Input {
	return Input{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		SalaryRange: r.SalaryRange,
		JobType:     r.JobType,
	}
}

type listResponse struct {
	Jobs   []Job `json:"jobs"`
	Total  int   `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := Filter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
		Limit:    limit,
		Offset:   offset,
	}

	listed, total, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}

	respond.OK(c, listResponse{Jobs: listed, Total: total, Limit: filter.Limit, Offset: filter.Offset})
}

func (h *Handler) get(c *gin.Context) {
	job, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job", nil)
		}
		return
	}
	c.Set("jobId", job.ID)
	respond.OK(c, job)
}

func (h *Handler) create(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), middleware.UserIDFromContext(c), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "title, company and description are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		}
		return
	}

	c.Set("jobId", job.ID)
	respond.Created(c, job)
}

func (h *Handler) update(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Update(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c),
		middleware.UserRoleFromContext(c),
		req.toInput())
	if err != nil {
		h.writeError(c, err, "failed to update job")
		return
	}

	c.Set("jobId", job.ID)
	respond.OK(c, job)
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

	job, err := h.Svc.SetStatus(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c),
		middleware.UserRoleFromContext(c),
		req.Status)
	if err != nil {
		h.writeError(c, err, "failed to update job status")
		return
	}

	c.Set("jobId", job.ID)
	respond.OK(c, job)
}

func (h *Handler) remove(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c),
		middleware.UserRoleFromContext(c))
	if err != nil {
		h.writeError(c, err, "failed to delete job")
		return
	}

	respond.Message(c, http.StatusOK, "job deleted")
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "not the job owner", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
