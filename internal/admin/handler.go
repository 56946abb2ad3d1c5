package admin

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

// RegisterRoutes attaches admin routes, all gated on the admin role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	gated := rg.Group("/admin", middleware.RequireRole(users.RoleAdmin))
	gated.GET("/stats", h.stats)
	gated.GET("/users", h.listUsers)
	gated.DELETE("/users/:id", h.deleteUser)
}

func (h *Handler) stats(c *gin.Context) {
	totals, err := h.Svc.Totals(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute stats", nil)
		return
	}
	respond.OK(c, totals)
}

func (h *Handler) listUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	listed, total, err := h.Svc.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list users", nil)
		return
	}
	respond.OK(c, gin.H{"users": listed, "total": total})
}

func (h *Handler) deleteUser(c *gin.Context) {
	err := h.Svc.DeleteUser(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfDelete):
			respond.Error(c, http.StatusBadRequest, "validation_error", "admins cannot delete themselves", nil)
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete user", nil)
		}
		return
	}
	respond.Message(c, http.StatusOK, "user deleted")
}
