package chapters

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches chapter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chapters", h.list)
	rg.GET("/chapters/:id", h.get)
	rg.GET("/chapters/:id/posts", h.listPosts)

	rg.POST("/chapters", middleware.RequireRole(users.RoleAlumni, users.RoleAdmin), h.create)
	rg.POST("/chapters/:id/join", middleware.RequireRole(users.RoleAlumni, users.RoleStudent), h.join)
	rg.PATCH("/chapters/:id/members/:userId", h.approve)
	rg.POST("/chapters/:id/posts", h.createPost)
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Region      string `json:"region"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	chapter, err := h.Svc.Create(c.Request.Context(),
		middleware.UserIDFromContext(c),
		req.Name, req.Description, req.Region)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		case errors.Is(err, ErrDuplicateName):
			respond.Error(c, http.StatusBadRequest, "conflict", "chapter name already taken", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create chapter", nil)
		}
		return
	}

	respond.Created(c, chapter)
}

func (h *Handler) list(c *gin.Context) {
	listed, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list chapters", nil)
		return
	}
	respond.OK(c, gin.H{"chapters": listed})
}

func (h *Handler) get(c *gin.Context) {
	chapter, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "chapter not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch chapter", nil)
		}
		return
	}
	respond.OK(c, chapter)
}

func (h *Handler) join(c *gin.Context) {
	membership, err := h.Svc.Join(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "chapter not found", nil)
		case errors.Is(err, ErrDuplicateMember):
			respond.Error(c, http.StatusBadRequest, "conflict", "already a member of this chapter", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to join chapter", nil)
		}
		return
	}
	respond.Created(c, membership)
}

func (h *Handler) approve(c *gin.Context) {
	err := h.Svc.Approve(c.Request.Context(),
		c.Param("id"),
		c.Param("userId"),
		middleware.UserIDFromContext(c),
		middleware.UserRoleFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "chapter not found", nil)
		case errors.Is(err, ErrMembershipMissing):
			respond.Error(c, http.StatusNotFound, "not_found", "no pending membership for that user", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "only a chapter lead may approve members", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to approve member", nil)
		}
		return
	}
	respond.Message(c, http.StatusOK, "membership approved")
}

type postRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *Handler) createPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	post, err := h.Svc.CreatePost(c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFromContext(c),
		middleware.UserRoleFromContext(c),
		req.Title, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "title and body are required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "chapter not found", nil)
		case errors.Is(err, ErrNotApproved):
			respond.Error(c, http.StatusForbidden, "forbidden", "approved membership required to post", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create post", nil)
		}
		return
	}

	respond.Created(c, post)
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "chapter not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list posts", nil)
		}
		return
	}
	respond.OK(c, gin.H{"posts": posts})
}
