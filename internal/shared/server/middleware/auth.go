package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/auth"
	"jobboard-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userRoleKey  = "userRole"
)

// Auth validates bearer JWTs and stores identity in context.
// Routes under /api/v1/auth and read-only catalog routes stay public.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if isPublic(c.Request.Method, c.Request.URL.Path) {
			// Identity is still attached when a valid token is present.
			if claims, err := bearerClaims(c); err == nil {
				setIdentity(c, claims)
			}
			c.Next()
			return
		}

		claims, err := bearerClaims(c)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

func bearerClaims(c *gin.Context) (auth.Claims, error) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if !strings.HasPrefix(header, "Bearer ") {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return auth.VerifyJWT(token)
}

func setIdentity(c *gin.Context, claims auth.Claims) {
	c.Set(userIDKey, claims.Sub)
	if claims.Email != "" {
		c.Set(userEmailKey, claims.Email)
	}
	if claims.Role != "" {
		c.Set(userRoleKey, claims.Role)
	}
}

func isPublic(method, path string) bool {
	if strings.HasPrefix(path, "/api/v1/auth/") {
		return true
	}
	if path == "/api/v1/health" || path == "/metrics" {
		return true
	}
	if method != http.MethodGet {
		return false
	}
	switch {
	case path == "/api/v1/jobs", strings.HasPrefix(path, "/api/v1/jobs/"):
		// Listing applications for a job requires the owning poster.
		return !strings.HasSuffix(path, "/applications")
	case path == "/api/v1/chapters", strings.HasPrefix(path, "/api/v1/chapters/"):
		return true
	}
	return false
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// UserRoleFromContext fetches the user role set by the auth middleware.
func UserRoleFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userRoleKey)
	if role, ok := val.(string); ok {
		return role
	}
	return ""
}
