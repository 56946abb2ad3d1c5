package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/admin"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/career"
	"jobboard-backend/internal/chapters"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/users"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config              config.Config
	UsersHandler        *users.Handler
	JobsHandler         *jobs.Handler
	ApplicationsHandler *applications.Handler
	ChaptersHandler     *chapters.Handler
	CareerHandler       *career.Handler
	AdminHandler        *admin.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)
	if deps.Config.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				defaultRateLimitGroup: {
					Rate:  float64(deps.Config.RateLimitRPS),
					Burst: deps.Config.RateLimitBurst,
				},
			},
			DefaultGroup: defaultRateLimitGroup,
		}))
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.UsersHandler.RegisterRoutes(api)
	deps.JobsHandler.RegisterRoutes(api)
	deps.ApplicationsHandler.RegisterRoutes(api)
	deps.ChaptersHandler.RegisterRoutes(api)
	deps.CareerHandler.RegisterRoutes(api)
	deps.AdminHandler.RegisterRoutes(api)

	return r
}

const defaultRateLimitGroup = "DEFAULT"

// Addr formats the listen address for a port.
func Addr(port string) string {
	return fmt.Sprintf(":%s", port)
}
