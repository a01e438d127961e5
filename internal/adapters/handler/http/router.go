package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/kanso-goals/docs"
	"github.com/comitanigiacomo/kanso-goals/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

const (
	statusConnected   = "connected"
	statusUnreachable = "unreachable"
	statusDisabled    = "disabled"
)

// RouterDependencies wires the handlers into one engine. DB and Redis are nil
// when the service runs on in-memory storage.
type RouterDependencies struct {
	AuthHandler       *AuthHandler
	GoalHandler       *GoalHandler
	CompletionHandler *CompletionHandler
	AnalyticsHandler  *AnalyticsHandler
	CalendarHandler   *CalendarHandler
	ProfileHandler    *ProfileHandler
	MigrationHandler  *MigrationHandler
	TokenService      *services.TokenService

	DB         *sqlx.DB
	Redis      *redis.Client
	RateLimit  int
	RateWindow time.Duration
	StartTime  time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateWindow))
	}

	router.GET("/health", deps.health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)
	deps.CalendarHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.GoalHandler.RegisterRoutes(protected)
		deps.CompletionHandler.RegisterRoutes(protected)
		deps.AnalyticsHandler.RegisterRoutes(protected)
		deps.ProfileHandler.RegisterRoutes(protected)
		deps.MigrationHandler.RegisterRoutes(protected)
	}

	return router
}

func (deps RouterDependencies) health(c *gin.Context) {
	dbStatus := statusDisabled
	if deps.DB != nil {
		dbStatus = statusConnected
		if err := deps.DB.PingContext(c.Request.Context()); err != nil {
			dbStatus = statusUnreachable
		}
	}

	redisStatus := statusDisabled
	if deps.Redis != nil {
		redisStatus = statusConnected
		if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = statusUnreachable
		}
	}

	code := http.StatusOK
	status := "ok"
	if dbStatus == statusUnreachable || redisStatus == statusUnreachable {
		code = http.StatusServiceUnavailable
		status = "degraded"
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": dbStatus,
		"redis":    redisStatus,
		"uptime":   time.Since(deps.StartTime).String(),
	})
}
