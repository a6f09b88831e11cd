package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"reboundai/backend/internal/config"
	"reboundai/backend/internal/session"
)

type App struct {
	cfg   config.Config
	store *session.Store
	echo  *EchoGenerator
}

func New(cfg config.Config, store *session.Store, echo *EchoGenerator) *App {
	return &App{cfg: cfg, store: store, echo: echo}
}

func (a *App) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  a.cfg.CORSAllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(a.rateLimitMiddleware())

	router.GET("/health", a.health)

	rebound := router.Group("/rebound")
	rebound.POST("/start", a.startSession)
	rebound.GET("/start", a.startSessionHint)
	rebound.POST("/reply", a.postReply)
	rebound.GET("/history", a.getHistory)

	return router
}

func (a *App) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": a.cfg.AppName,
		"ts":      time.Now().UnixMilli(),
	})
}

// Single token bucket shared across callers. The mobile app talks to one
// instance, so per-client buckets are not worth the bookkeeping yet.
func (a *App) rateLimitMiddleware() gin.HandlerFunc {
	rps := a.cfg.RateLimitPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := a.cfg.RateLimitBurst
	if burst <= 0 {
		burst = 20
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			writeError(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}

func writeError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"error": detail})
}

func mustJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
