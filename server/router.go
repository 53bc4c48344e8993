package server

import (
	"net/http"

	"tonotes/handler"
	"tonotes/middleware"
	"tonotes/services"
	"tonotes/usecase"
	"tonotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Version        string
	AllowedOrigins []string
	MaxBodyBytes   int64
	RateLimit      middleware.RateLimitConfig
	Issuer         string
}

type Dependencies struct {
	Notes    *usecase.NotesService
	Analysis *usecase.AnalysisService
	Gate     *services.AccessGate
	// Health lists the dependencies pinged by /health.
	Health map[string]handler.Pinger
}

func SetupRouter(deps Dependencies, opts Options) *gin.Engine {
	utils.InitValidator()

	router := gin.New()
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(opts.AllowedOrigins))
	router.Use(middleware.MetricsMiddleware())
	if opts.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSizeLimiter(opts.MaxBodyBytes))
	}

	health := handler.NewHealthHandler(opts.Version, deps.Health)
	router.GET("/", health.Root)
	router.GET("/health", health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authMiddleware := middleware.AuthMiddleware(deps.Gate)
	v1 := router.Group("/api/v1")

	authHandler := handler.NewAuthHandler(deps.Gate, opts.Issuer)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(opts.RateLimit))
	{
		auth.POST("/verify-token", authHandler.VerifyToken)
		auth.GET("/me", authMiddleware, authHandler.Me)
		auth.POST("/refresh-token", authHandler.RefreshToken)
		auth.POST("/revoke-token", authHandler.RevokeToken)
		auth.GET("/status", authHandler.Status)
	}

	notesService := deps.Notes
	analysisService := deps.Analysis
	notes := v1.Group("/notes")
	notes.Use(authMiddleware)
	notes.Use(middleware.RateLimitMiddleware(opts.RateLimit))
	notes.Use(middleware.CacheControlMiddleware("no-store"))
	{
		notes.GET("", func(c *gin.Context) {
			handler.GetUserNotesHandler(c, notesService)
		})
		notes.POST("", func(c *gin.Context) {
			handler.CreateNoteHandler(c, notesService)
		})
		notes.GET("/:id", func(c *gin.Context) {
			handler.GetNoteHandler(c, notesService)
		})
		notes.PUT("/:id", func(c *gin.Context) {
			handler.UpdateNoteHandler(c, notesService)
		})
		notes.DELETE("/:id", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, notesService)
		})
		notes.PATCH("/:id/restore", func(c *gin.Context) {
			handler.RestoreNoteHandler(c, notesService)
		})
		notes.GET("/:id/ai", func(c *gin.Context) {
			handler.AnalyzeNoteHandler(c, analysisService)
		})
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.Fail[any](utils.CodeRouteNotFound, "Route not found"))
	})

	return router
}
