package handler

import (
	"context"
	"net/http"
	"time"

	"tonotes/utils"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency whose reachability is part of the health report.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	version string
	deps    map[string]Pinger
}

func NewHealthHandler(version string, deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, deps: deps}
}

func (h *HealthHandler) Root(c *gin.Context) {
	utils.Success(c, "Welcome to the tonotes API", gin.H{
		"version": h.version,
		"health":  "/health",
		"api":     "/api/v1",
	})
}

// Health reports 200 when every dependency answers a ping, 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	checks := make(map[string]string, len(h.deps))
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = "degraded"
			continue
		}
		checks[name] = "ok"
	}

	data := gin.H{
		"status":    status,
		"version":   h.version,
		"cpu_usage": utils.GetCPUUsage(ctx),
		"checks":    checks,
	}
	if _, ok := h.deps["mongo"]; ok {
		data["mongo_pool"] = utils.GetMongoMetrics()
	}
	if status != "healthy" {
		env := utils.Fail[gin.H](utils.CodeStorageUnavailable, "A dependency is unavailable")
		env.Details = data
		c.JSON(http.StatusServiceUnavailable, env)
		return
	}
	utils.Success(c, "API is running", data)
}
