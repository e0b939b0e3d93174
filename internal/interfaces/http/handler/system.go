package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/biztime/backend/internal/infrastructure/logger"
	"github.com/biztime/backend/internal/infrastructure/persistence"
	"github.com/biztime/backend/internal/interfaces/http/dto"
	"github.com/biztime/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// healthPingTimeout bounds the database ping of a health check
const healthPingTimeout = 2 * time.Second

// DatabaseProbe is the slice of persistence.Database the health check needs
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	Stats() (persistence.PoolStats, error)
}

// SystemHandler serves the operational endpoints
type SystemHandler struct {
	BaseHandler
	db        DatabaseProbe
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db DatabaseProbe, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// HealthResponse is the body of a passing health check
type HealthResponse struct {
	Status    string                `json:"status"`
	Version   string                `json:"version"`
	GoVersion string                `json:"go_version"`
	Uptime    string                `json:"uptime"`
	Database  persistence.PoolStats `json:"database"`
}

// Health reports 200 while the database answers pings and 503 otherwise
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		h.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", dto.MessageServiceUnavailable)
		return
	}

	stats, err := h.db.Stats()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Database:  stats,
	})
}

// Routes returns the /health route group
func (h *SystemHandler) Routes() *router.DomainGroup {
	return router.NewDomainGroup("/health").
		GET("", h.Health)
}
