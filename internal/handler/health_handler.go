package handler

import (
	"evalboard/internal/domain"
	"evalboard/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// HealthHandler reports readiness of the server's collaborators.
type HealthHandler struct {
	db    *sqlx.DB
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler instance. cache may be
// nil when the response cache is disabled.
func NewHealthHandler(db *sqlx.DB, cache domain.Cache) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// Check handles GET /healthz. The database is required, so its failure
// marks the service unhealthy; the cache is optional and only reported.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.StatusOK
	report := fiber.Map{"database": "up"}

	if err := h.db.PingContext(c.Context()); err != nil {
		logger.Get().Error("Health check: database ping failed", zap.Error(err))
		report["database"] = "down"
		status = fiber.StatusServiceUnavailable
	}

	switch {
	case h.cache == nil:
		report["cache"] = "disabled"
	default:
		if err := h.cache.Ping(c.Context()); err != nil {
			logger.Get().Warn("Health check: cache ping failed", zap.Error(err))
			report["cache"] = "down"
		} else {
			report["cache"] = "up"
		}
	}

	return c.Status(status).JSON(report)
}
