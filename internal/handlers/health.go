package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialsync/socialdb/internal/config"
	"github.com/socialsync/socialdb/internal/services"
	"gorm.io/gorm"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// Health handles GET /api/health
// @Summary Liveness check
// @Description Fixed OK response proving the process is serving requests
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
	})
}

// Status handles GET /api/health/status
// @Summary Readiness check
// @Description Reports database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health/status [get]
func (h *HealthHandler) Status(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
