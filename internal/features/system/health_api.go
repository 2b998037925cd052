package system

import (
	"context"
	"time"

	"go-hrms/internal/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is the part of the database handle the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type mongoPinger struct {
	db *database.MongodbDB
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.db.DB.Client().Ping(ctx, nil)
}

type HealthApi struct {
	store  Pinger
	logger *zap.Logger
}

func NewHealthApi(mongodb *database.MongodbDB, logger *zap.Logger) *HealthApi {
	return &HealthApi{store: mongoPinger{db: mongodb}, logger: logger}
}

// Setup registers health check route
func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/health", h.HealthCheck)
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Check if the server is up and the database answers
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "OK"
// @Failure      503  {string}  string  "database unavailable"
// @Router       /health [get]
func (h *HealthApi) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).SendString("database unavailable")
	}
	return c.SendString("OK")
}
