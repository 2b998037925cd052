package snapshot

import (
	"go-hrms/internal/config"
	"go-hrms/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SnapshotApi struct {
	controller *SnapshotController
	config     *config.Config
}

func NewSnapshotApi(controller *SnapshotController, config *config.Config) *SnapshotApi {
	return &SnapshotApi{controller: controller, config: config}
}

func (h *SnapshotApi) Setup(app *fiber.App) {
	group := app.Group("/api/snapshots", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Get("/templates/:id", h.controller.GetTemplate)
	group.Patch("/templates/:id", h.controller.UpdateTemplate)
	group.Get("/:templateId", h.controller.Snapshot)
	group.Get("/:templateId/export", h.controller.Export)
}
