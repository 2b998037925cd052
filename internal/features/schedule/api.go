package schedule

import (
	"go-hrms/internal/config"
	"go-hrms/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ScheduleApi struct {
	controller *ScheduleController
	config     *config.Config
}

func NewScheduleApi(controller *ScheduleController, config *config.Config) *ScheduleApi {
	return &ScheduleApi{controller: controller, config: config}
}

func (h *ScheduleApi) Setup(app *fiber.App) {
	group := app.Group("/api/schedules", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Post("/report/:reportId", h.controller.Create)
	group.Get("/", h.controller.List)
	group.Patch("/:id", h.controller.Update)
	group.Delete("/:id", h.controller.Delete)
	group.Get("/:id/render", h.controller.Render)
}
