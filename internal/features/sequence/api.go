package sequence

import (
	"go-hrms/internal/config"
	"go-hrms/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SequenceApi struct {
	controller *SequenceController
	config     *config.Config
}

func NewSequenceApi(controller *SequenceController, config *config.Config) *SequenceApi {
	return &SequenceApi{controller: controller, config: config}
}

func (h *SequenceApi) Setup(app *fiber.App) {
	group := app.Group("/api/sequences", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Post("/", h.controller.Create)
	group.Get("/", h.controller.List)
	group.Put("/increment", h.controller.Increase)
}
