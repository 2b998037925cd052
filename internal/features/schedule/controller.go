package schedule

import (
	"fmt"

	"go-hrms/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type ScheduleController struct {
	Service ScheduleService
}

func NewScheduleController(service ScheduleService) *ScheduleController {
	return &ScheduleController{Service: service}
}

// Create godoc
// @Summary Schedule a report
// @Tags schedules
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param schedule body CreateScheduleRequest true "Schedule"
// @Success 201 {object} ScheduleReport
// @Failure 404 {object} map[string]string
// @Router /api/schedules/report/{reportId} [post]
func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
	var req CreateScheduleRequest
	if err := api.BindJSON(c, &req); err != nil {
		return api.RespondError(c, err)
	}

	sched, err := ctrl.Service.CreateSchedule(c.UserContext(), c.Params("reportId"), req)
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "Schedule report created successfully",
		"scheduleReport": sched,
	})
}

// List godoc
// @Summary List scheduled reports
// @Tags schedules
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(10)
// @Success 200 {object} ListResult
// @Router /api/schedules [get]
func (ctrl *ScheduleController) List(c *fiber.Ctx) error {
	page, limit, err := api.Pagination(c)
	if err != nil {
		return api.RespondError(c, err)
	}

	result, err := ctrl.Service.ListSchedules(c.UserContext(), page, limit)
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.JSON(result)
}

// Update godoc
// @Summary Update a scheduled report
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param schedule body UpdateScheduleRequest true "Fields to change"
// @Success 200 {object} ScheduleReport
// @Router /api/schedules/{id} [patch]
func (ctrl *ScheduleController) Update(c *fiber.Ctx) error {
	var req UpdateScheduleRequest
	if err := api.BindJSON(c, &req); err != nil {
		return api.RespondError(c, err)
	}

	sched, err := ctrl.Service.UpdateSchedule(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":        "Scheduled report updated successfully",
		"scheduleReport": sched,
	})
}

// Delete godoc
// @Summary Soft-delete a scheduled report
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/schedules/{id} [delete]
func (ctrl *ScheduleController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteSchedule(c.UserContext(), c.Params("id")); err != nil {
		return api.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Scheduled report deleted successfully"})
}

// Render godoc
// @Summary Render the attachment of a scheduled report
// @Tags schedules
// @Produce octet-stream
// @Param id path string true "Schedule ID"
// @Success 200 {file} file
// @Router /api/schedules/{id}/render [get]
func (ctrl *ScheduleController) Render(c *fiber.Ctx) error {
	file, err := ctrl.Service.Render(c.UserContext(), c.Params("id"))
	if err != nil {
		return api.RespondError(c, err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", file.Filename))
	return c.Send(file.Data)
}
