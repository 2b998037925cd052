package report

import (
	"go-hrms/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	ReportService ReportService
}

func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// Create godoc
// @Summary Create a report
// @Tags reports
// @Accept json
// @Produce json
// @Param report body CreateReportRequest true "Report"
// @Success 201 {object} Report
// @Failure 400 {object} map[string]string
// @Router /api/reports [post]
func (c *ReportController) Create(ctx *fiber.Ctx) error {
	var req CreateReportRequest
	if err := api.BindJSON(ctx, &req); err != nil {
		return api.RespondError(ctx, err)
	}

	report, err := c.ReportService.CreateReport(ctx.UserContext(), req)
	if err != nil {
		return api.RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Report created successfully",
		"report":  report,
	})
}

// List godoc
// @Summary List reports
// @Tags reports
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(10)
// @Success 200 {object} ListResult
// @Router /api/reports [get]
func (c *ReportController) List(ctx *fiber.Ctx) error {
	page, limit, err := api.Pagination(ctx)
	if err != nil {
		return api.RespondError(ctx, err)
	}

	result, err := c.ReportService.ListReports(ctx.UserContext(), page, limit)
	if err != nil {
		return api.RespondError(ctx, err)
	}
	return ctx.JSON(result)
}

// Delete godoc
// @Summary Soft-delete a report
// @Tags reports
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/reports/{id} [delete]
func (c *ReportController) Delete(ctx *fiber.Ctx) error {
	if err := c.ReportService.DeleteReport(ctx.UserContext(), ctx.Params("id")); err != nil {
		return api.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Report deleted successfully"})
}
