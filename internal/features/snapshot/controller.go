package snapshot

import (
	"fmt"
	"time"

	"go-hrms/internal/common/api"
	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/features/employee"
	"go-hrms/pkg/tabular"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SnapshotController struct {
	Snapshots SnapshotService
	Templates TemplateService
}

func NewSnapshotController(snapshots SnapshotService, templates TemplateService) *SnapshotController {
	return &SnapshotController{Snapshots: snapshots, Templates: templates}
}

// GetTemplate godoc
// @Summary Get a snapshot template
// @Tags snapshots
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} Template
// @Router /api/snapshots/templates/{id} [get]
func (ctrl *SnapshotController) GetTemplate(c *fiber.Ctx) error {
	tmpl, err := ctrl.Templates.GetTemplate(c.UserContext(), c.Params("id"))
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.JSON(tmpl)
}

// UpdateTemplate godoc
// @Summary Update snapshot template flags
// @Tags snapshots
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param flags body map[string]bool true "Flags to change"
// @Success 200 {object} Template
// @Router /api/snapshots/templates/{id} [patch]
func (ctrl *SnapshotController) UpdateTemplate(c *fiber.Ctx) error {
	var flags map[string]bool
	if err := c.BodyParser(&flags); err != nil {
		return api.RespondError(c, apperrors.Validation("Invalid request body: template flags must be booleans"))
	}

	tmpl, err := ctrl.Templates.UpdateTemplate(c.UserContext(), c.Params("id"), flags)
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Template updated successfully",
		"template": tmpl,
	})
}

// Snapshot godoc
// @Summary Employee snapshot through a template
// @Tags snapshots
// @Produce json
// @Param templateId path string true "Template ID"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(10)
// @Success 200 {object} Result
// @Router /api/snapshots/{templateId} [get]
func (ctrl *SnapshotController) Snapshot(c *fiber.Ctx) error {
	page, limit, err := api.Pagination(c)
	if err != nil {
		return api.RespondError(c, err)
	}
	filters, err := ParseFilters(c)
	if err != nil {
		return api.RespondError(c, err)
	}

	result, err := ctrl.Snapshots.Snapshot(c.UserContext(), c.Params("templateId"), Query{
		Page:    page,
		Limit:   limit,
		Filters: filters,
	})
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.JSON(result)
}

// Export godoc
// @Summary Download an employee snapshot
// @Tags snapshots
// @Produce octet-stream
// @Param templateId path string true "Template ID"
// @Param format query string false "csv or excel" default(excel)
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Router /api/snapshots/{templateId}/export [get]
func (ctrl *SnapshotController) Export(c *fiber.Ctx) error {
	format, err := tabular.ParseFormat(c.Query("format", string(tabular.FormatExcel)))
	if err != nil {
		return api.RespondError(c, apperrors.Validation("%s", err.Error()))
	}
	filters, err := ParseFilters(c)
	if err != nil {
		return api.RespondError(c, err)
	}

	file, err := ctrl.Snapshots.Export(c.UserContext(), c.Params("templateId"), Query{Filters: filters}, format)
	if err != nil {
		return api.RespondError(c, err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", file.Filename))
	return c.Send(file.Data)
}

// ParseFilters reads the snapshot filter query parameters.
func ParseFilters(c *fiber.Ctx) (Filters, error) {
	var fs Filters
	var err error

	if fs.JoiningDate, err = dateRange(c, "joiningDate"); err != nil {
		return fs, err
	}
	if fs.GrossPay, err = amountRange(c, "grossPay"); err != nil {
		return fs, err
	}
	if fs.LossOfPay, err = amountRange(c, "lossOfPay"); err != nil {
		return fs, err
	}
	if fs.TaxPaid, err = amountRange(c, "taxPaid"); err != nil {
		return fs, err
	}

	fs.Designation = c.Query("designation")
	fs.Department = c.Query("department")
	fs.Location = c.Query("location")
	fs.Status = c.Query("status")
	return fs, nil
}

func dateRange(c *fiber.Ctx, name string) (*Range[time.Time], error) {
	parse := func(key string) (*time.Time, error) {
		raw := c.Query(key)
		if raw == "" {
			return nil, nil
		}
		t, ok := employee.ParseDate(raw)
		if !ok {
			return nil, apperrors.Validation("invalid '%s' query parameter: expected YYYY-MM-DD", key)
		}
		return &t, nil
	}
	return bounds(name, parse)
}

func amountRange(c *fiber.Ctx, name string) (*Range[decimal.Decimal], error) {
	parse := func(key string) (*decimal.Decimal, error) {
		raw := c.Query(key)
		if raw == "" {
			return nil, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, apperrors.Validation("invalid '%s' query parameter: must be a number", key)
		}
		return &d, nil
	}
	return bounds(name, parse)
}

func bounds[T any](name string, parse func(key string) (*T, error)) (*Range[T], error) {
	from, err := parse(name + "From")
	if err != nil {
		return nil, err
	}
	to, err := parse(name + "To")
	if err != nil {
		return nil, err
	}
	if from == nil && to == nil {
		return nil, nil
	}
	return &Range[T]{From: from, To: to}, nil
}
