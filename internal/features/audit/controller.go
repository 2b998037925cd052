package audit

import (
	"go-hrms/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type AuditController struct {
	Service AuditService
}

func NewAuditController(service AuditService) *AuditController {
	return &AuditController{Service: service}
}

// ListLogs godoc
// @Summary List audit logs
// @Tags audit
// @Produce json
// @Param module query string false "Collection name"
// @Param record_id query string false "Record ID"
// @Router /api/audit-logs [get]
func (ctrl *AuditController) ListLogs(c *fiber.Ctx) error {
	page, limit, err := api.Pagination(c)
	if err != nil {
		return api.RespondError(c, err)
	}

	filter := Filter{
		Module:   c.Query("module"),
		RecordID: c.Query("record_id"),
	}

	logs, err := ctrl.Service.ListLogs(c.UserContext(), filter, page, limit)
	if err != nil {
		return api.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"page":  page,
		"limit": limit,
	})
}
