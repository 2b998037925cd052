package sequence

import (
	"go-hrms/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type SequenceController struct {
	Service SequenceService
}

func NewSequenceController(service SequenceService) *SequenceController {
	return &SequenceController{Service: service}
}

// Create godoc
// @Summary Register a sequence counter
// @Tags sequences
// @Accept json
// @Produce json
// @Param sequence body CreateSequenceRequest true "Sequence"
// @Success 201 {object} Sequence
// @Router /api/sequences [post]
func (ctrl *SequenceController) Create(c *fiber.Ctx) error {
	var req CreateSequenceRequest
	if err := api.BindJSON(c, &req); err != nil {
		return api.RespondError(c, err)
	}

	seq, err := ctrl.Service.CreateSequence(c.UserContext(), req)
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Sequence created",
		"sequence": seq,
	})
}

// List godoc
// @Summary List sequence counters
// @Tags sequences
// @Produce json
// @Success 200 {array} Sequence
// @Router /api/sequences [get]
func (ctrl *SequenceController) List(c *fiber.Ctx) error {
	seqs, err := ctrl.Service.ListSequences(c.UserContext())
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.JSON(seqs)
}

// Increase godoc
// @Summary Advance a sequence counter
// @Tags sequences
// @Produce json
// @Param type query string true "Sequence type"
// @Success 200 {object} Allocation
// @Router /api/sequences/increment [put]
func (ctrl *SequenceController) Increase(c *fiber.Ctx) error {
	seqType := c.Query("type")
	if seqType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query param 'type' is required"})
	}

	alloc, err := ctrl.Service.Allocate(c.UserContext(), seqType)
	if err != nil {
		return api.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":         "Sequence for type '" + seqType + "' updated successfully",
		"updatedSequence": alloc,
	})
}
