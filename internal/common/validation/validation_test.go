package validation

import (
	"testing"

	"go-hrms/internal/common/apperrors"

	"github.com/stretchr/testify/assert"
)

type recipientRequest struct {
	Subject string   `json:"subject" validate:"required"`
	To      []string `json:"to" validate:"required,min=1,dive,email"`
	Kind    string   `json:"kind" validate:"omitempty,oneof=Daily Weekly"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(recipientRequest{To: []string{"not-an-email"}, Kind: "Yearly"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "subject: is required")
	assert.Contains(t, err.Error(), "to[0]: must be a valid email address")
	assert.Contains(t, err.Error(), "kind: must be one of: Daily Weekly")
}

func TestStructAcceptsValidInput(t *testing.T) {
	err := Struct(recipientRequest{Subject: "Monthly payroll", To: []string{"hr@example.com"}})
	assert.NoError(t, err)
}
