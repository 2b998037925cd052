package sequence

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportSequenceType is the counter report codes are drawn from.
const ReportSequenceType = "Report"

// Sequence is a per-type counter. NextAvailableNumber is the number the next caller of
// Allocate will be handed after the increment.
type Sequence struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type                string             `json:"type" bson:"type"`
	Prefix              string             `json:"prefix" bson:"prefix"`
	NextAvailableNumber int64              `json:"nextAvailableNumber" bson:"nextAvailableNumber"`
	CreatedBy           string             `json:"createdBy" bson:"createdBy"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
}

type CreateSequenceRequest struct {
	Type                string `json:"type" validate:"required,max=64"`
	Prefix              string `json:"prefix" validate:"required,max=16"`
	NextAvailableNumber int64  `json:"nextAvailableNumber" validate:"gte=1"`
}

// Allocation is the counter state returned by Allocate.
type Allocation struct {
	Prefix              string `json:"prefix"`
	NextAvailableNumber int64  `json:"nextAvailableNumber"`
}

// Code is the display code for the number just issued: the prefix followed by the
// counter minus one.
func (a Allocation) Code() string {
	return a.Prefix + strconv.FormatInt(a.NextAvailableNumber-1, 10)
}
