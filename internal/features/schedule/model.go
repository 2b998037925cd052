package schedule

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Frequency string

const (
	Daily   Frequency = "Daily"
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
)

type Format string

const (
	FormatCSV   Format = "CSV"
	FormatPDF   Format = "PDF"
	FormatExcel Format = "Excel"
)

// ClockValue is an hour or minute. Clients send it either as a JSON string or a number;
// it is stored as a string.
type ClockValue string

func (v *ClockValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*v = ClockValue(s)
		return nil
	}
	if string(b) == "null" {
		*v = ""
		return nil
	}
	*v = ClockValue(b)
	return nil
}

// UnmarshalBSONValue reads an hour or minute stored either as a string or as a number.
// Whole numbers become their integer text.
func (v *ClockValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Null, bsontype.Undefined:
		*v = ""
	case bsontype.String:
		*v = ClockValue(rv.StringValue())
	case bsontype.Int32:
		*v = ClockValue(strconv.FormatInt(int64(rv.Int32()), 10))
	case bsontype.Int64:
		*v = ClockValue(strconv.FormatInt(rv.Int64(), 10))
	case bsontype.Double:
		f := rv.Double()
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			*v = ClockValue(strconv.FormatInt(int64(f), 10))
		} else {
			*v = ClockValue(strconv.FormatFloat(f, 'f', -1, 64))
		}
	default:
		return fmt.Errorf("cannot decode %s into a clock value", t)
	}
	return nil
}

// ScheduleReport is a recurring delivery of a report. NextRunDate is written only by
// this package and is always later than the instant it was computed at.
type ScheduleReport struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	ReportID    string             `json:"reportId" bson:"reportId"`
	Frequency   Frequency          `json:"frequency" bson:"frequency"`
	StartDate   string             `json:"startDate" bson:"startDate"`
	Hours       ClockValue         `json:"hours" bson:"hours"`
	Minutes     ClockValue         `json:"minutes" bson:"minutes"`
	Format      Format             `json:"format" bson:"format"`
	To          []string           `json:"to" bson:"to"`
	Cc          []string           `json:"cc,omitempty" bson:"cc,omitempty"`
	Subject     string             `json:"subject" bson:"subject"`
	Body        string             `json:"body" bson:"body"`
	NextRunDate int64              `json:"nextRunDate" bson:"nextRunDate"`
	IsDeleted   bool               `json:"isDeleted" bson:"isDeleted"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type CreateScheduleRequest struct {
	Frequency Frequency  `json:"frequency" validate:"required,oneof=Daily Weekly Monthly"`
	StartDate string     `json:"startDate" validate:"required"`
	Hours     ClockValue `json:"hours" validate:"required,numeric"`
	Minutes   ClockValue `json:"minutes" validate:"required,numeric"`
	Format    Format     `json:"format" validate:"required,oneof=CSV PDF Excel"`
	To        []string   `json:"to" validate:"required,min=1,dive,email"`
	Cc        []string   `json:"cc" validate:"omitempty,dive,email"`
	Subject   string     `json:"subject" validate:"required,max=255"`
	Body      string     `json:"body"`
}

// UpdateScheduleRequest carries only the fields to change; nil means unchanged.
type UpdateScheduleRequest struct {
	Frequency *Frequency  `json:"frequency" validate:"omitempty,oneof=Daily Weekly Monthly"`
	StartDate *string     `json:"startDate" validate:"omitempty,min=1"`
	Hours     *ClockValue `json:"hours" validate:"omitempty,numeric"`
	Minutes   *ClockValue `json:"minutes" validate:"omitempty,numeric"`
	Format    *Format     `json:"format" validate:"omitempty,oneof=CSV PDF Excel"`
	To        []string    `json:"to" validate:"omitempty,min=1,dive,email"`
	Cc        []string    `json:"cc" validate:"omitempty,dive,email"`
	Subject   *string     `json:"subject" validate:"omitempty,min=1,max=255"`
	Body      *string     `json:"body"`
}

// TouchesRecurrence reports whether the update carries any field the next run depends on.
func (r UpdateScheduleRequest) TouchesRecurrence() bool {
	return r.Frequency != nil || r.StartDate != nil || r.Hours != nil || r.Minutes != nil
}

// ScheduleView is the list representation: the stored schedule plus its next run as a
// display string.
type ScheduleView struct {
	ScheduleReport
	NextRunAt   int64  `json:"nextRunAt"`
	NextRunDate string `json:"nextRunDate"`
}

type ListResult struct {
	Reports []ScheduleView `json:"reports"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Total   int            `json:"total"`
}
