package report

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportType string

const (
	TypeEmployeeSnapshot    ReportType = "Employees Snapshot Report"
	TypeProvidentFund       ReportType = "Provident Fund Report"
	TypeEmployeeDeclaration ReportType = "Employee Declaration Report"
	TypePayslipSummary      ReportType = "Payslip Summary Report"
	TypePayslipComponent    ReportType = "Payslip Component Report"
	TypeAttendance          ReportType = "Attendance Time log Report"
	TypeAttendanceSummary   ReportType = "Attendance Summary Report"
	TypeLeave               ReportType = "Leave Report"
)

var reportTypes = []ReportType{
	TypeEmployeeSnapshot,
	TypeProvidentFund,
	TypeEmployeeDeclaration,
	TypePayslipSummary,
	TypePayslipComponent,
	TypeAttendance,
	TypeAttendanceSummary,
	TypeLeave,
}

func (t ReportType) Valid() bool {
	for _, rt := range reportTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// Report is a report definition. Reports are never removed, only flagged deleted.
type Report struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Snum        string             `json:"Snum" bson:"Snum"`
	Type        ReportType         `json:"type" bson:"type"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	IsDeleted   bool               `json:"isDeleted" bson:"isDeleted"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type CreateReportRequest struct {
	Type        ReportType `json:"type" validate:"required"`
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
}

type ListResult struct {
	Reports []Report `json:"reports"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int      `json:"total"`
}
