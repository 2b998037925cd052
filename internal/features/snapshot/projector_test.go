package snapshot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/config"
	"go-hrms/internal/features/employee"
	"go-hrms/pkg/tabular"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newSnapshotService(emps *memoryEmployees, tmpls ...Template) SnapshotService {
	templates := NewTemplateService(newMemoryTemplates(tmpls...), newMemoryCache(), nopAudit{}, zap.NewNop())
	return NewSnapshotService(emps, templates, &config.Config{ProjectorWorkers: 4}, zap.NewNop())
}

func empCodes(rows []tabular.Row) []any {
	out := []any{}
	for _, r := range rows {
		v, _ := r.Get("emp_id")
		out = append(out, v)
	}
	return out
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAllFalseTemplateYieldsNullRows(t *testing.T) {
	emps := newMemoryEmployees()
	emps.add("E1", employee.Professional{CtcAnnual: amount("60000"), Designation: "Engineer"}, false)
	emps.add("E2", employee.Professional{}, false)
	svc := newSnapshotService(emps, Template{ID: "blank"})

	result, err := svc.Snapshot(context.Background(), "blank", Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	for _, row := range result.Rows {
		assert.Equal(t, Fields, row.Keys())
		for _, f := range row {
			assert.Nil(t, f.Value, f.Key)
		}
	}
}

func TestProjectResolvesFieldsFromJoinedRecords(t *testing.T) {
	rec := &employee.Record{
		General: employee.General{
			Name:         &employee.Name{First: " Asha", Last: "Rao "},
			EmpCode:      "EMP001",
			Status:       "Active",
			Gender:       "Female",
			PrimaryEmail: "asha@example.com",
			PanNum:       "ABCDE1234F",
			PhoneNum:     &employee.Phone{Code: "+91", Num: "9876543210"},
		},
		Professional: employee.Professional{
			JoiningDate:  employee.Date{Raw: "2022-07-01"},
			Designation:  "Engineer",
			Department:   "R&D",
			Location:     "Pune",
			CtcAnnual:    amount("1200000"),
			LeaveType:    "Casual",
			LeaveBalance: int32(12),
			WorkWeek:     "Mon-Fri",
		},
	}
	tmpl := allOn("t")
	tmpl.Pan = false

	row := Project(&tmpl, rec)

	get := func(k string) any { v, _ := row.Get(k); return v }
	assert.Equal(t, "Asha Rao", get("name"))
	assert.Equal(t, "EMP001", get("emp_id"))
	assert.Equal(t, "2022-07-01", get("joining_date"))
	assert.Equal(t, "1200000", get("gross_salary"))
	assert.Equal(t, "asha@example.com", get("email"))
	assert.Equal(t, "Casual", get("leave"))
	assert.Equal(t, int32(12), get("leaveBalance"))
	assert.Equal(t, "Mon-Fri", get("workingPattern"))
	assert.Equal(t, "9876543210", get("phone"))
	assert.Nil(t, get("pan"))
	assert.Nil(t, get("netPay"))
}

func TestGrossPayRangeIsInclusive(t *testing.T) {
	emps := newMemoryEmployees()
	emps.add("below", employee.Professional{CtcAnnual: amount("49999.99")}, false)
	emps.add("from", employee.Professional{CtcAnnual: amount("50000")}, false)
	emps.add("inside", employee.Professional{CtcAnnual: amount("75000")}, false)
	emps.add("to", employee.Professional{CtcAnnual: amount("100000")}, false)
	emps.add("above", employee.Professional{CtcAnnual: amount("100000.01")}, false)
	emps.add("missing", employee.Professional{}, false)
	emps.add("garbled", employee.Professional{CtcAnnual: employee.Amount{Raw: "n/a"}}, false)
	svc := newSnapshotService(emps, allOn("t"))

	result, err := svc.Snapshot(context.Background(), "t", Query{
		Page:  1,
		Limit: 50,
		Filters: Filters{
			GrossPay: &Range[decimal.Decimal]{From: dec("50000"), To: dec("100000")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"from", "inside", "to", "garbled"}, empCodes(result.Rows))
}

func TestPaginationAppliesBeforeFiltering(t *testing.T) {
	emps := newMemoryEmployees()
	for i := 1; i <= 15; i++ {
		designation := "Engineer"
		if i%2 == 0 {
			designation = "Analyst"
		}
		emps.add(fmt.Sprintf("E%02d", i), employee.Professional{Designation: designation}, false)
	}
	emps.add("gone", employee.Professional{Designation: "Engineer"}, true)
	svc := newSnapshotService(emps, allOn("t"))

	result, err := svc.Snapshot(context.Background(), "t", Query{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(15), result.Total)
	assert.Equal(t, []any{"E11", "E12", "E13", "E14", "E15"}, empCodes(result.Rows))

	result, err = svc.Snapshot(context.Background(), "t", Query{
		Page:    2,
		Limit:   10,
		Filters: Filters{Designation: "Engineer"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), result.Total)
	assert.Equal(t, []any{"E11", "E13", "E15"}, empCodes(result.Rows))
	assert.LessOrEqual(t, len(result.Rows), 5)
}

func TestMissingLinkedRecordsDegradeToEmpty(t *testing.T) {
	emps := newMemoryEmployees()
	emps.employees = append(emps.employees, employee.Employee{
		ID:             primitive.NewObjectID(),
		GeneralID:      "nowhere",
		ProfessionalID: "nowhere",
	})
	svc := newSnapshotService(emps, allOn("t"))

	result, err := svc.Snapshot(context.Background(), "t", Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	name, _ := result.Rows[0].Get("name")
	assert.Equal(t, "", name)
	pay, _ := result.Rows[0].Get("gross_salary")
	assert.Nil(t, pay)
}

func TestJoinStoreFailureFailsSnapshot(t *testing.T) {
	emps := newMemoryEmployees()
	emps.add("E1", employee.Professional{}, false)
	emps.failGeneral = apperrors.Store(errors.New("socket closed"), "find general")
	svc := newSnapshotService(emps, allOn("t"))

	_, err := svc.Snapshot(context.Background(), "t", Query{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, apperrors.ErrStore)
}

func TestUnknownTemplateIsNotFound(t *testing.T) {
	svc := newSnapshotService(newMemoryEmployees())

	_, err := svc.Snapshot(context.Background(), "nope", Query{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJoiningDateAndEqualityFilters(t *testing.T) {
	day := func(s string) employee.Date {
		tm, ok := employee.ParseDate(s)
		return employee.Date{Raw: s, Time: tm, Valid: ok}
	}
	emps := newMemoryEmployees()
	emps.add("early", employee.Professional{JoiningDate: day("2020-12-31"), Location: "Pune"}, false)
	emps.add("first", employee.Professional{JoiningDate: day("2021-01-01"), Location: "Pune"}, false)
	emps.add("last", employee.Professional{JoiningDate: day("2021-12-31"), Location: "Pune"}, false)
	emps.add("elsewhere", employee.Professional{JoiningDate: day("2021-06-01"), Location: "Delhi"}, false)
	emps.add("undated", employee.Professional{Location: "Pune"}, false)
	svc := newSnapshotService(emps, allOn("t"))

	from := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	result, err := svc.Snapshot(context.Background(), "t", Query{
		Filters: Filters{
			JoiningDate: &Range[time.Time]{From: &from, To: &to},
			Location:    "Pune",
			Status:      "Active",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"first", "last", "undated"}, empCodes(result.Rows))
}

func TestExport(t *testing.T) {
	emps := newMemoryEmployees()
	emps.add("E1", employee.Professional{CtcAnnual: amount("60000")}, false)
	svc := newSnapshotService(emps, Template{ID: "t", EmpID: true, GrossSalary: true})

	file, err := svc.Export(context.Background(), "t", Query{}, tabular.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "employee_snapshot.csv", file.Filename)
	assert.Contains(t, string(file.Data), "name,emp_id,status,")
	assert.Contains(t, string(file.Data), ",E1,,,,,,,,,60000,")

	_, err = svc.Export(context.Background(), "t", Query{Filters: Filters{Status: "Inactive"}}, tabular.FormatExcel)
	assert.ErrorIs(t, err, apperrors.ErrEmptyResult)
}
