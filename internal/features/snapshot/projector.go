package snapshot

import (
	"context"
	"errors"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"
	"go-hrms/internal/features/employee"
	"go-hrms/pkg/tabular"

	"golang.org/x/sync/errgroup"
)

// Query selects a snapshot window. A zero Limit fetches every employee.
type Query struct {
	Page    int
	Limit   int
	Filters Filters
}

// Result is one projected snapshot page. Total counts every live employee, before
// pagination and filtering.
type Result struct {
	Page  int           `json:"page,omitempty"`
	Limit int           `json:"limit,omitempty"`
	Total int64         `json:"total"`
	Rows  []tabular.Row `json:"employees"`
}

var resolvers = map[string]func(rec *employee.Record) any{
	"name":            func(r *employee.Record) any { return r.General.FullName() },
	"emp_id":          func(r *employee.Record) any { return r.General.EmpCode },
	"status":          func(r *employee.Record) any { return r.General.Status },
	"joining_date":    func(r *employee.Record) any { return r.Professional.JoiningDate.Raw },
	"designation":     func(r *employee.Record) any { return r.Professional.Designation },
	"department":      func(r *employee.Record) any { return r.Professional.Department },
	"location":        func(r *employee.Record) any { return r.Professional.Location },
	"gender":          func(r *employee.Record) any { return r.General.Gender },
	"email":           func(r *employee.Record) any { return r.General.PrimaryEmail },
	"pan":             func(r *employee.Record) any { return r.General.PanNum },
	"gross_salary":    func(r *employee.Record) any { return r.Professional.CtcAnnual.Raw },
	"lossOfPay":       func(r *employee.Record) any { return r.Professional.LossOfPay.Raw },
	"taxPaid":         func(r *employee.Record) any { return r.Professional.TaxPaid.Raw },
	"netPay":          func(r *employee.Record) any { return r.Professional.NetPay.Raw },
	"leave":           func(r *employee.Record) any { return r.Professional.LeaveType },
	"leaveAdjustment": func(r *employee.Record) any { return r.Professional.LeaveAdjustment },
	"leaveBalance":    func(r *employee.Record) any { return r.Professional.LeaveBalance },
	"workingPattern":  func(r *employee.Record) any { return r.Professional.WorkWeek },
	"phone": func(r *employee.Record) any {
		if r.General.PhoneNum == nil {
			return nil
		}
		return r.General.PhoneNum.Num
	},
}

// Project builds the row for rec with every field of Fields present, null when the
// template disables it.
func Project(tmpl *Template, rec *employee.Record) tabular.Row {
	row := make(tabular.Row, 0, len(Fields))
	for _, f := range Fields {
		var v any
		if tmpl.Enabled(f) {
			v = resolvers[f](rec)
		}
		row = append(row, tabular.Field{Key: f, Value: v})
	}
	return row
}

// Projector joins employees with their general and professional records, filters them
// and projects them through a template.
type Projector struct {
	Employees employee.EmployeeRepository
	Templates TemplateService
	Workers   int
}

// Run resolves the template, fetches the page of live employees, joins each one and
// keeps the rows that pass every filter. Pagination applies to the raw employee set, so
// a page can hold fewer rows than Limit.
func (p *Projector) Run(ctx context.Context, templateID string, q Query) (*Result, error) {
	tmpl, err := p.Templates.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	var window database.Page
	if q.Limit > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		window = database.OffsetPage(page, q.Limit, nil)
	}

	emps, err := p.Employees.ListActive(ctx, window)
	if err != nil {
		return nil, err
	}
	total, err := p.Employees.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	records, err := p.join(ctx, emps)
	if err != nil {
		return nil, err
	}

	filters := q.Filters.Compile()
	rows := []tabular.Row{}
	for i := range records {
		if !MatchAll(filters, &records[i]) {
			continue
		}
		rows = append(rows, Project(tmpl, &records[i]))
	}

	return &Result{Page: q.Page, Limit: q.Limit, Total: total, Rows: rows}, nil
}

// join looks up the linked records of every employee concurrently. Results keep the
// order of emps.
func (p *Projector) join(ctx context.Context, emps []employee.Employee) ([]employee.Record, error) {
	records := make([]employee.Record, len(emps))

	g, gctx := errgroup.WithContext(ctx)
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i := range emps {
		i := i
		g.Go(func() error {
			rec := employee.Record{Employee: emps[i]}

			general, err := p.Employees.GetGeneral(gctx, emps[i].GeneralID)
			if err = linked(err); err != nil {
				return err
			}
			if general != nil {
				rec.General = *general
			}

			professional, err := p.Employees.GetProfessional(gctx, emps[i].ProfessionalID)
			if err = linked(err); err != nil {
				return err
			}
			if professional != nil {
				rec.Professional = *professional
			}

			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// linked drops NotFound so a missing linked record degrades to an empty one.
func linked(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}
