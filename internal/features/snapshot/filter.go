package snapshot

import (
	"time"

	"go-hrms/internal/features/employee"

	"github.com/shopspring/decimal"
)

// Filter decides whether a joined employee record belongs in a snapshot.
type Filter interface {
	Match(rec *employee.Record) bool
}

// Range holds optional inclusive bounds.
type Range[T any] struct {
	From *T
	To   *T
}

func (r *Range[T]) empty() bool {
	return r == nil || (r.From == nil && r.To == nil)
}

// RangeFilter keeps records whose extracted value lies within the bounds, both ends
// inclusive. A record whose value cannot be read is kept.
type RangeFilter[T any] struct {
	Range[T]
	Extract func(rec *employee.Record) (T, bool)
	Compare func(a, b T) int
}

func (f RangeFilter[T]) Match(rec *employee.Record) bool {
	v, ok := f.Extract(rec)
	if !ok {
		return true
	}
	if f.From != nil && f.Compare(v, *f.From) < 0 {
		return false
	}
	if f.To != nil && f.Compare(v, *f.To) > 0 {
		return false
	}
	return true
}

// EqualityFilter keeps records whose extracted value is exactly the wanted string.
type EqualityFilter struct {
	Want    string
	Extract func(rec *employee.Record) any
}

func (f EqualityFilter) Match(rec *employee.Record) bool {
	v, ok := f.Extract(rec).(string)
	return ok && v == f.Want
}

// Filters is the fixed set of snapshot constraints. Nil ranges and empty strings
// impose nothing.
type Filters struct {
	JoiningDate *Range[time.Time]
	GrossPay    *Range[decimal.Decimal]
	LossOfPay   *Range[decimal.Decimal]
	TaxPaid     *Range[decimal.Decimal]
	Designation string
	Department  string
	Location    string
	Status      string
}

// Compile turns the set constraints into filters in a fixed order.
func (fs Filters) Compile() []Filter {
	var out []Filter

	if !fs.JoiningDate.empty() {
		out = append(out, RangeFilter[time.Time]{
			Range: *fs.JoiningDate,
			Extract: func(rec *employee.Record) (time.Time, bool) {
				d := rec.Professional.JoiningDate
				return d.Time, d.Valid
			},
			Compare: func(a, b time.Time) int { return a.Compare(b) },
		})
	}

	amounts := []struct {
		r   *Range[decimal.Decimal]
		get func(*employee.Record) employee.Amount
	}{
		{fs.GrossPay, func(rec *employee.Record) employee.Amount { return rec.Professional.CtcAnnual }},
		{fs.LossOfPay, func(rec *employee.Record) employee.Amount { return rec.Professional.LossOfPay }},
		{fs.TaxPaid, func(rec *employee.Record) employee.Amount { return rec.Professional.TaxPaid }},
	}
	for _, a := range amounts {
		if a.r.empty() {
			continue
		}
		get := a.get
		out = append(out, RangeFilter[decimal.Decimal]{
			Range:   *a.r,
			Extract: func(rec *employee.Record) (decimal.Decimal, bool) { return get(rec).Number() },
			Compare: func(a, b decimal.Decimal) int { return a.Cmp(b) },
		})
	}

	equals := []struct {
		want string
		get  func(*employee.Record) any
	}{
		{fs.Designation, func(rec *employee.Record) any { return rec.Professional.Designation }},
		{fs.Department, func(rec *employee.Record) any { return rec.Professional.Department }},
		{fs.Location, func(rec *employee.Record) any { return rec.Professional.Location }},
		{fs.Status, func(rec *employee.Record) any { return rec.General.Status }},
	}
	for _, e := range equals {
		if e.want != "" {
			out = append(out, EqualityFilter{Want: e.want, Extract: e.get})
		}
	}
	return out
}

// MatchAll folds the filters with logical AND.
func MatchAll(filters []Filter, rec *employee.Record) bool {
	for _, f := range filters {
		if !f.Match(rec) {
			return false
		}
	}
	return true
}
