package schedule

import (
	"context"
	"sort"
	"sync"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"
	"go-hrms/internal/features/audit"
	"go-hrms/internal/features/report"
	"go-hrms/internal/features/snapshot"
	"go-hrms/pkg/tabular"

	"go.mongodb.org/mongo-driver/bson"
)

type memoryScheduleRepo struct {
	mu     sync.Mutex
	scheds map[string]*ScheduleReport
	writes []bson.M
}

func newMemoryScheduleRepo() *memoryScheduleRepo {
	return &memoryScheduleRepo{scheds: map[string]*ScheduleReport{}}
}

func (r *memoryScheduleRepo) Create(_ context.Context, s *ScheduleReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.scheds[s.ID.Hex()] = &cp
	return nil
}

func (r *memoryScheduleRepo) Get(_ context.Context, id string) (*ScheduleReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scheds[id]
	if !ok {
		return nil, apperrors.NotFound("Scheduled report with ID %s not found", id)
	}
	cp := *s
	return &cp, nil
}

// Update applies the subset of fields the service writes.
func (r *memoryScheduleRepo) Update(_ context.Context, id string, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scheds[id]
	if !ok {
		return apperrors.NotFound("Scheduled report with ID %s not found", id)
	}
	r.writes = append(r.writes, fields)
	for k, v := range fields {
		switch k {
		case "isDeleted":
			s.IsDeleted = v.(bool)
		case "nextRunDate":
			s.NextRunDate = v.(int64)
		case "updatedAt":
			s.UpdatedAt = v.(int64)
		case "subject":
			s.Subject = v.(string)
		case "hours":
			s.Hours = v.(ClockValue)
		case "frequency":
			s.Frequency = v.(Frequency)
		}
	}
	return nil
}

func (r *memoryScheduleRepo) List(_ context.Context, page database.Page) ([]ScheduleReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	live := []ScheduleReport{}
	for _, s := range r.scheds {
		if !s.IsDeleted {
			live = append(live, *s)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].CreatedAt > live[j].CreatedAt })
	start := int(page.Offset)
	if start > len(live) {
		start = len(live)
	}
	end := len(live)
	if page.Limit > 0 && start+int(page.Limit) < end {
		end = start + int(page.Limit)
	}
	return live[start:end], nil
}

type memoryReports map[string]report.Report

func (m memoryReports) GetReport(_ context.Context, id string) (*report.Report, error) {
	r, ok := m[id]
	if !ok {
		return nil, apperrors.NotFound("Report with ID %s not found", id)
	}
	return &r, nil
}

type stubSnapshots struct {
	rows       []tabular.Row
	templateID string
	query      snapshot.Query
}

func (s *stubSnapshots) Snapshot(context.Context, string, snapshot.Query) (*snapshot.Result, error) {
	return &snapshot.Result{Rows: s.rows}, nil
}

func (s *stubSnapshots) Export(_ context.Context, templateID string, q snapshot.Query, format tabular.Format) (*snapshot.File, error) {
	s.templateID = templateID
	s.query = q
	if len(s.rows) == 0 {
		return nil, apperrors.EmptyResult("No employees found")
	}
	buf, err := tabular.Encode(s.rows, format, "Employees")
	if err != nil {
		return nil, err
	}
	return &snapshot.File{Filename: "employee_snapshot" + format.Extension(), ContentType: format.ContentType(), Data: buf.Bytes()}, nil
}

type nopAudit struct{}

func (nopAudit) LogChange(context.Context, audit.Action, string, string, map[string]audit.Change) {}
func (nopAudit) ListLogs(context.Context, audit.Filter, int, int) ([]audit.Log, error) {
	return nil, nil
}
