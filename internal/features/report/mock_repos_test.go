package report

import (
	"context"
	"sort"
	"sync"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"
	"go-hrms/internal/features/audit"
	"go-hrms/internal/features/sequence"
)

type memoryReportRepo struct {
	mu      sync.Mutex
	reports map[string]*Report
	failErr error
}

func newMemoryReportRepo() *memoryReportRepo {
	return &memoryReportRepo{reports: map[string]*Report{}}
}

func (r *memoryReportRepo) Create(_ context.Context, report *Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	cp := *report
	r.reports[report.ID.Hex()] = &cp
	return nil
}

func (r *memoryReportRepo) Get(_ context.Context, id string) (*Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, apperrors.NotFound("Report with ID %s not found", id)
	}
	cp := *rep
	return &cp, nil
}

func (r *memoryReportRepo) List(_ context.Context, page database.Page) ([]Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	live := []Report{}
	for _, rep := range r.reports {
		if !rep.IsDeleted {
			live = append(live, *rep)
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

func (r *memoryReportRepo) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return apperrors.NotFound("Report with ID %s not found", id)
	}
	rep.IsDeleted = true
	return nil
}

type stubAllocator struct {
	mu     sync.Mutex
	prefix string
	next   int64
	err    error
}

func (a *stubAllocator) Allocate(_ context.Context, seqType string) (*sequence.Allocation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return nil, a.err
	}
	a.next++
	return &sequence.Allocation{Prefix: a.prefix, NextAvailableNumber: a.next}, nil
}

type recordingAudit struct {
	mu      sync.Mutex
	actions []audit.Action
}

func (a *recordingAudit) LogChange(_ context.Context, action audit.Action, _, _ string, _ map[string]audit.Change) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
}

func (a *recordingAudit) ListLogs(context.Context, audit.Filter, int, int) ([]audit.Log, error) {
	return nil, nil
}
