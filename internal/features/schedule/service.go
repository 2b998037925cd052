package schedule

import (
	"context"
	"errors"
	"time"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/common/validation"
	"go-hrms/internal/config"
	"go-hrms/internal/database"
	"go-hrms/internal/features/audit"
	"go-hrms/internal/features/report"
	"go-hrms/internal/features/snapshot"
	"go-hrms/pkg/tabular"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ReportLookup resolves the report a schedule belongs to.
type ReportLookup interface {
	GetReport(ctx context.Context, id string) (*report.Report, error)
}

type ScheduleService interface {
	CreateSchedule(ctx context.Context, reportID string, req CreateScheduleRequest) (*ScheduleReport, error)
	// UpdateSchedule merges the supplied fields. The next run is recomputed only when the
	// update carries frequency, startDate, hours or minutes.
	UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (*ScheduleReport, error)
	DeleteSchedule(ctx context.Context, id string) error
	ListSchedules(ctx context.Context, page, limit int) (*ListResult, error)
	// Render encodes the schedule's report attachment in the schedule's format.
	Render(ctx context.Context, id string) (*snapshot.File, error)
}

type ScheduleServiceImpl struct {
	Repo         ScheduleRepository
	Reports      ReportLookup
	Snapshots    snapshot.SnapshotService
	AuditService audit.AuditService
	Logger       *zap.Logger

	Location   *time.Location
	TemplateID string
	RowLimit   int
	Now        func() time.Time
}

func NewScheduleService(
	repo ScheduleRepository,
	reports ReportLookup,
	snapshots snapshot.SnapshotService,
	auditService audit.AuditService,
	cfg *config.Config,
	logger *zap.Logger,
) ScheduleService {
	return &ScheduleServiceImpl{
		Repo:         repo,
		Reports:      reports,
		Snapshots:    snapshots,
		AuditService: auditService,
		Logger:       logger,
		Location:     cfg.Location,
		TemplateID:   cfg.SnapshotTemplateID,
		RowLimit:     cfg.RenderRowLimit,
		Now:          time.Now,
	}
}

func (s *ScheduleServiceImpl) nextRun(freq Frequency, startDate string, hours, minutes ClockValue, now time.Time) (int64, error) {
	h, m, err := ParseClock(hours, minutes)
	if err != nil {
		return 0, err
	}
	next, err := ComputeNextRun(freq, startDate, h, m, now, s.Location)
	if err != nil {
		return 0, err
	}
	return next.UnixMilli(), nil
}

func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, reportID string, req CreateScheduleRequest) (*ScheduleReport, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	rep, err := s.Reports.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if rep.IsDeleted {
		return nil, apperrors.NotFound("Report with ID %s not found", reportID)
	}

	now := s.Now()
	nextRun, err := s.nextRun(req.Frequency, req.StartDate, req.Hours, req.Minutes, now)
	if err != nil {
		return nil, err
	}

	sched := &ScheduleReport{
		ID:          primitive.NewObjectID(),
		ReportID:    reportID,
		Frequency:   req.Frequency,
		StartDate:   req.StartDate,
		Hours:       req.Hours,
		Minutes:     req.Minutes,
		Format:      req.Format,
		To:          req.To,
		Cc:          req.Cc,
		Subject:     req.Subject,
		Body:        req.Body,
		NextRunDate: nextRun,
		IsDeleted:   false,
		CreatedAt:   now.UnixMilli(),
	}
	if err := s.Repo.Create(ctx, sched); err != nil {
		s.Logger.Error("Error creating schedule report", zap.String("reportId", reportID), zap.Error(err))
		return nil, err
	}

	s.Logger.Info("Schedule report created successfully",
		zap.String("id", sched.ID.Hex()),
		zap.String("reportId", reportID),
		zap.Int64("nextRunDate", nextRun),
	)
	s.AuditService.LogChange(ctx, audit.ActionCreate, database.ScheduleReportsCollection, sched.ID.Hex(), map[string]audit.Change{
		"scheduleReport": {New: sched},
	})
	return sched, nil
}

func (s *ScheduleServiceImpl) live(ctx context.Context, id string) (*ScheduleReport, error) {
	sched, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sched.IsDeleted {
		return nil, apperrors.NotFound("Scheduled report with ID %s not found", id)
	}
	return sched, nil
}

func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (*ScheduleReport, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.To != nil && len(req.To) == 0 {
		return nil, apperrors.Validation("to: must not be empty")
	}

	existing, err := s.live(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *existing
	fields := bson.M{}
	changes := map[string]audit.Change{}

	set := func(key string, old, val any) {
		fields[key] = val
		changes[key] = audit.Change{Old: old, New: val}
	}
	if req.Frequency != nil {
		set("frequency", updated.Frequency, *req.Frequency)
		updated.Frequency = *req.Frequency
	}
	if req.StartDate != nil {
		set("startDate", updated.StartDate, *req.StartDate)
		updated.StartDate = *req.StartDate
	}
	if req.Hours != nil {
		set("hours", updated.Hours, *req.Hours)
		updated.Hours = *req.Hours
	}
	if req.Minutes != nil {
		set("minutes", updated.Minutes, *req.Minutes)
		updated.Minutes = *req.Minutes
	}
	if req.Format != nil {
		set("format", updated.Format, *req.Format)
		updated.Format = *req.Format
	}
	if req.To != nil {
		set("to", updated.To, req.To)
		updated.To = req.To
	}
	if req.Cc != nil {
		set("cc", updated.Cc, req.Cc)
		updated.Cc = req.Cc
	}
	if req.Subject != nil {
		set("subject", updated.Subject, *req.Subject)
		updated.Subject = *req.Subject
	}
	if req.Body != nil {
		set("body", updated.Body, *req.Body)
		updated.Body = *req.Body
	}

	now := s.Now()
	if req.TouchesRecurrence() {
		nextRun, err := s.nextRun(updated.Frequency, updated.StartDate, updated.Hours, updated.Minutes, now)
		if err != nil {
			return nil, err
		}
		set("nextRunDate", updated.NextRunDate, nextRun)
		updated.NextRunDate = nextRun
	}
	updated.UpdatedAt = now.UnixMilli()
	fields["updatedAt"] = updated.UpdatedAt

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		s.Logger.Error("Error updating scheduled report", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.Logger.Info("Scheduled report updated successfully",
		zap.String("id", id),
		zap.Bool("recomputed", req.TouchesRecurrence()),
	)
	s.AuditService.LogChange(ctx, audit.ActionUpdate, database.ScheduleReportsCollection, id, changes)
	return &updated, nil
}

func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	err := s.Repo.Update(ctx, id, bson.M{
		"isDeleted": true,
		"updatedAt": s.Now().UnixMilli(),
	})
	if err != nil {
		s.Logger.Warn("Error deleting scheduled report", zap.String("id", id), zap.Error(err))
		return err
	}

	s.Logger.Info("Scheduled report deleted successfully", zap.String("id", id))
	s.AuditService.LogChange(ctx, audit.ActionDelete, database.ScheduleReportsCollection, id, map[string]audit.Change{
		"isDeleted": {Old: false, New: true},
	})
	return nil
}

// ListSchedules returns one page of live schedules, newest first, each with its next
// run rendered for display. Total is the size of the returned page.
func (s *ScheduleServiceImpl) ListSchedules(ctx context.Context, page, limit int) (*ListResult, error) {
	if page < 1 || limit < 1 {
		return nil, apperrors.Validation("page and limit must be positive integers")
	}

	scheds, err := s.Repo.List(ctx, database.OffsetPage(page, limit, nil))
	if err != nil {
		return nil, err
	}

	views := make([]ScheduleView, 0, len(scheds))
	for _, sched := range scheds {
		views = append(views, ScheduleView{
			ScheduleReport: sched,
			NextRunAt:      sched.NextRunDate,
			NextRunDate:    DisplayRunDate(sched.NextRunDate, s.Location),
		})
	}

	return &ListResult{
		Reports: views,
		Page:    page,
		Limit:   limit,
		Total:   len(views),
	}, nil
}

func (s *ScheduleServiceImpl) Render(ctx context.Context, id string) (*snapshot.File, error) {
	sched, err := s.live(ctx, id)
	if err != nil {
		return nil, err
	}

	var format tabular.Format
	switch sched.Format {
	case FormatCSV:
		format = tabular.FormatCSV
	case FormatExcel:
		format = tabular.FormatExcel
	default:
		return nil, apperrors.Validation("unsupported format: %s", sched.Format)
	}
	if s.TemplateID == "" {
		return nil, apperrors.Validation("no snapshot template configured for scheduled reports")
	}

	file, err := s.Snapshots.Export(ctx, s.TemplateID, snapshot.Query{Page: 1, Limit: s.RowLimit}, format)
	if errors.Is(err, apperrors.ErrEmptyResult) {
		s.Logger.Info("Scheduled report has no rows", zap.String("id", id))
	}
	if err != nil {
		return nil, err
	}

	file.Filename = "report_" + sched.ReportID + format.Extension()
	return file, nil
}
