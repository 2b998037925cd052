package report

import (
	"context"
	"time"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/common/validation"
	"go-hrms/internal/database"
	"go-hrms/internal/features/audit"
	"go-hrms/internal/features/sequence"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Allocator hands out report codes.
type Allocator interface {
	Allocate(ctx context.Context, seqType string) (*sequence.Allocation, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, req CreateReportRequest) (*Report, error)
	GetReport(ctx context.Context, id string) (*Report, error)
	DeleteReport(ctx context.Context, id string) error
	ListReports(ctx context.Context, page, limit int) (*ListResult, error)
}

type ReportServiceImpl struct {
	ReportRepo   ReportRepository
	Sequences    Allocator
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewReportService(reportRepo ReportRepository, sequences Allocator, auditService audit.AuditService, logger *zap.Logger) ReportService {
	return &ReportServiceImpl{
		ReportRepo:   reportRepo,
		Sequences:    sequences,
		AuditService: auditService,
		Logger:       logger,
	}
}

// CreateReport allocates a report code and persists the report. Nothing is written when
// the allocation fails.
func (s *ReportServiceImpl) CreateReport(ctx context.Context, req CreateReportRequest) (*Report, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.Type.Valid() {
		return nil, apperrors.Validation("type: unknown report type %q", req.Type)
	}

	alloc, err := s.Sequences.Allocate(ctx, sequence.ReportSequenceType)
	if err != nil {
		s.Logger.Error("Failed to allocate report code", zap.Error(err))
		return nil, err
	}

	report := &Report{
		ID:          primitive.NewObjectID(),
		Snum:        alloc.Code(),
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		IsDeleted:   false,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if err := s.ReportRepo.Create(ctx, report); err != nil {
		s.Logger.Error("Error creating report", zap.Error(err))
		return nil, err
	}

	s.Logger.Info("Report created successfully",
		zap.String("reportId", report.ID.Hex()),
		zap.String("snum", report.Snum),
	)
	s.AuditService.LogChange(ctx, audit.ActionCreate, database.ReportsCollection, report.ID.Hex(), map[string]audit.Change{
		"report": {New: report},
	})
	return report, nil
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (*Report, error) {
	return s.ReportRepo.Get(ctx, id)
}

func (s *ReportServiceImpl) DeleteReport(ctx context.Context, id string) error {
	if err := s.ReportRepo.SoftDelete(ctx, id); err != nil {
		s.Logger.Warn("Error deleting report", zap.String("reportId", id), zap.Error(err))
		return err
	}

	s.Logger.Info("Report deleted successfully", zap.String("reportId", id))
	s.AuditService.LogChange(ctx, audit.ActionDelete, database.ReportsCollection, id, map[string]audit.Change{
		"isDeleted": {Old: false, New: true},
	})
	return nil
}

// ListReports returns one page of live reports. Total is the size of the returned page.
func (s *ReportServiceImpl) ListReports(ctx context.Context, page, limit int) (*ListResult, error) {
	if page < 1 || limit < 1 {
		return nil, apperrors.Validation("page and limit must be positive integers")
	}

	reports, err := s.ReportRepo.List(ctx, database.OffsetPage(page, limit, nil))
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		s.Logger.Debug("No reports found", zap.Int("page", page))
	}

	return &ListResult{
		Reports: reports,
		Page:    page,
		Limit:   limit,
		Total:   len(reports),
	}, nil
}
