package snapshot

import (
	"context"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/config"
	"go-hrms/internal/features/employee"
	"go-hrms/pkg/tabular"

	"go.uber.org/zap"
)

// File is an encoded snapshot ready to be sent or attached.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

type SnapshotService interface {
	Snapshot(ctx context.Context, templateID string, q Query) (*Result, error)
	// Export encodes every matching row. An empty result is an EmptyResult error and no
	// file is produced.
	Export(ctx context.Context, templateID string, q Query, format tabular.Format) (*File, error)
}

type SnapshotServiceImpl struct {
	Projector *Projector
	Logger    *zap.Logger
}

func NewSnapshotService(employees employee.EmployeeRepository, templates TemplateService, cfg *config.Config, logger *zap.Logger) SnapshotService {
	return &SnapshotServiceImpl{
		Projector: &Projector{
			Employees: employees,
			Templates: templates,
			Workers:   cfg.ProjectorWorkers,
		},
		Logger: logger,
	}
}

func (s *SnapshotServiceImpl) Snapshot(ctx context.Context, templateID string, q Query) (*Result, error) {
	result, err := s.Projector.Run(ctx, templateID, q)
	if err != nil {
		s.Logger.Error("Error building employee snapshot", zap.String("templateId", templateID), zap.Error(err))
		return nil, err
	}
	s.Logger.Debug("Employee snapshot built",
		zap.String("templateId", templateID),
		zap.Int("rows", len(result.Rows)),
		zap.Int64("total", result.Total),
	)
	return result, nil
}

func (s *SnapshotServiceImpl) Export(ctx context.Context, templateID string, q Query, format tabular.Format) (*File, error) {
	result, err := s.Snapshot(ctx, templateID, q)
	if err != nil {
		return nil, err
	}
	if len(result.Rows) == 0 {
		return nil, apperrors.EmptyResult("No employees found")
	}

	buf, err := tabular.Encode(result.Rows, format, "Employees")
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Employee snapshot exported",
		zap.String("templateId", templateID),
		zap.String("format", string(format)),
		zap.Int("rows", len(result.Rows)),
	)
	return &File{
		Filename:    "employee_snapshot" + format.Extension(),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}
