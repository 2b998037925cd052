package audit

import (
	"context"
	"time"

	"go-hrms/internal/database"
	"go-hrms/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AuditService interface {
	// LogChange records a mutation. Failures are logged and never fail the caller's write.
	LogChange(ctx context.Context, action Action, module, recordID string, changes map[string]Change)
	ListLogs(ctx context.Context, filter Filter, page, limit int) ([]Log, error)
}

type AuditServiceImpl struct {
	Repo   AuditRepository
	Logger *zap.Logger
}

func NewAuditService(repo AuditRepository, logger *zap.Logger) AuditService {
	return &AuditServiceImpl{Repo: repo, Logger: logger}
}

func (s *AuditServiceImpl) LogChange(ctx context.Context, action Action, module, recordID string, changes map[string]Change) {
	log := Log{
		ID:        primitive.NewObjectID(),
		Action:    action,
		Module:    module,
		RecordID:  recordID,
		ActorID:   utils.ActorID(ctx),
		Changes:   changes,
		Timestamp: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, log); err != nil {
		s.Logger.Warn("Failed to write audit log",
			zap.String("module", module),
			zap.String("recordId", recordID),
			zap.Error(err),
		)
	}
}

func (s *AuditServiceImpl) ListLogs(ctx context.Context, filter Filter, page, limit int) ([]Log, error) {
	return s.Repo.List(ctx, filter, database.OffsetPage(page, limit, nil))
}
