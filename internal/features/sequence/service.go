package sequence

import (
	"context"
	"strings"
	"time"

	"go-hrms/internal/common/validation"
	"go-hrms/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type SequenceService interface {
	CreateSequence(ctx context.Context, req CreateSequenceRequest) (*Sequence, error)
	ListSequences(ctx context.Context) ([]Sequence, error)
	// Allocate atomically advances the counter for seqType. It fails with NotFound
	// when no counter is registered for the type.
	Allocate(ctx context.Context, seqType string) (*Allocation, error)
}

type SequenceServiceImpl struct {
	Repo   SequenceRepository
	Logger *zap.Logger
}

func NewSequenceService(repo SequenceRepository, logger *zap.Logger) SequenceService {
	return &SequenceServiceImpl{Repo: repo, Logger: logger}
}

func (s *SequenceServiceImpl) CreateSequence(ctx context.Context, req CreateSequenceRequest) (*Sequence, error) {
	req.Type = strings.TrimSpace(req.Type)
	req.Prefix = strings.TrimSpace(req.Prefix)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	seq := &Sequence{
		ID:                  primitive.NewObjectID(),
		Type:                req.Type,
		Prefix:              req.Prefix,
		NextAvailableNumber: req.NextAvailableNumber,
		CreatedBy:           utils.ActorID(ctx),
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, seq); err != nil {
		s.Logger.Error("Failed to create sequence", zap.String("type", req.Type), zap.Error(err))
		return nil, err
	}

	s.Logger.Info("Sequence created", zap.String("type", seq.Type), zap.String("prefix", seq.Prefix))
	return seq, nil
}

func (s *SequenceServiceImpl) ListSequences(ctx context.Context) ([]Sequence, error) {
	return s.Repo.List(ctx)
}

func (s *SequenceServiceImpl) Allocate(ctx context.Context, seqType string) (*Allocation, error) {
	seq, err := s.Repo.Increase(ctx, seqType)
	if err != nil {
		return nil, err
	}
	return &Allocation{Prefix: seq.Prefix, NextAvailableNumber: seq.NextAvailableNumber}, nil
}
