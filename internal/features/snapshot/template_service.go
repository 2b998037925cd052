package snapshot

import (
	"context"
	"sort"

	"go-hrms/internal/cache"
	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"
	"go-hrms/internal/features/audit"

	"go.uber.org/zap"
)

type TemplateService interface {
	GetTemplate(ctx context.Context, id string) (*Template, error)
	// UpdateTemplate merges the supplied flags into the template; unknown field names are
	// rejected and omitted flags keep their stored value.
	UpdateTemplate(ctx context.Context, id string, flags map[string]bool) (*Template, error)
}

type TemplateServiceImpl struct {
	Repo         TemplateRepository
	Cache        cache.Cache
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewTemplateService(repo TemplateRepository, c cache.Cache, auditService audit.AuditService, logger *zap.Logger) TemplateService {
	return &TemplateServiceImpl{Repo: repo, Cache: c, AuditService: auditService, Logger: logger}
}

func cacheKey(id string) string {
	return "template:" + id
}

func (s *TemplateServiceImpl) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var cached Template
	found, err := s.Cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		s.Logger.Warn("Template cache read failed", zap.String("templateId", id), zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	tmpl, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, cacheKey(id), tmpl); err != nil {
		s.Logger.Warn("Template cache write failed", zap.String("templateId", id), zap.Error(err))
	}
	return tmpl, nil
}

func (s *TemplateServiceImpl) UpdateTemplate(ctx context.Context, id string, flags map[string]bool) (*Template, error) {
	var unknown []string
	for k := range flags {
		if !IsField(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, apperrors.Validation("unknown template fields: %v", unknown)
	}
	if len(flags) == 0 {
		return nil, apperrors.Validation("no template fields supplied")
	}

	if err := s.Repo.SetFlags(ctx, id, flags); err != nil {
		s.Logger.Error("Error updating template", zap.String("templateId", id), zap.Error(err))
		return nil, err
	}
	if err := s.Cache.Delete(ctx, cacheKey(id)); err != nil {
		s.Logger.Warn("Template cache invalidation failed", zap.String("templateId", id), zap.Error(err))
	}

	changes := make(map[string]audit.Change, len(flags))
	for k, v := range flags {
		changes[k] = audit.Change{New: v}
	}
	s.AuditService.LogChange(ctx, audit.ActionUpdate, database.SnapshotTemplatesCollection, id, changes)
	s.Logger.Info("Template updated successfully", zap.String("templateId", id))

	return s.Repo.Get(ctx, id)
}
