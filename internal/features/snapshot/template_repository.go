package snapshot

import (
	"context"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateRepository interface {
	Get(ctx context.Context, id string) (*Template, error)
	// SetFlags writes only the supplied flags.
	SetFlags(ctx context.Context, id string, flags map[string]bool) error
}

type TemplateRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewTemplateRepository(mongodb *database.MongodbDB) TemplateRepository {
	return &TemplateRepositoryImpl{
		Collection: mongodb.DB.Collection(database.SnapshotTemplatesCollection),
	}
}

func (r *TemplateRepositoryImpl) Get(ctx context.Context, id string) (*Template, error) {
	tmpl, err := database.FindOne[Template](ctx, r.Collection, database.IDFilter(id), "Template")
	if err != nil {
		return nil, err
	}
	if tmpl.ID == "" {
		tmpl.ID = id
	}
	return tmpl, nil
}

func (r *TemplateRepositoryImpl) SetFlags(ctx context.Context, id string, flags map[string]bool) error {
	set := bson.M{}
	for k, v := range flags {
		set[k] = v
	}
	res, err := r.Collection.UpdateOne(ctx, database.IDFilter(id), bson.M{"$set": set})
	if err != nil {
		return apperrors.Store(err, "update template")
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Template not found")
	}
	return nil
}
