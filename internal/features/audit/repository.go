package audit

import (
	"context"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuditRepository interface {
	Create(ctx context.Context, log Log) error
	List(ctx context.Context, filter Filter, page database.Page) ([]Log, error)
}

type AuditRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAuditRepository(mongodb *database.MongodbDB) AuditRepository {
	return &AuditRepositoryImpl{
		Collection: mongodb.DB.Collection(database.AuditLogsCollection),
	}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, log Log) error {
	_, err := r.Collection.InsertOne(ctx, log)
	return apperrors.Store(err, "insert audit log")
}

func (r *AuditRepositoryImpl) List(ctx context.Context, filter Filter, page database.Page) ([]Log, error) {
	query := bson.M{}
	if filter.Module != "" {
		query["module"] = filter.Module
	}
	if filter.RecordID != "" {
		query["record_id"] = filter.RecordID
	}
	page.Sort = bson.D{{Key: "timestamp", Value: -1}}
	return database.FindPage[Log](ctx, r.Collection, query, page)
}
