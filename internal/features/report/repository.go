package report

import (
	"context"
	"time"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	// Get returns the report whether or not it is flagged deleted.
	Get(ctx context.Context, id string) (*Report, error)
	List(ctx context.Context, page database.Page) ([]Report, error)
	SoftDelete(ctx context.Context, id string) error
}

type ReportRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewReportRepository(mongodb *database.MongodbDB) ReportRepository {
	return &ReportRepositoryImpl{
		Collection: mongodb.DB.Collection(database.ReportsCollection),
	}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *Report) error {
	_, err := r.Collection.InsertOne(ctx, report)
	return apperrors.Store(err, "insert report")
}

func (r *ReportRepositoryImpl) Get(ctx context.Context, id string) (*Report, error) {
	return database.FindByID[Report](ctx, r.Collection, id, "Report")
}

// List returns non-deleted reports, newest first.
func (r *ReportRepositoryImpl) List(ctx context.Context, page database.Page) ([]Report, error) {
	page.Sort = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	return database.FindPage[Report](ctx, r.Collection, database.NotDeleted, page)
}

func (r *ReportRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	return database.SetFields(ctx, r.Collection, id, "Report", bson.M{
		"isDeleted": true,
		"updatedAt": time.Now().UnixMilli(),
	})
}
