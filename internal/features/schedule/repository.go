package schedule

import (
	"context"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleRepository interface {
	Create(ctx context.Context, s *ScheduleReport) error
	Get(ctx context.Context, id string) (*ScheduleReport, error)
	Update(ctx context.Context, id string, fields bson.M) error
	List(ctx context.Context, page database.Page) ([]ScheduleReport, error)
}

type ScheduleRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewScheduleRepository(mongodb *database.MongodbDB) ScheduleRepository {
	return &ScheduleRepositoryImpl{
		Collection: mongodb.DB.Collection(database.ScheduleReportsCollection),
	}
}

func (r *ScheduleRepositoryImpl) Create(ctx context.Context, s *ScheduleReport) error {
	_, err := r.Collection.InsertOne(ctx, s)
	return apperrors.Store(err, "insert scheduled report")
}

func (r *ScheduleRepositoryImpl) Get(ctx context.Context, id string) (*ScheduleReport, error) {
	return database.FindByID[ScheduleReport](ctx, r.Collection, id, "Scheduled report")
}

func (r *ScheduleRepositoryImpl) Update(ctx context.Context, id string, fields bson.M) error {
	return database.SetFields(ctx, r.Collection, id, "Scheduled report", fields)
}

func (r *ScheduleRepositoryImpl) List(ctx context.Context, page database.Page) ([]ScheduleReport, error) {
	page.Sort = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	return database.FindPage[ScheduleReport](ctx, r.Collection, database.NotDeleted, page)
}
