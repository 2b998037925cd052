package employee

import (
	"context"

	"go-hrms/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EmployeeRepository reads the three collections an employee snapshot joins.
type EmployeeRepository interface {
	ListActive(ctx context.Context, page database.Page) ([]Employee, error)
	CountActive(ctx context.Context) (int64, error)
	GetGeneral(ctx context.Context, id string) (*General, error)
	GetProfessional(ctx context.Context, id string) (*Professional, error)
}

type EmployeeRepositoryImpl struct {
	Employees     *mongo.Collection
	General       *mongo.Collection
	Professionals *mongo.Collection
}

func NewEmployeeRepository(mongodb *database.MongodbDB) EmployeeRepository {
	return &EmployeeRepositoryImpl{
		Employees:     mongodb.DB.Collection(database.EmployeesCollection),
		General:       mongodb.DB.Collection(database.GeneralCollection),
		Professionals: mongodb.DB.Collection(database.ProfessionalCollection),
	}
}

// ListActive returns non-deleted employees in _id order so page windows are stable.
func (r *EmployeeRepositoryImpl) ListActive(ctx context.Context, page database.Page) ([]Employee, error) {
	page.Sort = bson.D{{Key: "_id", Value: 1}}
	return database.FindPage[Employee](ctx, r.Employees, database.NotDeleted, page)
}

func (r *EmployeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	return database.Count(ctx, r.Employees, database.NotDeleted)
}

func (r *EmployeeRepositoryImpl) GetGeneral(ctx context.Context, id string) (*General, error) {
	return database.FindOne[General](ctx, r.General, database.IDFilter(id), "general record "+id)
}

func (r *EmployeeRepositoryImpl) GetProfessional(ctx context.Context, id string) (*Professional, error) {
	return database.FindOne[Professional](ctx, r.Professionals, database.IDFilter(id), "professional record "+id)
}
