package database

import (
	"context"
	"time"

	"go-hrms/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Collection names shared by the report, schedule and snapshot features.
const (
	ReportsCollection           = "reports"
	ScheduleReportsCollection   = "scheduleReports"
	EmployeesCollection         = "employees"
	GeneralCollection           = "general"
	ProfessionalCollection      = "professional"
	SnapshotTemplatesCollection = "employeeSnapshotTemplates"
	SequencesCollection         = "sequences"
	AuditLogsCollection         = "audit_logs"
	LogsCollection              = "logs"
)

// MongodbDB holds the database handle every repository is built from.
type MongodbDB struct {
	DB *mongo.Database
}

// NewDatabase creates a new MongoDB database connection with lifecycle management
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*MongodbDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.DBName)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return &MongodbDB{DB: db}, nil
}

// EnsureIndexes creates the indexes the list and lookup queries rely on.
func EnsureIndexes(lc fx.Lifecycle, mongodb *MongodbDB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				for coll, models := range indexModels() {
					if _, err := mongodb.DB.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
						logger.Warn("Failed to ensure indexes", zap.String("collection", coll), zap.Error(err))
					}
				}
			}()
			return nil
		},
	})
}
