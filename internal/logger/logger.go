package logger

import (
	"context"

	"go-hrms/internal/config"
	"go-hrms/internal/database"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewLogger builds the service logger. When LOG_TO_DB is set every entry is also
// forwarded to the logs collection.
func NewLogger(lc fx.Lifecycle, cfg *config.Config, mongodb *database.MongodbDB) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Caller function names are persisted with each DB entry.
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	baseLogger = baseLogger.With(zap.String("app", cfg.AppId))

	if !cfg.LogToDB {
		return baseLogger, nil
	}

	dbWriter := NewDBLogWriter(mongodb.DB.Collection(database.LogsCollection), cfg.AppId)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			dbWriter.Close()
			return baseLogger.Sync()
		},
	})

	return zap.New(NewDBCore(baseLogger.Core(), dbWriter), zap.AddCaller()), nil
}
