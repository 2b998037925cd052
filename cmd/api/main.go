package main

import (
	"context"
	"errors"
	"fmt"

	common_api "go-hrms/internal/common/api"
	"go-hrms/internal/cache"
	"go-hrms/internal/config"
	"go-hrms/internal/database"
	"go-hrms/internal/features/audit"
	"go-hrms/internal/features/employee"
	"go-hrms/internal/features/report"
	"go-hrms/internal/features/schedule"
	"go-hrms/internal/features/sequence"
	"go-hrms/internal/features/snapshot"
	"go-hrms/internal/features/system"
	"go-hrms/internal/logger"
	"go-hrms/internal/middleware"
	"go-hrms/pkg/utils"

	_ "go-hrms/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(log))
	app.Use(middleware.CORSMiddleware(cfg))

	return app
}

// AsRoute tags the constructor so Fx adds it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes calls Setup() on every member of the "routes" group.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route, log *zap.Logger) {
	for _, route := range routes {
		log.Debug("Setting up route", zap.String("api", fmt.Sprintf("%T", route)))
		route.Setup(app)
	}
	log.Info("All routes registered successfully", zap.Int("count", len(routes)))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`, ``),
)

// StartServer starts Fiber in a goroutine and shuts it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *zap.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				addr := fmt.Sprintf(":%s", cfg.Port)
				log.Info("Server listening", zap.String("addr", addr))
				if err := app.Listen(addr); err != nil {
					log.Error("Server failed to start", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

// @title           HRMS Reports API
// @version         1.0
// @description     Report catalog, scheduled deliveries and employee snapshots.

// @host            localhost:8000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,
			cache.NewCache,

			// Repositories
			audit.NewAuditRepository,
			employee.NewEmployeeRepository,
			sequence.NewSequenceRepository,
			report.NewReportRepository,
			schedule.NewScheduleRepository,
			snapshot.NewTemplateRepository,

			// Services
			audit.NewAuditService,
			sequence.NewSequenceService,
			report.NewReportService,
			snapshot.NewTemplateService,
			snapshot.NewSnapshotService,
			schedule.NewScheduleService,

			// Interface adapters
			func(s sequence.SequenceService) report.Allocator { return s },
			func(s report.ReportService) schedule.ReportLookup { return s },

			// Controllers
			audit.NewAuditController,
			sequence.NewSequenceController,
			report.NewReportController,
			schedule.NewScheduleController,
			snapshot.NewSnapshotController,

			// API routes
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(sequence.NewSequenceApi),
			AsRoute(report.NewReportApi),
			AsRoute(schedule.NewScheduleApi),
			AsRoute(snapshot.NewSnapshotApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			database.EnsureIndexes,
		),
	)

	app.Run()
}
