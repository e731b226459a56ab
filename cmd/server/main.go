package main

import (
	"context"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api"
	v1 "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/v1"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/auth"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/cache"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/config"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/repository"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/s3"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/sentry"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/service"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
	"go.uber.org/fx"

	_ "github.com/Trela-Inc/trelaxadminadmin-sub000/docs/swagger"
	"github.com/gin-gonic/gin"
)

// @title TrelaX Admin API
// @version 1.0
// @description Back-office API for real estate master data, builders, agents and projects
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Enter your token in the format **Bearer &lt;token&gt;**

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewClient,

			// Auth
			auth.NewProvider,

			// File storage
			s3.NewService,

			// Repositories
			repository.NewMasterRepository,
			repository.NewBuilderRepository,
			repository.NewAgentRepository,
			repository.NewProjectRepository,
			repository.NewFileRepository,

			// Services
			service.NewServiceParams,
			service.NewMasterService,
			service.NewCityService,
			service.NewLocationService,
			service.NewAmenityService,
			service.NewPropertyTypeService,
			service.NewFloorService,
			service.NewAuthService,
			service.NewBuilderService,
			service.NewAgentService,
			service.NewProjectService,
			service.NewFileService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			runMigrations,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	params service.ServiceParams,
	masterService service.MasterService,
	cityService service.CityService,
	locationService service.LocationService,
	amenityService service.AmenityService,
	propertyTypeService service.PropertyTypeService,
	floorService service.FloorService,
	authService service.AuthService,
	builderService service.BuilderService,
	agentService service.AgentService,
	projectService service.ProjectService,
	fileService service.FileService,
) api.Handlers {
	// Towers, rooms and washrooms share the numeric master service type,
	// so their instances are built here rather than provided individually.
	towerService := service.NewTowerService(params, masterService)
	roomService := service.NewRoomService(params, masterService)
	washroomService := service.NewWashroomService(params, masterService)

	return api.Handlers{
		Health: v1.NewHealthHandler(logger),
		Auth:   v1.NewAuthHandler(authService, logger),

		City:         v1.NewCityHandler(cityService, logger),
		Location:     v1.NewLocationHandler(locationService, logger),
		Amenity:      v1.NewAmenityHandler(amenityService, logger),
		PropertyType: v1.NewPropertyTypeHandler(propertyTypeService, logger),
		Floor:        v1.NewFloorHandler(floorService, logger),
		Tower:        v1.NewTowerHandler(towerService, logger),
		Room:         v1.NewRoomHandler(roomService, logger),
		Washroom:     v1.NewWashroomHandler(washroomService, logger),

		Builder: v1.NewBuilderHandler(builderService, logger),
		Agent:   v1.NewAgentHandler(agentService, logger),
		Project: v1.NewProjectHandler(projectService, logger),
		File:    v1.NewFileHandler(fileService, logger),
	}
}

func provideRouter(
	handlers api.Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	authProvider auth.Provider,
) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger, authProvider)
}

func runMigrations(client *postgres.Client, cfg *config.Configuration, logger *logger.Logger) error {
	if !cfg.Postgres.AutoMigrate {
		return nil
	}
	logger.Info("Running database migrations")
	return client.Migrate()
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	logger *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Infow("Starting server", "address", cfg.Server.Address)
				if err := r.Run(cfg.Server.Address); err != nil {
					logger.Fatalw("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down server")
			return nil
		},
	})
}
