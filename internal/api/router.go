package api

import (
	v1 "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/v1"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/auth"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/config"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter mounts all API routes. Everything under /v1 except login
// requires a bearer token.
func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	log *logger.Logger,
	authProvider auth.Provider,
) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/v1")
	public.POST("/auth/login", handlers.Auth.Login)

	private := router.Group("/v1")
	private.Use(middleware.AuthenticateMiddleware(authProvider, log))

	cities := private.Group("/cities")
	{
		cities.POST("", handlers.City.CreateCity)
		cities.GET("", handlers.City.ListCities)
		cities.GET("/near", handlers.City.NearbyCities)
		cities.GET("/statistics", handlers.City.GetCityStatistics)
		cities.GET("/:id", handlers.City.GetCity)
		cities.PUT("/:id", handlers.City.UpdateCity)
		cities.DELETE("/:id", handlers.City.DeleteCity)
	}

	locations := private.Group("/locations")
	{
		locations.POST("", handlers.Location.CreateLocation)
		locations.GET("", handlers.Location.ListLocations)
		locations.GET("/near", handlers.Location.NearbyLocations)
		locations.GET("/statistics", handlers.Location.GetLocationStatistics)
		locations.GET("/:id", handlers.Location.GetLocation)
		locations.PUT("/:id", handlers.Location.UpdateLocation)
		locations.DELETE("/:id", handlers.Location.DeleteLocation)
	}

	amenities := private.Group("/amenities")
	{
		amenities.POST("", handlers.Amenity.CreateAmenity)
		amenities.GET("", handlers.Amenity.ListAmenities)
		amenities.GET("/statistics", handlers.Amenity.GetAmenityStatistics)
		amenities.GET("/:id", handlers.Amenity.GetAmenity)
		amenities.PUT("/:id", handlers.Amenity.UpdateAmenity)
		amenities.DELETE("/:id", handlers.Amenity.DeleteAmenity)
	}

	propertyTypes := private.Group("/property-types")
	{
		propertyTypes.POST("", handlers.PropertyType.CreatePropertyType)
		propertyTypes.GET("", handlers.PropertyType.ListPropertyTypes)
		propertyTypes.GET("/statistics", handlers.PropertyType.GetPropertyTypeStatistics)
		propertyTypes.GET("/:id", handlers.PropertyType.GetPropertyType)
		propertyTypes.PUT("/:id", handlers.PropertyType.UpdatePropertyType)
		propertyTypes.DELETE("/:id", handlers.PropertyType.DeletePropertyType)
	}

	floors := private.Group("/floors")
	{
		floors.POST("", handlers.Floor.CreateFloor)
		floors.GET("", handlers.Floor.ListFloors)
		floors.GET("/statistics", handlers.Floor.GetFloorStatistics)
		floors.GET("/:id", handlers.Floor.GetFloor)
		floors.PUT("/:id", handlers.Floor.UpdateFloor)
		floors.DELETE("/:id", handlers.Floor.DeleteFloor)
	}

	registerNumericRoutes(private.Group("/towers"), handlers.Tower)
	registerNumericRoutes(private.Group("/rooms"), handlers.Room)
	registerNumericRoutes(private.Group("/washrooms"), handlers.Washroom)

	builders := private.Group("/builders")
	{
		builders.POST("", handlers.Builder.CreateBuilder)
		builders.GET("", handlers.Builder.ListBuilders)
		builders.GET("/:id", handlers.Builder.GetBuilder)
		builders.PUT("/:id", handlers.Builder.UpdateBuilder)
		builders.DELETE("/:id", handlers.Builder.DeleteBuilder)
	}

	agents := private.Group("/agents")
	{
		agents.POST("", handlers.Agent.CreateAgent)
		agents.GET("", handlers.Agent.ListAgents)
		agents.GET("/:id", handlers.Agent.GetAgent)
		agents.PUT("/:id", handlers.Agent.UpdateAgent)
		agents.DELETE("/:id", handlers.Agent.DeleteAgent)
	}

	projects := private.Group("/projects")
	{
		projects.POST("", handlers.Project.CreateProject)
		projects.GET("", handlers.Project.ListProjects)
		projects.GET("/statistics", handlers.Project.GetProjectStatistics)
		projects.GET("/:id", handlers.Project.GetProject)
		projects.PUT("/:id", handlers.Project.UpdateProject)
		projects.DELETE("/:id", handlers.Project.DeleteProject)

		projects.POST("/:id/units", handlers.Project.AddUnitConfiguration)
		projects.DELETE("/:id/units/:unit_id", handlers.Project.RemoveUnitConfiguration)
		projects.POST("/:id/media", handlers.Project.AddMedia)
		projects.DELETE("/:id/media/:media_id", handlers.Project.RemoveMedia)
		projects.POST("/:id/documents", handlers.Project.AddDocument)
		projects.DELETE("/:id/documents/:document_id", handlers.Project.RemoveDocument)
	}

	files := private.Group("/files")
	{
		files.POST("", handlers.File.UploadFile)
		files.GET("", handlers.File.ListFiles)
		files.GET("/:id", handlers.File.GetFile)
		files.GET("/:id/download", handlers.File.GetDownloadURL)
		files.DELETE("/:id", handlers.File.DeleteFile)
	}

	return router
}

func registerNumericRoutes(group *gin.RouterGroup, handler *v1.NumericMasterHandler) {
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET("/statistics", handler.GetStatistics)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
