package service

import (
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/auth"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/cache"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/config"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/agent"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/builder"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/project"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/s3"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     *postgres.Client
	S3     s3.Service
	Auth   auth.Provider
	Cache  cache.Cache

	// Repositories
	MasterRepo  master.Repository
	BuilderRepo builder.Repository
	AgentRepo   agent.Repository
	ProjectRepo project.Repository
	FileRepo    file.Repository
}

// NewServiceParams creates a new ServiceParams with all dependencies
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db *postgres.Client,
	s3Service s3.Service,
	authProvider auth.Provider,
	cacheStore cache.Cache,
	masterRepo master.Repository,
	builderRepo builder.Repository,
	agentRepo agent.Repository,
	projectRepo project.Repository,
	fileRepo file.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:      logger,
		Config:      config,
		DB:          db,
		S3:          s3Service,
		Auth:        authProvider,
		Cache:       cacheStore,
		MasterRepo:  masterRepo,
		BuilderRepo: builderRepo,
		AgentRepo:   agentRepo,
		ProjectRepo: projectRepo,
		FileRepo:    fileRepo,
	}
}
