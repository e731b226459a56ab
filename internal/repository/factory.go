package repository

import (
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/agent"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/builder"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/project"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	repo "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/repository/gorm"
)

func NewMasterRepository(client *postgres.Client, log *logger.Logger) master.Repository {
	return repo.NewMasterRepository(client, log)
}

func NewBuilderRepository(client *postgres.Client, log *logger.Logger) builder.Repository {
	return repo.NewBuilderRepository(client, log)
}

func NewAgentRepository(client *postgres.Client, log *logger.Logger) agent.Repository {
	return repo.NewAgentRepository(client, log)
}

func NewProjectRepository(client *postgres.Client, log *logger.Logger) project.Repository {
	return repo.NewProjectRepository(client, log)
}

func NewFileRepository(client *postgres.Client, log *logger.Logger) file.Repository {
	return repo.NewFileRepository(client, log)
}
