package postgres

import (
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/agent"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/builder"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/project"
)

// partialUniqueIndexes enforce uniqueness among non-archived rows only, so
// an archived record never blocks reuse of its name or code. These are the
// final authority on uniqueness; the service pre-checks exist only for
// friendly error messages.
var partialUniqueIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_master_records_type_name
		ON master_records (type, lower(name))
		WHERE status <> 'archived'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_master_records_type_code
		ON master_records (type, code)
		WHERE status <> 'archived' AND code <> ''`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_builders_name
		ON builders (lower(name))
		WHERE status <> 'archived'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_agents_email
		ON agents (lower(email))
		WHERE status <> 'archived'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_projects_name
		ON projects (lower(name))
		WHERE status <> 'archived'`,
}

// Migrate creates or updates the schema
func (c *Client) Migrate() error {
	if err := c.DB.AutoMigrate(
		&master.MasterRecord{},
		&builder.Builder{},
		&agent.Agent{},
		&project.Project{},
		&project.UnitConfiguration{},
		&project.Media{},
		&project.Document{},
		&file.File{},
	); err != nil {
		return err
	}

	for _, stmt := range partialUniqueIndexes {
		if err := c.DB.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
