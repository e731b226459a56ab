package gorm

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/agent"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

type agentRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewAgentRepository(client *postgres.Client, log *logger.Logger) agent.Repository {
	return &agentRepository{client: client, log: log}
}

func (r *agentRepository) Create(ctx context.Context, a *agent.Agent) error {
	if err := r.client.WithContext(ctx).Create(a).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("An agent with this email already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create agent").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *agentRepository) Get(ctx context.Context, id string) (*agent.Agent, error) {
	var a agent.Agent
	err := r.client.WithContext(ctx).
		Where("id = ? AND status <> ?", id, types.StatusArchived).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewErrorf("agent with ID %s was not found", id).
				WithHint("The requested agent does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get agent").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *agentRepository) buildQuery(ctx context.Context, filter *types.AgentFilter) *gorm.DB {
	query := r.client.WithContext(ctx).Model(&agent.Agent{})

	if status := filter.GetStatus(); status != nil {
		query = query.Where("status = ?", *status)
	} else {
		query = query.Where("status <> ?", types.StatusArchived)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR agency_name ILIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if filter.AgencyName != "" {
		query = query.Where("agency_name = ?", filter.AgencyName)
	}

	return query
}

func (r *agentRepository) List(ctx context.Context, filter *types.AgentFilter) ([]*agent.Agent, error) {
	if filter == nil {
		filter = types.NewDefaultAgentFilter()
	}

	order := "ASC"
	if filter.GetOrder() == types.OrderDesc {
		order = "DESC"
	}
	column := "name"
	if filter.GetSort() == "created_at" || filter.GetSort() == "updated_at" {
		column = filter.GetSort()
	}

	var agents []*agent.Agent
	err := r.buildQuery(ctx, filter).
		Order(column + " " + order).
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&agents).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list agents").
			Mark(ierr.ErrDatabase)
	}
	return agents, nil
}

func (r *agentRepository) Count(ctx context.Context, filter *types.AgentFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultAgentFilter()
	}

	var count int64
	if err := r.buildQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count agents").
			Mark(ierr.ErrDatabase)
	}
	return int(count), nil
}

func (r *agentRepository) Update(ctx context.Context, a *agent.Agent) error {
	if err := r.client.WithContext(ctx).Save(a).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("An agent with this email already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to update agent").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *agentRepository) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	query := r.client.WithContext(ctx).
		Model(&agent.Agent{}).
		Where("lower(email) = lower(?) AND status <> ?", email, types.StatusArchived)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check agent email uniqueness").
			Mark(ierr.ErrDatabase)
	}
	return count > 0, nil
}
