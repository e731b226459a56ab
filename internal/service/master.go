package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/cache"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// UsageChecker is consulted before a record is archived. A non-nil error
// blocks the archive. Archiving never cascades: a city with locations
// archives cleanly and its locations stay visible.
type UsageChecker interface {
	CheckUsage(ctx context.Context, record *master.MasterRecord) error
}

// MasterService is the generic store every per-type service is built on.
// It owns id generation, uniqueness checks, soft deletes and pagination;
// the per-type services own field semantics.
type MasterService interface {
	Create(ctx context.Context, record *master.MasterRecord) (*master.MasterRecord, error)
	Get(ctx context.Context, masterType types.MasterType, id string) (*master.MasterRecord, error)
	List(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) ([]*master.MasterRecord, int, error)
	Update(ctx context.Context, record *master.MasterRecord) (*master.MasterRecord, error)
	Remove(ctx context.Context, masterType types.MasterType, id string) error
	GetStatistics(ctx context.Context, masterType types.MasterType) (*master.Statistics, error)

	// RegisterUsageChecker installs the archive hook for one type
	RegisterUsageChecker(masterType types.MasterType, checker UsageChecker)
}

type masterService struct {
	ServiceParams

	usageCheckers map[types.MasterType]UsageChecker
}

func NewMasterService(params ServiceParams) MasterService {
	return &masterService{
		ServiceParams: params,
		usageCheckers: make(map[types.MasterType]UsageChecker),
	}
}

func (s *masterService) RegisterUsageChecker(masterType types.MasterType, checker UsageChecker) {
	s.usageCheckers[masterType] = checker
}

func (s *masterService) Create(ctx context.Context, record *master.MasterRecord) (*master.MasterRecord, error) {
	if err := record.Type.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid master type").
			Mark(ierr.ErrValidation)
	}

	if err := s.checkUniqueness(ctx, record, ""); err != nil {
		return nil, err
	}

	if err := s.MasterRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.Logger.Infow("created master record",
		"type", record.Type,
		"id", record.ID,
		"name", record.Name,
	)
	return record, nil
}

func (s *masterService) Get(ctx context.Context, masterType types.MasterType, id string) (*master.MasterRecord, error) {
	if cached, ok := s.Cache.Get(ctx, masterCacheKey(masterType, id)); ok {
		if record, ok := cached.(*master.MasterRecord); ok {
			return record.Clone(), nil
		}
	}

	record, err := s.MasterRepo.Get(ctx, masterType, id)
	if err != nil {
		return nil, err
	}

	// The cache keeps its own copy and callers get their own; edits that
	// never reach the repository must not be visible to later reads.
	s.Cache.Set(ctx, masterCacheKey(masterType, id), record.Clone(), 5*time.Minute)
	return record.Clone(), nil
}

func (s *masterService) List(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) ([]*master.MasterRecord, int, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, 0, ierr.WithError(err).
			WithHint("Invalid filter").
			Mark(ierr.ErrValidation)
	}

	records, err := s.MasterRepo.List(ctx, masterType, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.MasterRepo.Count(ctx, masterType, filter)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (s *masterService) Update(ctx context.Context, record *master.MasterRecord) (*master.MasterRecord, error) {
	if err := s.checkUniqueness(ctx, record, record.ID); err != nil {
		return nil, err
	}

	record.UpdatedAt = time.Now().UTC()
	record.UpdatedBy = types.GetUserID(ctx)

	if err := s.MasterRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, masterCacheKey(record.Type, record.ID))
	return record, nil
}

func (s *masterService) Remove(ctx context.Context, masterType types.MasterType, id string) error {
	record, err := s.MasterRepo.Get(ctx, masterType, id)
	if err != nil {
		return err
	}

	if checker, ok := s.usageCheckers[masterType]; ok {
		if err := checker.CheckUsage(ctx, record); err != nil {
			return err
		}
	}

	record = record.Clone()
	record.Status = types.StatusArchived
	record.UpdatedAt = time.Now().UTC()
	record.UpdatedBy = types.GetUserID(ctx)

	if err := s.MasterRepo.Update(ctx, record); err != nil {
		return err
	}

	s.Cache.Delete(ctx, masterCacheKey(masterType, id))
	s.Logger.Infow("archived master record", "type", masterType, "id", id)
	return nil
}

func (s *masterService) GetStatistics(ctx context.Context, masterType types.MasterType) (*master.Statistics, error) {
	return s.MasterRepo.GetStatistics(ctx, masterType)
}

// checkUniqueness runs the advisory name and code checks. The partial unique
// indexes remain the final authority; these checks exist for friendly errors
// on the common path.
func (s *masterService) checkUniqueness(ctx context.Context, record *master.MasterRecord, excludeID string) error {
	exists, err := s.MasterRepo.ExistsByName(ctx, record.Type, record.Name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return ierr.NewErrorf("%s with name %s already exists", record.Type, record.Name).
			WithHintf("A %s named %q already exists", record.Type, record.Name).
			Mark(ierr.ErrAlreadyExists)
	}

	if record.Code != "" {
		exists, err = s.MasterRepo.ExistsByCode(ctx, record.Type, record.Code, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return ierr.NewErrorf("%s with code %s already exists", record.Type, record.Code).
				WithHintf("A %s with code %q already exists", record.Type, record.Code).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	return nil
}

func masterCacheKey(masterType types.MasterType, id string) string {
	return fmt.Sprintf("%s%s:%s", cache.PrefixMaster, masterType, id)
}
