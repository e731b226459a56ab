package master

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// Repository is the storage contract for master records. Get/List/Count
// operate on non-archived records only, unless the filter explicitly asks
// for a status.
type Repository interface {
	Create(ctx context.Context, record *MasterRecord) error
	Get(ctx context.Context, masterType types.MasterType, id string) (*MasterRecord, error)
	List(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) ([]*MasterRecord, error)
	Count(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) (int, error)
	Update(ctx context.Context, record *MasterRecord) error

	// ExistsByName reports whether a non-archived record of the given type
	// other than excludeID already uses the name. ExistsByCode is the same
	// check for codes.
	ExistsByName(ctx context.Context, masterType types.MasterType, name string, excludeID string) (bool, error)
	ExistsByCode(ctx context.Context, masterType types.MasterType, code string, excludeID string) (bool, error)

	GetStatistics(ctx context.Context, masterType types.MasterType) (*Statistics, error)
	// CountGrouped returns non-archived record counts grouped by the given
	// column (state, country, category, unit).
	CountGrouped(ctx context.Context, masterType types.MasterType, column string) (map[string]int, error)
	// NumericBounds returns the min and max numeric_value among non-archived
	// records of the type; nils when the type holds no numeric values.
	NumericBounds(ctx context.Context, masterType types.MasterType) (*float64, *float64, error)
}
