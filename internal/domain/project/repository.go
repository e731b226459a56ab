package project

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, project *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter *types.ProjectFilter) ([]*Project, error)
	Count(ctx context.Context, filter *types.ProjectFilter) (int, error)
	Update(ctx context.Context, project *Project) error
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)

	// Children. Each write is an independent insert/update.
	AddUnitConfiguration(ctx context.Context, unit *UnitConfiguration) error
	RemoveUnitConfiguration(ctx context.Context, projectID, unitID string) error
	ListUnitConfigurations(ctx context.Context, projectID string) ([]*UnitConfiguration, error)

	AddMedia(ctx context.Context, media *Media) error
	RemoveMedia(ctx context.Context, projectID, mediaID string) error
	ListMedia(ctx context.Context, projectID string) ([]*Media, error)

	AddDocument(ctx context.Context, document *Document) error
	RemoveDocument(ctx context.Context, projectID, documentID string) error
	ListDocuments(ctx context.Context, projectID string) ([]*Document, error)

	GetStatistics(ctx context.Context) (*Statistics, error)
	// AveragePriceByCity returns the mean of the mid price
	// ((price_min+price_max)/2) of non-archived projects in the city.
	AveragePriceByCity(ctx context.Context, cityID string) (*decimal.Decimal, error)
	CountByCity(ctx context.Context, cityID string) (int, error)
}
