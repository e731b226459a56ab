package main

import (
	"context"
	"log"
	"strconv"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/config"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/repository"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/service"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// Seeds the master tables with a starter data set. Safe to run more
// than once, records that already exist by name are skipped.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	client, err := postgres.NewClient(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}

	if err := client.Migrate(); err != nil {
		logger.Fatalw("Failed to run migrations", "error", err)
	}

	ctx := context.Background()
	repo := repository.NewMasterRepository(client, logger)

	created := 0
	for _, record := range seedRecords(ctx) {
		exists, err := repo.ExistsByName(ctx, record.Type, record.Name, "")
		if err != nil {
			logger.Fatalw("Failed to check existing record", "type", record.Type, "name", record.Name, "error", err)
		}
		if exists {
			continue
		}
		if err := repo.Create(ctx, record); err != nil {
			logger.Fatalw("Failed to create record", "type", record.Type, "name", record.Name, "error", err)
		}
		created++
	}

	logger.Infow("Seeding completed", "created", created)
}

func seedRecords(ctx context.Context) []*master.MasterRecord {
	var records []*master.MasterRecord

	records = append(records, seedCities(ctx)...)
	records = append(records, seedAmenities(ctx)...)
	records = append(records, seedPropertyTypes(ctx)...)
	records = append(records, seedFloors(ctx)...)
	records = append(records, seedNumeric(ctx, types.MasterTypeTower, []float64{1, 2, 3, 4}, "towers")...)
	records = append(records, seedNumeric(ctx, types.MasterTypeRoom, []float64{1, 2, 3, 4, 5}, "rooms")...)
	records = append(records, seedNumeric(ctx, types.MasterTypeWashroom, []float64{1, 2, 3}, "washrooms")...)

	return records
}

func newRecord(ctx context.Context, masterType types.MasterType, name string) *master.MasterRecord {
	return &master.MasterRecord{
		ID:        types.GenerateUUIDWithPrefix(masterType.UUIDPrefix()),
		Name:      name,
		Type:      masterType,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

func seedCities(ctx context.Context) []*master.MasterRecord {
	cities := []struct {
		name     string
		state    string
		lat, lng float64
	}{
		{"Mumbai", "Maharashtra", 19.0760, 72.8777},
		{"Pune", "Maharashtra", 18.5204, 73.8567},
		{"Bengaluru", "Karnataka", 12.9716, 77.5946},
		{"Hyderabad", "Telangana", 17.3850, 78.4867},
		{"Gurugram", "Haryana", 28.4595, 77.0266},
		{"Noida", "Uttar Pradesh", 28.5355, 77.3910},
	}

	records := make([]*master.MasterRecord, 0, len(cities))
	for i, c := range cities {
		record := newRecord(ctx, types.MasterTypeCity, c.name)
		record.State = c.state
		record.Country = "India"
		record.Timezone = "Asia/Kolkata"
		record.Coordinates = types.Coordinates{c.lng, c.lat}
		record.SortOrder = i + 1
		record.IsPopular = i < 3
		records = append(records, record)
	}
	return records
}

func seedAmenities(ctx context.Context) []*master.MasterRecord {
	amenities := []struct {
		name     string
		category types.AmenityCategory
	}{
		{"Swimming Pool", types.AmenityCategorySports},
		{"Gymnasium", types.AmenityCategorySports},
		{"Clubhouse", types.AmenityCategoryLifestyle},
		{"24x7 Security", types.AmenityCategorySecurity},
		{"CCTV Surveillance", types.AmenityCategorySecurity},
		{"Power Backup", types.AmenityCategoryBasic},
		{"Lift", types.AmenityCategoryBasic},
		{"Covered Parking", types.AmenityCategoryConvenience},
		{"Kids Play Area", types.AmenityCategorySports},
		{"Rainwater Harvesting", types.AmenityCategoryEnvironment},
	}

	records := make([]*master.MasterRecord, 0, len(amenities))
	for i, a := range amenities {
		record := newRecord(ctx, types.MasterTypeAmenity, a.name)
		record.Category = string(a.category)
		record.SortOrder = i + 1
		records = append(records, record)
	}
	return records
}

func seedPropertyTypes(ctx context.Context) []*master.MasterRecord {
	propertyTypes := []struct {
		name     string
		category types.PropertyTypeCategory
	}{
		{"Apartment", types.PropertyTypeCategoryResidential},
		{"Villa", types.PropertyTypeCategoryResidential},
		{"Plot", types.PropertyTypeCategoryLand},
		{"Office Space", types.PropertyTypeCategoryCommercial},
		{"Retail Shop", types.PropertyTypeCategoryCommercial},
		{"Warehouse", types.PropertyTypeCategoryIndustrial},
	}

	records := make([]*master.MasterRecord, 0, len(propertyTypes))
	for i, p := range propertyTypes {
		record := newRecord(ctx, types.MasterTypePropertyType, p.name)
		record.Category = string(p.category)
		record.SortOrder = i + 1
		record.IsDefault = i == 0
		records = append(records, record)
	}
	return records
}

func seedFloors(ctx context.Context) []*master.MasterRecord {
	records := make([]*master.MasterRecord, 0, 12)
	for n := -2; n <= 9; n++ {
		value := float64(n)
		display := service.FloorDisplayName(n)
		record := newRecord(ctx, types.MasterTypeFloor, display)
		record.NumericValue = &value
		record.DisplayName = display
		record.SortOrder = n + 3
		records = append(records, record)
	}
	return records
}

func seedNumeric(ctx context.Context, masterType types.MasterType, values []float64, unit string) []*master.MasterRecord {
	records := make([]*master.MasterRecord, 0, len(values))
	for i, v := range values {
		value := v
		record := newRecord(ctx, masterType, numericName(masterType, int(v)))
		record.NumericValue = &value
		record.Unit = unit
		record.SortOrder = i + 1
		records = append(records, record)
	}
	return records
}

func numericName(masterType types.MasterType, n int) string {
	switch masterType {
	case types.MasterTypeTower:
		return "Tower " + string(rune('A'+n-1))
	case types.MasterTypeRoom:
		if n == 1 {
			return "1 Room"
		}
		return strconv.Itoa(n) + " Rooms"
	default:
		if n == 1 {
			return "1 Washroom"
		}
		return strconv.Itoa(n) + " Washrooms"
	}
}
