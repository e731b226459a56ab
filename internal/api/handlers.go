package api

import (
	v1 "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/v1"
)

// Handlers holds every route handler the router mounts
type Handlers struct {
	Health *v1.HealthHandler
	Auth   *v1.AuthHandler

	City         *v1.CityHandler
	Location     *v1.LocationHandler
	Amenity      *v1.AmenityHandler
	PropertyType *v1.PropertyTypeHandler
	Floor        *v1.FloorHandler
	Tower        *v1.NumericMasterHandler
	Room         *v1.NumericMasterHandler
	Washroom     *v1.NumericMasterHandler

	Builder *v1.BuilderHandler
	Agent   *v1.AgentHandler
	Project *v1.ProjectHandler
	File    *v1.FileHandler
}
