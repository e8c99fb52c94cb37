package routeRepo

import "nextstop/models"

// RouteRepository defines methods for route catalog access. Lookups by key are
// case-insensitive; missing records are reported as (nil, nil).
type RouteRepository interface {
	// Create inserts a new route record.
	Create(route *models.Route) error
	// GetAll retrieves all routes.
	GetAll() ([]models.Route, error)
	// GetByID retrieves a route by its routeId.
	GetByID(routeID string) (*models.Route, error)
	// GetBySourceDestination retrieves the route connecting two cities.
	GetBySourceDestination(source, destination string) (*models.Route, error)
	// Update modifies an existing route record (routeId immutable).
	Update(route *models.Route) error
	// Delete removes a route record by its routeId.
	Delete(routeID string) error
}
