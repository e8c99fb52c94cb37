package catalog

import (
	"fmt"
	"strings"

	"nextstop/models"
)

// CreateRoute adds a new route to the catalog. The routeId must be unique
// (case-insensitive).
func (s *DefaultCatalogService) CreateRoute(route *models.Route) (*models.Route, error) {
	route.RouteID = strings.TrimSpace(route.RouteID)
	if route.RouteID == "" || route.Source == "" || route.Destination == "" {
		return nil, newInvalidRequest("routeId, source and destination are required")
	}

	existing, err := s.RouteRepo.GetByID(route.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to check route: %w", err)
	}
	if existing != nil {
		return nil, newConflict("Route with this routeId already exists")
	}

	if err := s.RouteRepo.Create(route); err != nil {
		return nil, err
	}
	return route, nil
}

// GetAllRoutes returns every route in the catalog.
func (s *DefaultCatalogService) GetAllRoutes() ([]models.Route, error) {
	return s.RouteRepo.GetAll()
}

// GetRoute returns the route with the given routeId.
func (s *DefaultCatalogService) GetRoute(routeID string) (*models.Route, error) {
	route, err := s.RouteRepo.GetByID(routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, newNotFound("Route")
	}
	return route, nil
}

// UpdateRoute modifies a route. The routeId itself is immutable; any routeId
// in the update payload is ignored.
func (s *DefaultCatalogService) UpdateRoute(routeID string, update models.Route) (*models.Route, error) {
	route, err := s.RouteRepo.GetByID(routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, newNotFound("Route")
	}

	if update.Source != "" {
		route.Source = update.Source
	}
	if update.Destination != "" {
		route.Destination = update.Destination
	}
	if update.Distance > 0 {
		route.Distance = update.Distance
	}
	if update.Duration != "" {
		route.Duration = update.Duration
	}

	if err := s.RouteRepo.Update(route); err != nil {
		return nil, err
	}
	return route, nil
}

// DeleteRoute removes a route from the catalog.
func (s *DefaultCatalogService) DeleteRoute(routeID string) error {
	route, err := s.RouteRepo.GetByID(routeID)
	if err != nil {
		return err
	}
	if route == nil {
		return newNotFound("Route")
	}
	return s.RouteRepo.Delete(routeID)
}
