package catalog

import (
	"fmt"
	"strings"

	"nextstop/models"
)

// CreateBus adds a new bus to the catalog. The busNumber must be unique
// (case-insensitive) and the routeId must reference an existing route.
func (s *DefaultCatalogService) CreateBus(bus *models.Bus) (*models.Bus, error) {
	bus.BusNumber = strings.TrimSpace(bus.BusNumber)
	if bus.BusNumber == "" || bus.BusName == "" || bus.RouteID == "" {
		return nil, newInvalidRequest("busNumber, busName and routeId are required")
	}
	if !models.ValidBusType(bus.Type) {
		return nil, newInvalidRequest("type must be one of AC, Non-AC, Sleeper")
	}

	existing, err := s.BusRepo.GetByNumber(bus.BusNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check bus: %w", err)
	}
	if existing != nil {
		return nil, newConflict("Bus with this number already exists")
	}

	route, err := s.RouteRepo.GetByID(bus.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to check route: %w", err)
	}
	if route == nil {
		return nil, newNotFound("Route referenced by routeId")
	}
	// Link the canonical routeId, whatever casing the caller used.
	bus.RouteID = route.RouteID

	if err := s.BusRepo.Create(bus); err != nil {
		return nil, err
	}
	return bus, nil
}

// GetAllBuses returns every bus joined with its route.
func (s *DefaultCatalogService) GetAllBuses() ([]models.BusWithRoute, error) {
	buses, err := s.BusRepo.GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]models.BusWithRoute, 0, len(buses))
	for _, b := range buses {
		route, err := s.RouteRepo.GetByID(b.RouteID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.BusWithRoute{Bus: b, Route: route})
	}
	return out, nil
}

// GetBus returns the bus with the given busNumber joined with its route.
func (s *DefaultCatalogService) GetBus(busNumber string) (*models.BusWithRoute, error) {
	bus, err := s.BusRepo.GetByNumber(busNumber)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, newNotFound("Bus")
	}

	route, err := s.RouteRepo.GetByID(bus.RouteID)
	if err != nil {
		return nil, err
	}
	return &models.BusWithRoute{Bus: *bus, Route: route}, nil
}

// UpdateBus modifies a bus. The busNumber itself is immutable; a changed
// routeId is revalidated against the route catalog.
func (s *DefaultCatalogService) UpdateBus(busNumber string, update models.Bus) (*models.Bus, error) {
	bus, err := s.BusRepo.GetByNumber(busNumber)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, newNotFound("Bus")
	}

	if update.RouteID != "" {
		route, err := s.RouteRepo.GetByID(update.RouteID)
		if err != nil {
			return nil, fmt.Errorf("failed to check route: %w", err)
		}
		if route == nil {
			return nil, newNotFound("Route referenced by routeId")
		}
		bus.RouteID = route.RouteID
	}
	if update.BusName != "" {
		bus.BusName = update.BusName
	}
	if update.Type != "" {
		if !models.ValidBusType(update.Type) {
			return nil, newInvalidRequest("type must be one of AC, Non-AC, Sleeper")
		}
		bus.Type = update.Type
	}
	if update.OperatorName1 != "" {
		bus.OperatorName1 = update.OperatorName1
	}
	if update.OperatorPhone1 != "" {
		bus.OperatorPhone1 = update.OperatorPhone1
	}
	if update.OperatorName2 != "" {
		bus.OperatorName2 = update.OperatorName2
	}
	if update.OperatorPhone2 != "" {
		bus.OperatorPhone2 = update.OperatorPhone2
	}

	if err := s.BusRepo.Update(bus); err != nil {
		return nil, err
	}
	return bus, nil
}

// DeleteBus removes a bus from the catalog.
func (s *DefaultCatalogService) DeleteBus(busNumber string) error {
	bus, err := s.BusRepo.GetByNumber(busNumber)
	if err != nil {
		return err
	}
	if bus == nil {
		return newNotFound("Bus")
	}
	return s.BusRepo.Delete(busNumber)
}
