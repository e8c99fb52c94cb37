package busRepo

import "nextstop/models"

// BusRepository defines methods for bus catalog access. Lookups by busNumber
// are case-insensitive; missing records are reported as (nil, nil).
type BusRepository interface {
	// Create inserts a new bus record.
	Create(bus *models.Bus) error
	// GetAll retrieves all buses.
	GetAll() ([]models.Bus, error)
	// GetByNumber retrieves a bus by its busNumber.
	GetByNumber(busNumber string) (*models.Bus, error)
	// GetByRoute retrieves the buses assigned to a route, optionally filtered
	// by bus type (empty busType means no filter).
	GetByRoute(routeID, busType string) ([]models.Bus, error)
	// Update modifies an existing bus record (busNumber immutable).
	Update(bus *models.Bus) error
	// Delete removes a bus record by its busNumber.
	Delete(busNumber string) error
}
