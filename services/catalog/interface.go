package catalog

import (
	busRepo "nextstop/database/repository/bus"
	routeRepo "nextstop/database/repository/route"
	seatRepo "nextstop/database/repository/seat"
	"nextstop/models"
)

// Service manages the bus and route catalog and seat inventory provisioning,
// and answers availability searches.
type Service interface {
	// Route CRUD.
	CreateRoute(route *models.Route) (*models.Route, error)
	GetAllRoutes() ([]models.Route, error)
	GetRoute(routeID string) (*models.Route, error)
	UpdateRoute(routeID string, update models.Route) (*models.Route, error)
	DeleteRoute(routeID string) error

	// Bus CRUD.
	CreateBus(bus *models.Bus) (*models.Bus, error)
	GetAllBuses() ([]models.BusWithRoute, error)
	GetBus(busNumber string) (*models.BusWithRoute, error)
	UpdateBus(busNumber string, update models.Bus) (*models.Bus, error)
	DeleteBus(busNumber string) error

	// ProvisionInventory creates or replaces the seat inventory record for a
	// (busNumber, date) pair. This is the admin/seed path that must run
	// before bookings can occur for a date.
	ProvisionInventory(inv *models.SeatInventory) (*models.SeatInventory, error)

	// SearchAvailability joins routes, buses and per-date inventory. Buses
	// without an inventory record on the date get a zero-availability default.
	SearchAvailability(source, destination, busType, journeyDate string) ([]SearchResult, error)
}

// SearchResult is a bus joined with its route and the inventory for the
// requested date.
type SearchResult struct {
	models.Bus
	Route    models.Route         `json:"route"`
	SeatInfo models.SeatInventory `json:"seatInfo"`
}

// DefaultCatalogService implements Service.
type DefaultCatalogService struct {
	RouteRepo routeRepo.RouteRepository
	BusRepo   busRepo.BusRepository
	SeatRepo  seatRepo.SeatRepository
}
