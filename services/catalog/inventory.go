package catalog

import (
	"fmt"
	"time"

	"nextstop/models"
)

// ProvisionInventory creates or replaces the seat inventory record for a
// (busNumber, date) pair. The bus must exist and the record must satisfy the
// inventory invariants before it is accepted.
func (s *DefaultCatalogService) ProvisionInventory(inv *models.SeatInventory) (*models.SeatInventory, error) {
	if inv.BusNumber == "" || inv.Date == "" {
		return nil, newInvalidRequest("busNumber and date are required")
	}
	if _, err := time.Parse("2006-01-02", inv.Date); err != nil {
		return nil, newInvalidRequest("Invalid date, expected YYYY-MM-DD")
	}
	if inv.Price <= 0 {
		return nil, newInvalidRequest("price must be positive")
	}
	if inv.TotalSeats <= 0 || len(inv.Seats) > inv.TotalSeats {
		return nil, newInvalidRequest("totalSeats must cover the seat list")
	}
	// availableSeats always mirrors the free list.
	inv.AvailableSeats = len(inv.Seats)

	bus, err := s.BusRepo.GetByNumber(inv.BusNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check bus: %w", err)
	}
	if bus == nil {
		return nil, newNotFound("Bus")
	}
	inv.BusNumber = bus.BusNumber

	if err := s.SeatRepo.Upsert(inv); err != nil {
		return nil, err
	}
	return inv, nil
}
