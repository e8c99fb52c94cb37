package seatRepo

import (
	"context"

	"nextstop/models"
)

// SeatRepository defines methods for the seat inventory store. Reserve and
// Release are the atomic read-check-write primitives the booking service
// relies on: each is a single conditional update keyed on (busNumber, date),
// so concurrent reservations of the same seat cannot both succeed.
type SeatRepository interface {
	// GetByBusAndDate retrieves the inventory record for a bus on a date.
	// Missing records are reported as (nil, nil).
	GetByBusAndDate(busNumber, date string) (*models.SeatInventory, error)
	// GetForBusesOnDate retrieves the inventory records for several buses on
	// a date, keyed by normalized bus key.
	GetForBusesOnDate(busNumbers []string, date string) (map[string]models.SeatInventory, error)
	// Upsert creates or replaces the inventory record for (busNumber, date).
	Upsert(inv *models.SeatInventory) error
	// Reserve removes the given seat labels from the free set and decrements
	// the available count, but only if every label is currently free. It
	// reports whether the conditional update matched.
	Reserve(ctx context.Context, busNumber, date string, labels []string) (bool, error)
	// Release appends the given seat labels back into the free set and
	// increments the available count. It reports whether an inventory record
	// existed for the key.
	Release(ctx context.Context, busNumber, date string, labels []string) (bool, error)
}
