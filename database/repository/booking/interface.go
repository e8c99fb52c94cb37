package bookingRepo

import (
	"context"

	"nextstop/models"
)

// BookingRepository defines methods for the booking ledger.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its id. Missing records are (nil, nil).
	GetByID(id string) (*models.Booking, error)
	// GetByUsername retrieves all bookings owned by the user, in insertion order.
	GetByUsername(username string) ([]models.Booking, error)
	// MarkCancelled flips the booking to Cancelled, but only if its current
	// status is not already Cancelled. It reports whether the conditional
	// update matched; false means the booking was already cancelled.
	MarkCancelled(ctx context.Context, id string) (bool, error)
}
