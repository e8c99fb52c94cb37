package booking

import (
	"context"

	bookingRepo "nextstop/database/repository/booking"
	busRepo "nextstop/database/repository/bus"
	routeRepo "nextstop/database/repository/route"
	seatRepo "nextstop/database/repository/seat"
	"nextstop/models"
)

// Service orchestrates seat reservation and release against the seat
// inventory store and the booking ledger.
type Service interface {
	// Reserve books the requested seats for the principal, all-or-nothing.
	Reserve(ctx context.Context, principal models.Principal, req models.BookingRequest) (*models.Booking, error)
	// Cancel cancels the principal's booking and restores its seats.
	Cancel(ctx context.Context, principal models.Principal, bookingID string) (*models.Booking, error)
	// ListForUser returns all bookings owned by the principal, any status.
	ListForUser(ctx context.Context, principal models.Principal) ([]models.Booking, error)
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	BusRepo     busRepo.BusRepository
	RouteRepo   routeRepo.RouteRepository
	SeatRepo    seatRepo.SeatRepository
	BookingRepo bookingRepo.BookingRepository
}
