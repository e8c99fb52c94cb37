package booking

import (
	"context"
	"fmt"
	"time"

	"nextstop/models"
	"nextstop/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const journeyDateLayout = "2006-01-02"

// Reserve validates the request, removes the seats from the inventory's free
// set and writes the booking record. The inventory step is a single
// conditional update, so two requests racing for the same seat cannot both
// succeed; a booking insert failure compensates by releasing the seats.
func (s *DefaultBookingService) Reserve(ctx context.Context, principal models.Principal, req models.BookingRequest) (*models.Booking, error) {
	if req.BusNumber == "" || req.RouteID == "" || len(req.SeatNumbers) == 0 || req.JourneyDate == "" {
		return nil, newInvalidRequest("Missing required booking details")
	}

	seats := req.SeatNumbers.Normalized()
	if len(seats) == 0 {
		return nil, newInvalidRequest("Invalid seatNumbers format")
	}
	if err := rejectDuplicates(seats); err != nil {
		return nil, err
	}

	date, err := normalizeJourneyDate(req.JourneyDate)
	if err != nil {
		return nil, err
	}

	bus, err := s.BusRepo.GetByNumber(req.BusNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to look up bus: %w", err)
	}
	if bus == nil {
		return nil, newNotFound("Bus")
	}

	route, err := s.RouteRepo.GetByID(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up route: %w", err)
	}
	if route == nil {
		return nil, newNotFound("Route")
	}

	inv, err := s.SeatRepo.GetByBusAndDate(bus.BusNumber, date)
	if err != nil {
		return nil, fmt.Errorf("failed to look up seat inventory: %w", err)
	}
	if inv == nil {
		return nil, newNotFound("Seat data for this date")
	}

	if missing := missingSeats(inv.Seats, seats); len(missing) > 0 {
		return nil, newSeatUnavailable(missing)
	}

	// The membership check above is advisory; the conditional update is what
	// decides the race.
	matched, err := s.SeatRepo.Reserve(ctx, bus.BusNumber, date, seats)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve seats: %w", err)
	}
	if !matched {
		return nil, s.reserveRaceError(bus.BusNumber, date, seats)
	}

	bk := &models.Booking{
		ID:            uuid.New().String(),
		Username:      principal.Username,
		BusNumber:     bus.BusNumber,
		RouteID:       route.RouteID,
		TotalSeats:    len(seats),
		SeatNumbers:   seats,
		TotalFare:     inv.Price * float64(len(seats)),
		JourneyDate:   date,
		BoardingPoint: req.BoardingPoint,
		BookingStatus: models.BookingStatusConfirmed,
	}

	if err := s.BookingRepo.Create(ctx, bk); err != nil {
		// Put the seats back so a ledger failure leaves no partial state.
		if _, relErr := s.SeatRepo.Release(ctx, bus.BusNumber, date, seats); relErr != nil {
			utils.GetLogger().Error("failed to release seats after booking insert failure",
				zap.String("bus", bus.BusNumber), zap.String("date", date), zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return bk, nil
}

// reserveRaceError re-reads the inventory after a failed conditional update
// to report which labels were taken in the meantime.
func (s *DefaultBookingService) reserveRaceError(busNumber, date string, seats []string) error {
	inv, err := s.SeatRepo.GetByBusAndDate(busNumber, date)
	if err != nil {
		return fmt.Errorf("failed to re-read seat inventory: %w", err)
	}
	if inv == nil {
		return newNotFound("Seat data for this date")
	}
	if missing := missingSeats(inv.Seats, seats); len(missing) > 0 {
		return newSeatUnavailable(missing)
	}
	return newConflict("Seat inventory changed, please retry")
}

// normalizeJourneyDate validates and canonicalizes the journey date.
func normalizeJourneyDate(raw string) (string, error) {
	t, err := time.Parse(journeyDateLayout, raw)
	if err != nil {
		return "", newInvalidRequest("Invalid journeyDate, expected YYYY-MM-DD")
	}
	return t.Format(journeyDateLayout), nil
}

// rejectDuplicates fails the request when a seat label is repeated.
func rejectDuplicates(seats []string) error {
	seen := make(map[string]struct{}, len(seats))
	for _, s := range seats {
		if _, dup := seen[s]; dup {
			return newInvalidRequest("Duplicate seat label: " + s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

// missingSeats returns the requested labels absent from the free set,
// preserving request order.
func missingSeats(free, requested []string) []string {
	freeSet := make(map[string]struct{}, len(free))
	for _, s := range free {
		freeSet[s] = struct{}{}
	}
	var missing []string
	for _, s := range requested {
		if _, ok := freeSet[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}
