package booking

import (
	"context"
	"fmt"
	"time"

	"nextstop/models"
	"nextstop/utils"

	"go.uber.org/zap"
)

// Cancel cancels the principal's booking. The status flip is conditional on
// the booking not already being Cancelled, so a second cancel is rejected
// instead of double-restoring seats. Inventory restoration is best-effort:
// a missing inventory record does not block the cancellation.
func (s *DefaultBookingService) Cancel(ctx context.Context, principal models.Principal, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, newInvalidRequest("Missing booking id")
	}

	bk, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	if bk == nil {
		return nil, newNotFound("Booking")
	}

	if bk.Username != principal.Username {
		return nil, newForbidden("Not authorized to cancel this booking")
	}

	matched, err := s.BookingRepo.MarkCancelled(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if !matched {
		return nil, newConflict("Booking is already cancelled")
	}

	released, err := s.SeatRepo.Release(ctx, bk.BusNumber, bk.JourneyDate, bk.SeatNumbers)
	if err != nil {
		utils.GetLogger().Error("failed to restore seats for cancelled booking",
			zap.String("booking", bookingID), zap.Error(err))
	} else if !released {
		utils.GetLogger().Warn("no seat inventory to restore for cancelled booking",
			zap.String("booking", bookingID),
			zap.String("bus", bk.BusNumber), zap.String("date", bk.JourneyDate))
	}

	bk.BookingStatus = models.BookingStatusCancelled
	bk.UpdatedAt = time.Now()
	return bk, nil
}

// ListForUser returns all bookings owned by the principal, any status, in
// insertion order.
func (s *DefaultBookingService) ListForUser(ctx context.Context, principal models.Principal) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.GetByUsername(principal.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}
