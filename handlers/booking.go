package handlers

import (
	"net/http"

	"nextstop/middleware"
	"nextstop/models"
	"nextstop/services/booking"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReserveBookingHandler books seats for the authenticated passenger.
func ReserveBookingHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}

		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}

		bkg, err := svc.Reserve(c.Request.Context(), principal, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		logger.Info("Booking confirmed",
			zap.String("bookingId", bkg.ID),
			zap.String("username", principal.Username),
			zap.Strings("seats", bkg.SeatNumbers),
		)
		c.JSON(http.StatusCreated, gin.H{"message": "Booking confirmed", "booking": bkg})
	}
}

// CancelBookingHandler cancels one of the passenger's bookings and restores
// its seats.
func CancelBookingHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}

		bookingID := c.Param("id")
		bkg, err := svc.Cancel(c.Request.Context(), principal, bookingID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		logger.Info("Booking cancelled",
			zap.String("bookingId", bkg.ID),
			zap.String("username", principal.Username),
		)
		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully", "booking": bkg})
	}
}

// ListUserBookingsHandler returns all bookings owned by the passenger.
func ListUserBookingsHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}

		bookings, err := svc.ListForUser(c.Request.Context(), principal)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}
