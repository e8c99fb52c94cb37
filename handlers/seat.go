package handlers

import (
	"net/http"

	"nextstop/models"
	"nextstop/services/catalog"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProvisionInventoryHandler creates or replaces the seat inventory for a
// (bus, date) pair (admin only). Bookings for a date require this to have
// run first.
func ProvisionInventoryHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var inv models.SeatInventory
		if err := c.ShouldBindJSON(&inv); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		inv.BusNumber = c.Param("busNumber")

		provisioned, err := svc.ProvisionInventory(&inv)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		logger.Info("Seat inventory provisioned",
			zap.String("busNumber", provisioned.BusNumber),
			zap.String("date", provisioned.Date),
			zap.Int("totalSeats", provisioned.TotalSeats),
		)
		c.JSON(http.StatusOK, gin.H{"message": "Seat inventory updated successfully", "seatInfo": provisioned})
	}
}
