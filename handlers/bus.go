package handlers

import (
	"net/http"

	"nextstop/models"
	"nextstop/services/catalog"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
)

// CreateBusHandler adds a bus to the catalog (admin only).
func CreateBusHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bus models.Bus
		if err := c.ShouldBindJSON(&bus); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		created, err := svc.CreateBus(&bus)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Bus created successfully", "bus": created})
	}
}

// GetAllBusesHandler lists every bus joined with its route.
func GetAllBusesHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		buses, err := svc.GetAllBuses()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"buses": buses})
	}
}

// GetBusHandler returns a single bus by number, joined with its route.
func GetBusHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		bus, err := svc.GetBus(c.Param("busNumber"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, bus)
	}
}

// UpdateBusHandler updates a bus (admin only). The bus number is immutable.
func UpdateBusHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.Bus
		if err := c.ShouldBindJSON(&update); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		bus, err := svc.UpdateBus(c.Param("busNumber"), update)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bus updated successfully", "bus": bus})
	}
}

// DeleteBusHandler removes a bus from the catalog (admin only).
func DeleteBusHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteBus(c.Param("busNumber")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bus deleted successfully"})
	}
}

// SearchBusesHandler finds buses running between two stops on a date, with
// per-bus seat availability.
func SearchBusesHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		source := c.Query("source")
		destination := c.Query("destination")
		busType := c.Query("busType")
		journeyDate := c.Query("journeyDate")
		if journeyDate == "" {
			journeyDate = c.Query("date")
		}

		results, err := svc.SearchAvailability(source, destination, busType, journeyDate)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"buses": results})
	}
}
