package handlers

import (
	"net/http"

	"nextstop/models"
	"nextstop/services/catalog"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
)

// CreateRouteHandler creates a new route (admin only).
func CreateRouteHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var route models.Route
		if err := c.ShouldBindJSON(&route); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		created, err := svc.CreateRoute(&route)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Route created successfully", "route": created})
	}
}

// GetAllRoutesHandler lists every route.
func GetAllRoutesHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes, err := svc.GetAllRoutes()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"routes": routes})
	}
}

// GetRouteHandler returns a single route by its identifier.
func GetRouteHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		route, err := svc.GetRoute(c.Param("routeId"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, route)
	}
}

// UpdateRouteHandler updates a route (admin only). The route identifier is
// immutable.
func UpdateRouteHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.Route
		if err := c.ShouldBindJSON(&update); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
		route, err := svc.UpdateRoute(c.Param("routeId"), update)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Route updated successfully", "route": route})
	}
}

// DeleteRouteHandler removes a route (admin only).
func DeleteRouteHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteRoute(c.Param("routeId")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully"})
	}
}
