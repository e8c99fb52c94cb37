package handlers

import (
	"net/http"

	"nextstop/middleware"
	"nextstop/services/feedback"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
)

// AddFeedbackHandler records passenger feedback for a bus.
func AddFeedbackHandler(svc feedback.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}

		var req struct {
			BusNumber string `json:"busNumber"`
			Rating    int    `json:"rating"`
			Comment   string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}

		fb, err := svc.Add(principal, req.BusNumber, req.Rating, req.Comment)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted successfully", "feedback": fb})
	}
}

// GetAllFeedbacksHandler lists all feedback, newest first.
func GetAllFeedbacksHandler(svc feedback.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedbacks, err := svc.GetAll()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})
	}
}
