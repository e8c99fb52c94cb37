package handlers

import (
	"errors"
	"net/http"

	"nextstop/services/auth"
	"nextstop/services/booking"
	"nextstop/services/catalog"
	"nextstop/services/feedback"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusForCode maps service error codes to HTTP statuses. All services share
// the same code vocabulary.
func statusForCode(code string) int {
	switch code {
	case booking.CodeInvalidRequest, booking.CodeSeatUnavailable:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeForbidden:
		return http.StatusForbidden
	case booking.CodeConflict:
		return http.StatusConflict
	case auth.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError translates a typed service failure into an HTTP error
// response, falling back to 500 for unexpected errors.
func respondServiceError(c *gin.Context, err error) {
	logger := getLogger(c)

	var bookingErr *booking.ServiceError
	if errors.As(err, &bookingErr) {
		utils.JSONError(c, statusForCode(bookingErr.Code), bookingErr.Message, "")
		return
	}
	var catalogErr *catalog.ServiceError
	if errors.As(err, &catalogErr) {
		utils.JSONError(c, statusForCode(catalogErr.Code), catalogErr.Message, "")
		return
	}
	var authErr *auth.ServiceError
	if errors.As(err, &authErr) {
		utils.JSONError(c, statusForCode(authErr.Code), authErr.Message, "")
		return
	}
	var feedbackErr *feedback.ServiceError
	if errors.As(err, &feedbackErr) {
		utils.JSONError(c, statusForCode(feedbackErr.Code), feedbackErr.Message, "")
		return
	}

	logger.Error("Unexpected service error", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
}
