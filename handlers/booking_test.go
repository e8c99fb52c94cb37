package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nextstop/middleware"
	"nextstop/models"
	"nextstop/services/booking"
	"nextstop/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService returns canned results so the handler's status mapping
// can be exercised without a store.
type stubBookingService struct {
	reserveErr error
	cancelErr  error
}

func (s *stubBookingService) Reserve(ctx context.Context, principal models.Principal, req models.BookingRequest) (*models.Booking, error) {
	if s.reserveErr != nil {
		return nil, s.reserveErr
	}
	return &models.Booking{
		ID:            "bk-1",
		Username:      principal.Username,
		BusNumber:     req.BusNumber,
		RouteID:       req.RouteID,
		SeatNumbers:   req.SeatNumbers.Normalized(),
		TotalSeats:    len(req.SeatNumbers.Normalized()),
		TotalFare:     500,
		JourneyDate:   req.JourneyDate,
		BookingStatus: models.BookingStatusConfirmed,
	}, nil
}

func (s *stubBookingService) Cancel(ctx context.Context, principal models.Principal, bookingID string) (*models.Booking, error) {
	if s.cancelErr != nil {
		return nil, s.cancelErr
	}
	return &models.Booking{ID: bookingID, Username: principal.Username, BookingStatus: models.BookingStatusCancelled}, nil
}

func (s *stubBookingService) ListForUser(ctx context.Context, principal models.Principal) ([]models.Booking, error) {
	return []models.Booking{{ID: "bk-1", Username: principal.Username}}, nil
}

// asUser injects an authenticated principal, standing in for the JWT
// middleware.
func asUser(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.PrincipalKey, models.Principal{Username: username, Role: models.RoleUser})
		c.Next()
	}
}

func newBookingRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/bookings", asUser("alice"))
	api.POST("", ReserveBookingHandler(svc))
	api.PUT("/cancel/:id", CancelBookingHandler(svc))
	api.GET("/user", ListUserBookingsHandler(svc))
	return r
}

func TestReserveBookingHandlerCreated(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	body := `{"busNumber":"B1","routeId":"R1","seatNumbers":["1-1","1-2"],"journeyDate":"2024-01-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"bookingStatus":"Confirmed"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestReserveBookingHandlerAcceptsCommaSeats(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	body := `{"busNumber":"B1","routeId":"R1","seatNumbers":"1-1, 1-2","journeyDate":"2024-01-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"totalSeats":2`)
}

func TestReserveBookingHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"seat unavailable", &booking.ServiceError{Code: booking.CodeSeatUnavailable, Message: "Seats 1-1 are not available"}, http.StatusBadRequest},
		{"invalid request", &booking.ServiceError{Code: booking.CodeInvalidRequest, Message: "Missing required booking details"}, http.StatusBadRequest},
		{"not found", &booking.ServiceError{Code: booking.CodeNotFound, Message: "Bus not found"}, http.StatusNotFound},
		{"conflict", &booking.ServiceError{Code: booking.CodeConflict, Message: "Seat inventory changed, please retry"}, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newBookingRouter(&stubBookingService{reserveErr: tc.err})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings",
				strings.NewReader(`{"busNumber":"B1","routeId":"R1","seatNumbers":["1-1"],"journeyDate":"2024-01-01"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestCancelBookingHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"already cancelled", &booking.ServiceError{Code: booking.CodeConflict, Message: "Booking is already cancelled"}, http.StatusConflict},
		{"not owner", &booking.ServiceError{Code: booking.CodeForbidden, Message: "Not authorized to cancel this booking"}, http.StatusForbidden},
		{"unknown booking", &booking.ServiceError{Code: booking.CodeNotFound, Message: "Booking not found"}, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newBookingRouter(&stubBookingService{cancelErr: tc.err})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/bookings/cancel/bk-1", nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestListUserBookingsHandler(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestReserveBookingHandlerRequiresPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", ReserveBookingHandler(&stubBookingService{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// stubCatalogService covers only the search path used by the handler test.
type stubCatalogService struct {
	lastSource, lastDestination, lastType, lastDate string
}

func (s *stubCatalogService) CreateRoute(route *models.Route) (*models.Route, error)      { return route, nil }
func (s *stubCatalogService) GetAllRoutes() ([]models.Route, error)                       { return nil, nil }
func (s *stubCatalogService) GetRoute(routeID string) (*models.Route, error)              { return nil, nil }
func (s *stubCatalogService) UpdateRoute(routeID string, update models.Route) (*models.Route, error) {
	return nil, nil
}
func (s *stubCatalogService) DeleteRoute(routeID string) error                    { return nil }
func (s *stubCatalogService) CreateBus(bus *models.Bus) (*models.Bus, error)      { return bus, nil }
func (s *stubCatalogService) GetAllBuses() ([]models.BusWithRoute, error)         { return nil, nil }
func (s *stubCatalogService) GetBus(busNumber string) (*models.BusWithRoute, error) {
	return nil, nil
}
func (s *stubCatalogService) UpdateBus(busNumber string, update models.Bus) (*models.Bus, error) {
	return nil, nil
}
func (s *stubCatalogService) DeleteBus(busNumber string) error { return nil }
func (s *stubCatalogService) ProvisionInventory(inv *models.SeatInventory) (*models.SeatInventory, error) {
	return inv, nil
}
func (s *stubCatalogService) SearchAvailability(source, destination, busType, journeyDate string) ([]catalog.SearchResult, error) {
	s.lastSource, s.lastDestination, s.lastType, s.lastDate = source, destination, busType, journeyDate
	return []catalog.SearchResult{}, nil
}

func TestSearchBusesHandlerPassesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogService{}
	r := gin.New()
	r.GET("/api/buses/search", SearchBusesHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/buses/search?source=Chennai&destination=Bangalore&busType=AC&journeyDate=2024-01-01", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chennai", svc.lastSource)
	assert.Equal(t, "Bangalore", svc.lastDestination)
	assert.Equal(t, "AC", svc.lastType)
	assert.Equal(t, "2024-01-01", svc.lastDate)
}
