package handlers

import (
	adminRepoPkg "nextstop/database/repository/admin"
	userRepoPkg "nextstop/database/repository/user"
	"nextstop/services/auth"
	"nextstop/services/booking"
	"nextstop/services/catalog"
	"nextstop/services/feedback"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct. The repos are
// carried for the auth middlewares registered alongside the routes.
type HandlerBundle struct {
	UserRepo  userRepoPkg.UserRepository
	AdminRepo adminRepoPkg.AdminRepository

	// Identity endpoints
	RegisterUserHandler        gin.HandlerFunc
	LoginUserHandler           gin.HandlerFunc
	ForgotUserPasswordHandler  gin.HandlerFunc
	ResetUserPasswordHandler   gin.HandlerFunc
	GetUserProfileHandler      gin.HandlerFunc
	UpdateUserProfileHandler   gin.HandlerFunc
	RegisterAdminHandler       gin.HandlerFunc
	LoginAdminHandler          gin.HandlerFunc
	ForgotAdminPasswordHandler gin.HandlerFunc
	ResetAdminPasswordHandler  gin.HandlerFunc
	GetAdminProfileHandler     gin.HandlerFunc
	UpdateAdminProfileHandler  gin.HandlerFunc

	// Catalog endpoints
	CreateRouteHandler  gin.HandlerFunc
	GetAllRoutesHandler gin.HandlerFunc
	GetRouteHandler     gin.HandlerFunc
	UpdateRouteHandler  gin.HandlerFunc
	DeleteRouteHandler  gin.HandlerFunc
	CreateBusHandler    gin.HandlerFunc
	GetAllBusesHandler  gin.HandlerFunc
	GetBusHandler       gin.HandlerFunc
	UpdateBusHandler    gin.HandlerFunc
	DeleteBusHandler    gin.HandlerFunc
	SearchBusesHandler  gin.HandlerFunc

	// Seat inventory endpoints
	ProvisionInventoryHandler gin.HandlerFunc

	// Booking endpoints
	ReserveBookingHandler   gin.HandlerFunc
	CancelBookingHandler    gin.HandlerFunc
	ListUserBookingsHandler gin.HandlerFunc

	// Feedback endpoints
	AddFeedbackHandler     gin.HandlerFunc
	GetAllFeedbacksHandler gin.HandlerFunc
}

// NewHandlerBundle wires the service layer into the HTTP handlers.
func NewHandlerBundle(
	authSvc auth.Service,
	bookingSvc booking.Service,
	catalogSvc catalog.Service,
	feedbackSvc feedback.Service,
	users userRepoPkg.UserRepository,
	admins adminRepoPkg.AdminRepository,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:  users,
		AdminRepo: admins,

		RegisterUserHandler:        RegisterUserHandler(authSvc),
		LoginUserHandler:           LoginUserHandler(authSvc),
		ForgotUserPasswordHandler:  ForgotUserPasswordHandler(authSvc),
		ResetUserPasswordHandler:   ResetUserPasswordHandler(authSvc),
		GetUserProfileHandler:      GetUserProfileHandler(authSvc),
		UpdateUserProfileHandler:   UpdateUserProfileHandler(authSvc),
		RegisterAdminHandler:       RegisterAdminHandler(authSvc),
		LoginAdminHandler:          LoginAdminHandler(authSvc),
		ForgotAdminPasswordHandler: ForgotAdminPasswordHandler(authSvc),
		ResetAdminPasswordHandler:  ResetAdminPasswordHandler(authSvc),
		GetAdminProfileHandler:     GetAdminProfileHandler(authSvc),
		UpdateAdminProfileHandler:  UpdateAdminProfileHandler(authSvc),

		CreateRouteHandler:  CreateRouteHandler(catalogSvc),
		GetAllRoutesHandler: GetAllRoutesHandler(catalogSvc),
		GetRouteHandler:     GetRouteHandler(catalogSvc),
		UpdateRouteHandler:  UpdateRouteHandler(catalogSvc),
		DeleteRouteHandler:  DeleteRouteHandler(catalogSvc),
		CreateBusHandler:    CreateBusHandler(catalogSvc),
		GetAllBusesHandler:  GetAllBusesHandler(catalogSvc),
		GetBusHandler:       GetBusHandler(catalogSvc),
		UpdateBusHandler:    UpdateBusHandler(catalogSvc),
		DeleteBusHandler:    DeleteBusHandler(catalogSvc),
		SearchBusesHandler:  SearchBusesHandler(catalogSvc),

		ProvisionInventoryHandler: ProvisionInventoryHandler(catalogSvc),

		ReserveBookingHandler:   ReserveBookingHandler(bookingSvc),
		CancelBookingHandler:    CancelBookingHandler(bookingSvc),
		ListUserBookingsHandler: ListUserBookingsHandler(bookingSvc),

		AddFeedbackHandler:     AddFeedbackHandler(feedbackSvc),
		GetAllFeedbacksHandler: GetAllFeedbacksHandler(feedbackSvc),
	}
}
