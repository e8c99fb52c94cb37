package routes

import (
	"net/http"
	"time"

	"nextstop/handlers"
	"nextstop/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers passenger and admin identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.LoginUserHandler)
		api.POST("/forgot-password", hb.ForgotUserPasswordHandler)
		api.POST("/reset-password", hb.ResetUserPasswordHandler)

		api.POST("/admin/register", hb.RegisterAdminHandler)
		api.POST("/admin/login", hb.LoginAdminHandler)
		api.POST("/admin/forgot-password", hb.ForgotAdminPasswordHandler)
		api.POST("/admin/reset-password", hb.ResetAdminPasswordHandler)

		// Protected profile routes (require authentication).
		user := api.Group("")
		user.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		user.GET("/profile", hb.GetUserProfileHandler)
		user.PUT("/profile", hb.UpdateUserProfileHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		admin.GET("/admin/profile", hb.GetAdminProfileHandler)
		admin.PUT("/admin/profile", hb.UpdateAdminProfileHandler)
	}
}

// RegisterRouteRoutes registers route catalog endpoints. Reads are public,
// writes are admin only.
func RegisterRouteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/routes")
	{
		api.GET("", hb.GetAllRoutesHandler)
		api.GET("/:routeId", hb.GetRouteHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		protected.POST("", hb.CreateRouteHandler)
		protected.PUT("/:routeId", hb.UpdateRouteHandler)
		protected.DELETE("/:routeId", hb.DeleteRouteHandler)
	}
}

// RegisterBusRoutes registers bus catalog and availability search endpoints.
func RegisterBusRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/buses")
	{
		api.GET("", hb.GetAllBusesHandler)
		api.GET("/search", hb.SearchBusesHandler)
		api.GET("/:busNumber", hb.GetBusHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		protected.POST("", hb.CreateBusHandler)
		protected.PUT("/:busNumber", hb.UpdateBusHandler)
		protected.DELETE("/:busNumber", hb.DeleteBusHandler)
	}
}

// RegisterSeatRoutes registers the admin-only seat inventory provisioning
// endpoint.
func RegisterSeatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/seats")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		api.PUT("/:busNumber", hb.ProvisionInventoryHandler)
	}
}

// RegisterBookingRoutes registers seat booking endpoints. All require
// passenger authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.ReserveBookingHandler)
		api.PUT("/cancel/:id", hb.CancelBookingHandler)
		api.GET("/user", hb.ListUserBookingsHandler)
	}
}

// RegisterFeedbackRoutes registers feedback endpoints. Listing is public,
// creation requires passenger authentication.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feedbacks")
	{
		api.GET("", hb.GetAllFeedbacksHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.AddFeedbackHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "NextStop is running"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterRouteRoutes(r, hb)
	RegisterBusRoutes(r, hb)
	RegisterSeatRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterHealthRoute(r)
}
