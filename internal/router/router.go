package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/hotel-room-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/hotel-room-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// Handlers bundles every handler the router wires up, so main constructs
// them once and registration stays a single call.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Public       *handler.PublicHandler
	AdminRoom    *handler.AdminRoomHandler
	AdminBooking *handler.AdminBookingHandler
	Upload       *handler.UploadHandler
}

// RegisterRoutes registers the full HTTP surface on the provided Echo
// instance.  Public browsing endpoints take the optional cache middleware
// and the booking submission takes the optional rate limiter; passing nil
// for either skips it.  Admin endpoints (everything under /api/admin
// except login) require a Bearer token with the ADMIN role.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, cacheMW, rateMW echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/api/health", h.Health.Health)

	// Guest-facing routes.  Room browsing is cached; availability results
	// may therefore lag a fresh confirmation by one short cache TTL.
	browse := e.Group("/api")
	if cacheMW != nil {
		browse.Use(cacheMW)
	}
	browse.GET("/rooms", h.Public.ListRooms)
	browse.GET("/rooms/available", h.Public.AvailableRooms)

	// Reservation submission is rate limited but never cached.
	if rateMW != nil {
		e.POST("/api/bookings", h.Public.CreateBooking, rateMW)
	} else {
		e.POST("/api/bookings", h.Public.CreateBooking)
	}

	// Login is the only unauthenticated admin route.
	e.POST("/api/admin/login", h.Auth.Login)

	// Everything else under /api/admin runs behind JWTAuth and the ADMIN
	// role check.
	admin := e.Group("/api/admin")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.GET("/validate", h.Auth.Validate)
	admin.GET("/rooms", h.AdminRoom.List)
	admin.POST("/rooms", h.AdminRoom.Create)
	admin.PUT("/rooms/:id", h.AdminRoom.Update)
	admin.DELETE("/rooms/:id", h.AdminRoom.Delete)
	admin.POST("/upload", h.Upload.UploadImage)
	admin.GET("/bookings", h.AdminBooking.List)
	admin.PATCH("/bookings/:id", h.AdminBooking.UpdateStatus)
}
