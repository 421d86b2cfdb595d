// Package router defines how the HTTP routes of the directory API are
// registered on an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/atxserves/community-directory/internal/handler"
)

// RegisterRoutes maps the health check onto the Echo instance. It is split
// from the API registration so probes work before the store is wired up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterDirectory registers the browse and admin-create endpoints of the
// directory under /api. All GET routes are public; the POST routes mirror
// each store create operation.
func RegisterDirectory(e *echo.Echo, d *handler.DirectoryHandler) {
	api := e.Group("/api")

	// Categories.
	api.GET("/categories", d.GetAllCategories)
	api.GET("/categories/:id", d.GetCategory)
	api.POST("/categories", d.CreateCategory)

	// Services. The static segments (search, nearby, category) must not be
	// shadowed by the :serviceId parameter; Echo matches static paths first.
	api.GET("/services", d.GetAllServices)
	api.GET("/services/search", d.SearchServices)
	api.GET("/services/nearby", d.GetNearbyServices)
	api.GET("/services/category/:categoryId", d.GetServicesByCategory)
	api.GET("/services/:serviceId", d.GetServiceDetails)
	api.GET("/services/:serviceId/offerings", d.GetServiceOfferings)
	api.POST("/services", d.CreateService)
	api.POST("/offerings", d.CreateOffering)

	// Events.
	api.GET("/events", d.GetAllEvents)
	api.GET("/events/service/:serviceId", d.GetEventsByService)
	api.GET("/events/:eventId", d.GetEvent)
	api.POST("/events", d.CreateEvent)

	// Parking.
	api.GET("/parking/service/:serviceId", d.GetParkingByService)
	api.POST("/parking", d.CreateParking)
}

// RegisterAlerts registers the emergency-alert endpoints. GET /api/alerts
// returns only active alerts, matching what the banner UI polls for.
func RegisterAlerts(e *echo.Echo, a *handler.AlertHandler) {
	api := e.Group("/api")
	api.GET("/alerts", a.GetActiveAlerts)
	api.GET("/alerts/all", a.GetAllAlerts)
	api.POST("/alerts", a.CreateAlert)
}

// RegisterUsers registers the user endpoints.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler) {
	api := e.Group("/api")
	api.GET("/users/:id", u.GetUser)
	api.POST("/users", u.CreateUser)
}
