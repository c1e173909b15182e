// File: internal/router/router.go
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"biblioreservas/internal/cache"
	"biblioreservas/internal/config"
	"biblioreservas/internal/database"
	"biblioreservas/internal/handler"
	"biblioreservas/internal/handler/reservations"
	"biblioreservas/internal/handler/rooms"
)

// Setup registers all routes and the CORS middleware.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, cfg *config.Config) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db))

	api := e.Group("/api")
	api.GET("/rooms", rooms.ListRoomsHandler(db, cch))
	api.POST("/reservations", reservations.CreateReservationHandler(db, cfg))
	api.GET("/users/:user_id/reservations", reservations.ListUserReservationsHandler(db))
}
