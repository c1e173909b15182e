// File: internal/handler/health.go
package handler

import (
	"net/http"

	"biblioreservas/internal/api"
	"biblioreservas/internal/database"

	"github.com/labstack/echo/v4"
)

// InfoResponse describes the running service.
// swagger:model InfoResponse
type InfoResponse struct {
	Message string `json:"message" example:"BiblioReservas API"`
	Version string `json:"version" example:"1.0.0"`
	Status  string `json:"status" example:"running"`
}

// HealthResponse is the liveness body.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// RootHandler answers the base path with service info.
// @Summary     Service info
// @Tags        health
// @Produce     json
// @Success     200 {object} InfoResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, InfoResponse{
			Message: "BiblioReservas API",
			Version: "1.0.0",
			Status:  "running",
		})
	}
}

// HealthHandler reports liveness, including database reachability.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
	}
}
