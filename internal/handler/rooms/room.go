// File: internal/handler/rooms/room.go
package rooms

import (
	"encoding/json"
	"net/http"
	"time"

	"biblioreservas/internal/api"
	"biblioreservas/internal/cache"
	"biblioreservas/internal/database"
	"biblioreservas/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	catalogCacheKey = "rooms:all"
	catalogCacheTTL = 60 * time.Second
)

var listRooms = store.ListRooms

// ListRoomsHandler returns the full room catalog, unfiltered and
// unpaginated. The catalog is served from Redis when warm; any cache
// failure is treated as a miss and the database answers.
// @Summary     List all rooms
// @Description Returns every room available for reservation
// @Tags        rooms
// @Produce     json
// @Success     200 {array}  api.RoomResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /rooms [get]
func ListRoomsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := cch.Get(ctx, catalogCacheKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		rooms, err := listRooms(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to list rooms"})
		}

		resp := make([]api.RoomResponse, 0, len(rooms))
		for _, r := range rooms {
			resp = append(resp, api.RoomResponse{
				ID:          r.ID,
				Name:        r.Name,
				LibraryName: r.LibraryName,
				Capacity:    r.Capacity,
			})
		}

		if body, err := json.Marshal(resp); err == nil {
			// best effort, a failed Set just means the next request misses
			_ = cch.Set(ctx, catalogCacheKey, body, catalogCacheTTL).Err()
		}
		return c.JSON(http.StatusOK, resp)
	}
}
