// File: internal/handler/reservations/reservation.go
package reservations

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"biblioreservas/internal/api"
	"biblioreservas/internal/config"
	"biblioreservas/internal/database"
	"biblioreservas/internal/model"
	"biblioreservas/internal/notify"
	"biblioreservas/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	getUserByID            = store.GetUserByID
	getRoomByID            = store.GetRoomByID
	createReservation      = store.CreateReservation
	listReservationsByUser = store.ListReservationsByUser
	notifyConfirmation     = notify.Confirmation
	nowFn                  = time.Now
)

// CreateReservationHandler creates a reservation and triggers the
// confirmation email. Validation and existence checks run before any write;
// the insert is transactional; notification failure never fails the request.
// @Summary     Create a reservation
// @Description Books a room for a user on a date and time window, then sends a confirmation email (queued or direct)
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       reservation body     api.CreateReservationRequest true "Reservation data"
// @Success     201         {object} api.ReservationResponse
// @Failure     400         {object} api.ErrorResponse "invalid input"
// @Failure     404         {object} api.ErrorResponse "user or room not found"
// @Failure     409         {object} api.ErrorResponse "time slot already reserved"
// @Failure     500         {object} api.ErrorResponse
// @Router      /reservations [post]
func CreateReservationHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateReservationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		}

		date, err := model.ParseISODate(req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid date, expected YYYY-MM-DD"})
		}
		start, err := model.ParseClock(req.StartTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid startTime, expected HH:MM or HH:MM:SS"})
		}
		end, err := model.ParseClock(req.EndTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid endTime, expected HH:MM or HH:MM:SS"})
		}
		// normalized HH:MM:SS strings compare chronologically
		if end <= start {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "endTime must be after startTime"})
		}
		now := nowFn()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "reservations cannot be made for past dates"})
		}

		ctx := c.Request().Context()

		user, err := getUserByID(ctx, db, req.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: fmt.Sprintf("user with ID %d not found", req.UserID)})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to create the reservation"})
		}
		room, err := getRoomByID(ctx, db, req.RoomID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: fmt.Sprintf("room with ID %d not found", req.RoomID)})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to create the reservation"})
		}

		reservation, err := createReservation(ctx, db, &model.Reservation{
			UserID:    req.UserID,
			RoomID:    req.RoomID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Detail: "a reservation already exists for this room and time slot"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to create the reservation"})
		}

		// the reservation is committed; delivery is best-effort from here
		task := notify.NewTask(user.Email, user.Name, room.Name, room.LibraryName,
			reservation.Date, reservation.StartTime, reservation.EndTime, reservation.ID)
		outcome := notifyConfirmation(ctx, notify.Options{
			QueueEnabled: cfg.EmailQueueEnabled,
			Queue:        cfg.Queue,
			SMTP:         cfg.SMTP,
		}, task)

		return c.JSON(http.StatusCreated, api.ReservationResponse{
			ID: reservation.ID,
			Room: api.ReservationRoomInfo{
				ID:          room.ID,
				Name:        room.Name,
				LibraryName: room.LibraryName,
			},
			Date:      reservation.Date.Format("2006-01-02"),
			StartTime: reservation.StartTime,
			EndTime:   reservation.EndTime,
			EmailSent: outcome.Delivered(),
		})
	}
}

// ListUserReservationsHandler returns a user's reservations with room
// summaries, most recent first.
// @Summary     List a user's reservations
// @Tags        reservations
// @Produce     json
// @Param       user_id path     int true "User ID"
// @Success     200     {array}  api.ReservationResponse
// @Failure     400     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse "user not found"
// @Failure     500     {object} api.ErrorResponse
// @Router      /users/{user_id}/reservations [get]
func ListUserReservationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid user ID"})
		}

		ctx := c.Request().Context()

		if _, err := getUserByID(ctx, db, userID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: fmt.Sprintf("user with ID %d not found", userID)})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to list reservations"})
		}

		reservations, err := listReservationsByUser(ctx, db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to list reservations"})
		}

		resp := make([]api.ReservationResponse, 0, len(reservations))
		for _, r := range reservations {
			resp = append(resp, api.ReservationResponse{
				ID: r.ID,
				Room: api.ReservationRoomInfo{
					ID:          r.RoomID,
					Name:        r.RoomName,
					LibraryName: r.LibraryName,
				},
				Date:      r.Date.Format("2006-01-02"),
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
				EmailSent: true, // already sent when the reservation was created
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
