// File: internal/api/create_reservation_request.go
package api

// CreateReservationRequest books a room for a time window on a date.
// Clock values accept "HH:MM" or "HH:MM:SS".
// swagger:model api.CreateReservationRequest
type CreateReservationRequest struct {
	UserID    int    `json:"userId" validate:"required,gt=0" example:"1"`
	RoomID    int    `json:"roomId" validate:"required,gt=0" example:"1"`
	Date      string `json:"date" validate:"required" example:"2026-09-01"`
	StartTime string `json:"startTime" validate:"required" example:"14:00"`
	EndTime   string `json:"endTime" validate:"required" example:"16:00"`
}
