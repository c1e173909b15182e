// File: internal/api/reservation_response.go
package api

// ReservationRoomInfo is the room summary embedded in a reservation.
// swagger:model api.ReservationRoomInfo
type ReservationRoomInfo struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Room 101"`
	LibraryName string `json:"libraryName" example:"Central Library"`
}

// ReservationResponse is a created or listed reservation. EmailSent reports
// whether the confirmation was enqueued or delivered; listings always report
// true since delivery state is not tracked per row.
// swagger:model api.ReservationResponse
type ReservationResponse struct {
	ID        int                 `json:"id" example:"10"`
	Room      ReservationRoomInfo `json:"room"`
	Date      string              `json:"date" example:"2026-09-01"`
	StartTime string              `json:"startTime" example:"14:00:00"`
	EndTime   string              `json:"endTime" example:"16:00:00"`
	EmailSent bool                `json:"emailSent" example:"true"`
}
