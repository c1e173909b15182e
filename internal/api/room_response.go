// File: internal/api/room_response.go
package api

// RoomResponse is one bookable room.
// swagger:model api.RoomResponse
type RoomResponse struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Room 101"`
	LibraryName string `json:"libraryName" example:"Central Library"`
	Capacity    int    `json:"capacity" example:"4"`
}
