package model

import "time"

// Reservation books one room for one user on a date between two clock
// values. StartTime and EndTime are normalized "HH:MM:SS" strings (the
// store reads the TIME columns as text), so lexical comparison matches
// chronological order.
type Reservation struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	RoomID    int       `db:"room_id" json:"room_id"`
	Date      time.Time `db:"date" json:"date"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReservationWithRoom is a reservation joined with its room summary, as
// returned by the user-listing query.
type ReservationWithRoom struct {
	Reservation
	RoomName    string `db:"room_name" json:"room_name"`
	LibraryName string `db:"library_name" json:"library_name"`
}
