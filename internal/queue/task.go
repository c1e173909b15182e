package queue

import (
	"fmt"

	"biblioreservas/internal/mailer"
	"biblioreservas/internal/model"
)

// Confirmation rebuilds the typed date and clock values from the wire
// payload. Both the direct-send fallback and the worker go through this.
func (t EmailTask) Confirmation() (mailer.Confirmation, error) {
	date, err := model.ParseISODate(t.ReservationDate)
	if err != nil {
		return mailer.Confirmation{}, fmt.Errorf("queue: task %d: %w", t.ReservationID, err)
	}
	start, err := model.ParseClock(t.StartTime)
	if err != nil {
		return mailer.Confirmation{}, fmt.Errorf("queue: task %d: %w", t.ReservationID, err)
	}
	end, err := model.ParseClock(t.EndTime)
	if err != nil {
		return mailer.Confirmation{}, fmt.Errorf("queue: task %d: %w", t.ReservationID, err)
	}
	return mailer.Confirmation{
		UserEmail:     t.UserEmail,
		UserName:      t.UserName,
		RoomName:      t.RoomName,
		LibraryName:   t.LibraryName,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		ReservationID: t.ReservationID,
	}, nil
}
