// Package notify coordinates confirmation delivery after a reservation is
// committed. It is strictly best-effort: every error ends in an Outcome, none
// propagates to the caller.
package notify

import (
	"context"
	"log"
	"time"

	"biblioreservas/internal/mailer"
	"biblioreservas/internal/queue"
)

// Outcome is the terminal state of one delivery attempt.
type Outcome int

const (
	// Failed: neither the queue nor direct SMTP accepted the message.
	Failed Outcome = iota
	// Sent: delivered directly over SMTP.
	Sent
	// Enqueued: handed to the durable queue; a worker will deliver it.
	Enqueued
)

// Delivered reports whether the confirmation is on its way to the user.
func (o Outcome) Delivered() bool { return o != Failed }

// Options selects the delivery path.
type Options struct {
	QueueEnabled bool
	Queue        queue.Config
	SMTP         mailer.Config
}

var (
	pingQueue   = queue.Ping
	publishTask = queue.Publish
	sendEmail   = mailer.Send
)

// Confirmation attempts delivery of the email task: queue first when enabled
// and reachable, direct SMTP otherwise or as fallback, swallowing the final
// failure. The reservation is already durable by the time this runs.
func Confirmation(ctx context.Context, opts Options, task queue.EmailTask) Outcome {
	if opts.QueueEnabled && pingQueue(opts.Queue) {
		if err := publishTask(ctx, opts.Queue, task); err == nil {
			log.Printf("notify: email task enqueued for reservation #%d", task.ReservationID)
			return Enqueued
		} else {
			log.Printf("notify: enqueue failed for reservation #%d, falling back to direct send: %v", task.ReservationID, err)
		}
	}

	m, err := task.Confirmation()
	if err != nil {
		log.Printf("notify: bad email task for reservation #%d: %v", task.ReservationID, err)
		return Failed
	}
	if err := sendEmail(opts.SMTP, m); err != nil {
		log.Printf("notify: direct send failed for reservation #%d: %v", task.ReservationID, err)
		return Failed
	}
	log.Printf("notify: confirmation sent directly for reservation #%d", task.ReservationID)
	return Sent
}

// NewTask assembles the queue payload from the committed reservation data.
func NewTask(userEmail, userName, roomName, libraryName string, date time.Time, start, end string, reservationID int) queue.EmailTask {
	return queue.EmailTask{
		UserEmail:       userEmail,
		UserName:        userName,
		RoomName:        roomName,
		LibraryName:     libraryName,
		ReservationDate: date.Format("2006-01-02"),
		StartTime:       start,
		EndTime:         end,
		ReservationID:   reservationID,
	}
}
