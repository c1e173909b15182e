// Package queue publishes confirmation-email tasks to a durable RabbitMQ
// queue. Publish failures are returned to the caller, which falls back to
// direct SMTP delivery; they never abort a reservation.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Config describes the broker connection. URL wins when set (CloudAMQP and
// friends hand out full URLs); otherwise the individual parts are used.
type Config struct {
	URL      string `envconfig:"RABBITMQ_URL" default:""`
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	VHost    string `envconfig:"RABBITMQ_VHOST" default:"/"`
	User     string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
	Name     string `envconfig:"EMAIL_QUEUE_NAME" default:"email_notifications"`
}

// AMQPURL builds the dial string from the configured parts.
func (c Config) AMQPURL() string {
	if c.URL != "" {
		return c.URL
	}
	vhost := c.VHost
	if vhost == "/" {
		vhost = ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d/%s", c.User, c.Password, c.Host, c.Port, vhost)
}

// EmailTask is the wire payload for one confirmation email. Field names are
// the queue contract; the worker on the other side decodes exactly these.
type EmailTask struct {
	UserEmail       string `json:"user_email"`
	UserName        string `json:"user_name"`
	RoomName        string `json:"room_name"`
	LibraryName     string `json:"library_name"`
	ReservationDate string `json:"reservation_date"` // ISO date, YYYY-MM-DD
	StartTime       string `json:"start_time"`       // HH:MM:SS
	EndTime         string `json:"end_time"`         // HH:MM:SS
	ReservationID   int    `json:"reservation_id"`
}

// dialFn is swapped in tests.
var dialFn = amqp.Dial

// Publish enqueues one email task. The queue is declared durable and the
// message marked persistent, so both survive a broker restart. A fresh
// connection is opened per publish, matching the short-lived-session model
// of the HTTP handlers.
func Publish(ctx context.Context, cfg Config, task EmailTask) error {
	conn, err := dialFn(cfg.AMQPURL())
	if err != nil {
		return fmt.Errorf("queue: dial: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("queue: open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(cfg.Name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue: declare %s: %w", cfg.Name, err)
	}

	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("queue: marshal task: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", cfg.Name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("queue: publish: %w", err)
	}
	return nil
}

// Ping reports whether the broker accepts connections right now.
func Ping(cfg Config) bool {
	conn, err := dialFn(cfg.AMQPURL())
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
