// Package worker drains the confirmation-email queue. It runs as its own
// process (cmd/worker); any number of instances may consume the same queue,
// each holding at most one unacknowledged message.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"biblioreservas/internal/mailer"
	"biblioreservas/internal/queue"
)

// SendFunc delivers one confirmation email; mailer.Send in production.
type SendFunc func(mailer.Config, mailer.Confirmation) error

type Consumer struct {
	queueCfg queue.Config
	mailCfg  mailer.Config
	send     SendFunc

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(queueCfg queue.Config, mailCfg mailer.Config, send SendFunc) *Consumer {
	if send == nil {
		send = mailer.Send
	}
	return &Consumer{queueCfg: queueCfg, mailCfg: mailCfg, send: send}
}

// dialFn and consumeFn are swapped in tests.
var dialFn = amqp.Dial

var consumeFn = func(ctx context.Context, ch *amqp.Channel, name string) (<-chan amqp.Delivery, error) {
	return ch.ConsumeWithContext(ctx, name, "", false, false, false, false, nil)
}

// Connect dials the broker, declares the durable queue (the declaration must
// match the publisher's) and caps unacknowledged deliveries at one so load
// spreads evenly across competing workers.
func (c *Consumer) Connect() error {
	conn, err := dialFn(c.queueCfg.AMQPURL())
	if err != nil {
		return fmt.Errorf("worker: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("worker: open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(c.queueCfg.Name, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("worker: declare queue %s: %w", c.queueCfg.Name, err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("worker: set qos: %w", err)
	}
	c.conn = conn
	c.ch = ch
	return nil
}

func (c *Consumer) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Run consumes until ctx is cancelled or the channel closes. Acknowledgment
// is manual: a processed message is acked, any failure nacks with requeue so
// the task is redelivered (at-least-once).
func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := consumeFn(ctx, c.ch, c.queueCfg.Name)
	if err != nil {
		return fmt.Errorf("worker: consume: %w", err)
	}

	log.Printf("worker: waiting for email tasks on queue %q", c.queueCfg.Name)
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := c.handle(d); err != nil {
				log.Printf("worker: task failed, requeueing: %v", err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// handle processes one delivery: decode, rebuild date/time values, send.
func (c *Consumer) handle(d amqp.Delivery) error {
	var task queue.EmailTask
	if err := json.Unmarshal(d.Body, &task); err != nil {
		return fmt.Errorf("worker: decode task: %w", err)
	}

	log.Printf("worker: processing email task for reservation #%d", task.ReservationID)

	m, err := task.Confirmation()
	if err != nil {
		return err
	}
	if err := c.send(c.mailCfg, m); err != nil {
		return err
	}

	log.Printf("worker: email sent for reservation #%d", task.ReservationID)
	return nil
}
