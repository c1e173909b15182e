package worker

import (
	"context"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"biblioreservas/internal/mailer"
	"biblioreservas/internal/queue"
)

func restoreDial() {
	dialFn = amqp.Dial
}

type fakeAcknowledger struct {
	acks     []uint64
	nacks    []uint64
	multiple bool
	requeue  bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acks = append(f.acks, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacks = append(f.nacks, tag)
	f.multiple = multiple
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return errors.New("unexpected Reject")
}

func taskBody(t *testing.T) []byte {
	t.Helper()
	return []byte(`{
		"user_email": "ana@example.com",
		"user_name": "Ana",
		"room_name": "Sala 101",
		"library_name": "Biblioteca Central",
		"reservation_date": "2026-09-01",
		"start_time": "14:00:00",
		"end_time": "16:00:00",
		"reservation_id": 7
	}`)
}

func TestNewConsumerDefaultSend(t *testing.T) {
	c := NewConsumer(queue.Config{}, mailer.Config{}, nil)
	require.NotNil(t, c.send)
}

func TestConnectDialError(t *testing.T) {
	t.Cleanup(restoreDial)
	dialFn = func(url string) (*amqp.Connection, error) { return nil, errors.New("refused") }
	c := NewConsumer(queue.Config{Host: "localhost", Port: 5672, VHost: "/"}, mailer.Config{}, nil)
	err := c.Connect()
	require.Error(t, err)
	require.Contains(t, err.Error(), "worker: dial")
}

func TestRun(t *testing.T) {
	restoreConsume := func() {
		consumeFn = func(ctx context.Context, ch *amqp.Channel, name string) (<-chan amqp.Delivery, error) {
			return ch.ConsumeWithContext(ctx, name, "", false, false, false, false, nil)
		}
	}

	t.Run("acks on success, nacks with requeue on failure", func(t *testing.T) {
		t.Cleanup(restoreConsume)
		ack := &fakeAcknowledger{}
		msgs := make(chan amqp.Delivery, 2)
		msgs <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: taskBody(t)}
		msgs <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte("{")}
		close(msgs)
		consumeFn = func(ctx context.Context, ch *amqp.Channel, name string) (<-chan amqp.Delivery, error) {
			require.Equal(t, "email_notifications", name)
			return msgs, nil
		}

		c := NewConsumer(queue.Config{Name: "email_notifications"}, mailer.Config{}, func(mailer.Config, mailer.Confirmation) error {
			return nil
		})
		require.NoError(t, c.Run(context.Background()))
		require.Equal(t, []uint64{1}, ack.acks)
		require.Equal(t, []uint64{2}, ack.nacks)
		require.False(t, ack.multiple)
		require.True(t, ack.requeue)
	})

	t.Run("send failure requeues", func(t *testing.T) {
		t.Cleanup(restoreConsume)
		ack := &fakeAcknowledger{}
		msgs := make(chan amqp.Delivery, 1)
		msgs <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 7, Body: taskBody(t)}
		close(msgs)
		consumeFn = func(ctx context.Context, ch *amqp.Channel, name string) (<-chan amqp.Delivery, error) {
			return msgs, nil
		}

		c := NewConsumer(queue.Config{}, mailer.Config{}, func(mailer.Config, mailer.Confirmation) error {
			return errors.New("smtp down")
		})
		require.NoError(t, c.Run(context.Background()))
		require.Empty(t, ack.acks)
		require.Equal(t, []uint64{7}, ack.nacks)
		require.True(t, ack.requeue)
	})

	t.Run("stops on context cancel", func(t *testing.T) {
		t.Cleanup(restoreConsume)
		consumeFn = func(ctx context.Context, ch *amqp.Channel, name string) (<-chan amqp.Delivery, error) {
			return make(chan amqp.Delivery), nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := NewConsumer(queue.Config{}, mailer.Config{}, func(mailer.Config, mailer.Confirmation) error { return nil })
		require.NoError(t, c.Run(ctx))
	})

	t.Run("consume error propagates", func(t *testing.T) {
		t.Cleanup(restoreConsume)
		consumeFn = func(ctx context.Context, ch *amqp.Channel, name string) (<-chan amqp.Delivery, error) {
			return nil, errors.New("channel closed")
		}
		c := NewConsumer(queue.Config{}, mailer.Config{}, func(mailer.Config, mailer.Confirmation) error { return nil })
		require.Error(t, c.Run(context.Background()))
	})
}

func TestHandle(t *testing.T) {
	t.Run("sends the decoded task", func(t *testing.T) {
		var got mailer.Confirmation
		c := NewConsumer(queue.Config{}, mailer.Config{FromEmail: "noreply@example.com"}, func(cfg mailer.Config, m mailer.Confirmation) error {
			require.Equal(t, "noreply@example.com", cfg.FromEmail)
			got = m
			return nil
		})
		require.NoError(t, c.handle(amqp.Delivery{Body: taskBody(t)}))
		require.Equal(t, "ana@example.com", got.UserEmail)
		require.Equal(t, "Sala 101", got.RoomName)
		require.Equal(t, "14:00:00", got.StartTime)
		require.Equal(t, 7, got.ReservationID)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		c := NewConsumer(queue.Config{}, mailer.Config{}, func(mailer.Config, mailer.Confirmation) error {
			t.Fatal("send should not run")
			return nil
		})
		require.Error(t, c.handle(amqp.Delivery{Body: []byte("{")}))
	})

	t.Run("bad date in task", func(t *testing.T) {
		c := NewConsumer(queue.Config{}, mailer.Config{}, func(mailer.Config, mailer.Confirmation) error {
			t.Fatal("send should not run")
			return nil
		})
		err := c.handle(amqp.Delivery{Body: []byte(`{"reservation_date":"nope","start_time":"14:00","end_time":"15:00"}`)})
		require.Error(t, err)
	})

	t.Run("send failure propagates", func(t *testing.T) {
		c := NewConsumer(queue.Config{}, mailer.Config{}, func(mailer.Config, mailer.Confirmation) error {
			return errors.New("smtp down")
		})
		require.Error(t, c.handle(amqp.Delivery{Body: taskBody(t)}))
	})
}
