// Package mailer sends the reservation-confirmation email over SMTP.
package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"time"
)

// Config is the mail-relay endpoint plus sender identity.
type Config struct {
	Host      string `envconfig:"SMTP_HOST" default:""`
	Port      int    `envconfig:"SMTP_PORT" default:"587"`
	Username  string `envconfig:"SMTP_USERNAME" default:""`
	Password  string `envconfig:"SMTP_PASSWORD" default:""`
	FromEmail string `envconfig:"SMTP_FROM_EMAIL" default:""`
	FromName  string `envconfig:"SMTP_FROM_NAME" default:"BiblioReservas"`
}

// ErrNotConfigured is returned when a required SMTP setting is absent. It is
// checked before any network connection is attempted; callers treat it as a
// non-fatal "email not sent" signal.
var ErrNotConfigured = errors.New("mailer: SMTP configuration incomplete")

// Configured reports whether all required relay settings are present.
func (c Config) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != "" && c.FromEmail != ""
}

// Confirmation carries the reservation details rendered into the email.
// StartTime/EndTime are normalized HH:MM:SS clock strings.
type Confirmation struct {
	UserEmail     string
	UserName      string
	RoomName      string
	LibraryName   string
	Date          time.Time
	StartTime     string
	EndTime       string
	ReservationID int
}

// sendMailFn is swapped in tests.
var sendMailFn = smtp.SendMail

// Send delivers the confirmation email. The relay is dialed with STARTTLS
// and plain auth; any transport or auth failure is wrapped and returned for
// the caller to downgrade per the notification policy.
func Send(cfg Config, m Confirmation) error {
	if !cfg.Configured() {
		return ErrNotConfigured
	}

	msg, err := buildMessage(cfg, m)
	if err != nil {
		return fmt.Errorf("mailer: build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	if err := sendMailFn(addr, auth, cfg.FromEmail, []string{m.UserEmail}, msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", m.UserEmail, err)
	}
	return nil
}

// clock trims a normalized HH:MM:SS string to HH:MM for display.
func clock(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

// buildMessage assembles a multipart/alternative message with plain-text and
// HTML bodies.
func buildMessage(cfg Config, m Confirmation) ([]byte, error) {
	date := m.Date.Format("02/01/2006")
	start := clock(m.StartTime)
	end := clock(m.EndTime)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", cfg.FromName, cfg.FromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", m.UserEmail)
	fmt.Fprintf(&buf, "Subject: Room Reservation Confirmed - BiblioReservas\r\n")
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", mw.Boundary())

	text := fmt.Sprintf(`Hello %s,

Your reservation has been confirmed.

RESERVATION DETAILS
-------------------
Reservation ID: #%d
Library: %s
Room: %s
Date: %s
Time: %s - %s
-------------------

Please arrive on time for your reservation.

Thanks for using BiblioReservas.
`, m.UserName, m.ReservationID, m.LibraryName, m.RoomName, date, start, end)

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto;">
    <div style="background-color: #2563eb; color: white; padding: 20px; text-align: center;">
      <h1>Reservation Confirmed</h1>
    </div>
    <div style="padding: 30px; background-color: #f9fafb;">
      <p>Hello <strong>%s</strong>,</p>
      <p>Your reservation has been confirmed.</p>
      <table style="background-color: white; padding: 20px; border-left: 4px solid #2563eb;">
        <tr><td><strong>Reservation ID:</strong></td><td>#%d</td></tr>
        <tr><td><strong>Library:</strong></td><td>%s</td></tr>
        <tr><td><strong>Room:</strong></td><td>%s</td></tr>
        <tr><td><strong>Date:</strong></td><td>%s</td></tr>
        <tr><td><strong>Time:</strong></td><td>%s - %s</td></tr>
      </table>
      <p>Please arrive on time for your reservation.</p>
      <p>Thanks for using BiblioReservas.</p>
    </div>
    <div style="text-align: center; color: #6b7280; font-size: 12px; padding: 20px;">
      <p>This is an automated message, please do not reply.</p>
    </div>
  </div>
</body>
</html>
`, m.UserName, m.ReservationID, m.LibraryName, m.RoomName, date, start, end)

	for _, part := range []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", text},
		{"text/html; charset=UTF-8", html},
	} {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", part.contentType)
		w, err := mw.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
