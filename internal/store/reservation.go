package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"biblioreservas/internal/database"
	"biblioreservas/internal/model"
)

// CreateReservation inserts the row inside a transaction and commits. On any
// failure the transaction is rolled back and the wrapped error returned; a
// uq_room_datetime collision surfaces as a unique violation the caller can
// detect with IsUniqueViolation.
func CreateReservation(ctx context.Context, db database.DB, r *model.Reservation) (*model.Reservation, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateReservation: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO reservations (user_id, room_id, date, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		r.UserID,
		r.RoomID,
		r.Date,
		r.StartTime,
		r.EndTime,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateReservation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateReservation: commit: %w", err)
	}
	return r, nil
}

// ListReservationsByUser returns the user's reservations joined with their
// room summaries, most recent date first, later start first within a date.
func ListReservationsByUser(ctx context.Context, db database.DB, userID int) ([]model.ReservationWithRoom, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.user_id, r.room_id, r.date,
		        r.start_time::text, r.end_time::text, r.created_at,
		        m.name, m.library_name
		 FROM reservations r
		 JOIN rooms m ON m.id = r.room_id
		 WHERE r.user_id = $1
		 ORDER BY r.date DESC, r.start_time DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReservationsByUser: %w", err)
	}
	defer rows.Close()

	var out []model.ReservationWithRoom
	for rows.Next() {
		var r model.ReservationWithRoom
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.RoomID,
			&r.Date,
			&r.StartTime,
			&r.EndTime,
			&r.CreatedAt,
			&r.RoomName,
			&r.LibraryName,
		); err != nil {
			return nil, fmt.Errorf("ListReservationsByUser: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReservationsByUser: %w", err)
	}
	return out, nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
