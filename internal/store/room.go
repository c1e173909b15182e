package store

import (
	"context"
	"fmt"

	"biblioreservas/internal/database"
	"biblioreservas/internal/model"
)

func GetRoomByID(ctx context.Context, db database.DB, roomID int) (*model.Room, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, library_name, capacity
		 FROM rooms WHERE id = $1`,
		roomID,
	)
	r := &model.Room{}
	if err := row.Scan(
		&r.ID,
		&r.Name,
		&r.LibraryName,
		&r.Capacity,
	); err != nil {
		return nil, fmt.Errorf("GetRoomByID: %w", err)
	}
	return r, nil
}

// FindRoom looks a room up by its (name, library) pair, used by the seeder
// to avoid duplicate catalog rows.
func FindRoom(ctx context.Context, db database.DB, name, libraryName string) (*model.Room, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, library_name, capacity
		 FROM rooms WHERE name = $1 AND library_name = $2`,
		name,
		libraryName,
	)
	r := &model.Room{}
	if err := row.Scan(
		&r.ID,
		&r.Name,
		&r.LibraryName,
		&r.Capacity,
	); err != nil {
		return nil, fmt.Errorf("FindRoom: %w", err)
	}
	return r, nil
}

func ListRooms(ctx context.Context, db database.DB) ([]model.Room, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, library_name, capacity
		 FROM rooms ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var r model.Room
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.LibraryName,
			&r.Capacity,
		); err != nil {
			return nil, fmt.Errorf("ListRooms: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRooms: %w", err)
	}
	return rooms, nil
}

func CreateRoom(ctx context.Context, db database.DB, r *model.Room) (*model.Room, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO rooms (name, library_name, capacity)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		r.Name,
		r.LibraryName,
		r.Capacity,
	)
	if err := row.Scan(&r.ID); err != nil {
		return nil, fmt.Errorf("CreateRoom: %w", err)
	}
	return r, nil
}
