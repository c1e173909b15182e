// Command seed loads the demo user and room catalog. It is idempotent and
// safe to run against a database that already holds data.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"biblioreservas/internal/config"
	"biblioreservas/internal/database"
	"biblioreservas/internal/model"
	"biblioreservas/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	exitFunc        = os.Exit

	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
	findRoom       = store.FindRoom
	createRoom     = store.CreateRoom
)

var demoUser = model.User{Name: "Usuario Demo", Email: "demo@ejemplo.com"}

var demoRooms = []model.Room{
	{Name: "Sala 101", LibraryName: "Biblioteca Central", Capacity: 4},
	{Name: "Sala 102", LibraryName: "Biblioteca Central", Capacity: 2},
	{Name: "Sala 201", LibraryName: "Biblioteca Central", Capacity: 8},
	{Name: "Sala 301", LibraryName: "Biblioteca Central", Capacity: 2},
	{Name: "Sala A1", LibraryName: "Biblioteca de Ciencias", Capacity: 5},
	{Name: "Sala A2", LibraryName: "Biblioteca de Ciencias", Capacity: 3},
	{Name: "Sala B1", LibraryName: "Biblioteca de Humanidades", Capacity: 6},
	{Name: "Sala B2", LibraryName: "Biblioteca de Humanidades", Capacity: 4},
}

func seed(ctx context.Context, db database.DB) error {
	if _, err := getUserByEmail(ctx, db, demoUser.Email); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("lookup user %s: %w", demoUser.Email, err)
		}
		u := demoUser
		if _, err := createUser(ctx, db, &u); err != nil {
			return fmt.Errorf("create user %s: %w", demoUser.Email, err)
		}
		log.Printf("seed: created user %s", demoUser.Email)
	}

	for _, room := range demoRooms {
		if _, err := findRoom(ctx, db, room.Name, room.LibraryName); err == nil {
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("lookup room %s: %w", room.Name, err)
		}
		r := room
		if _, err := createRoom(ctx, db, &r); err != nil {
			return fmt.Errorf("create room %s: %w", room.Name, err)
		}
		log.Printf("seed: created room %s (%s)", room.Name, room.LibraryName)
	}
	return nil
}

func run() error {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	return seed(ctx, db)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
