package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/triptales/triptales-api/config"
	"github.com/triptales/triptales-api/internal/domain/entity"
	"github.com/triptales/triptales-api/pkg/helpers"
)

// Seeds an admin account and the base categories for a fresh database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "admin"
	email := "admin@triptales.local"
	password := "changeme123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role
		RETURNING id
	`, username, email, hash, string(entity.RoleAdmin)).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%d username=%s password=%s\n", id, username, password)

	for _, name := range []string{"Beaches", "Mountains", "Cities", "Food", "Culture"} {
		if _, err := db.Exec(`
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			log.Fatalf("failed to seed category %q: %v", name, err)
		}
	}
	fmt.Println("base categories ensured")
}
