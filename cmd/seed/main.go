package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/devconnector/devconnector-api/config"
	"github.com/devconnector/devconnector-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@devconnector.dev"
	password := "password123"
	name := "Demo Developer"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, helpers.GravatarURL(email)).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var profileID string
	err = db.QueryRow(`
		INSERT INTO profiles (user_id, company, location, bio, status, github_username, skills, social)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET status = EXCLUDED.status, skills = EXCLUDED.skills
		RETURNING id
	`, userID, "Acme Corp", "Berlin, DE", "Full-stack developer seeding demo data",
		"Developer", "octocat",
		"{Go,PostgreSQL,JavaScript}", `{"twitter":"https://twitter.com/demo"}`).Scan(&profileID)
	if err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%s\n", profileID)

	var postID string
	err = db.QueryRow(`
		INSERT INTO posts (user_id, text, name, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, userID, "Hello from the seeded demo account!", name, helpers.GravatarURL(email)).Scan(&postID)
	if err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%s\n", postID)
}
