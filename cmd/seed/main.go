package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/oksasatya/go-blog-api/config"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

// seed inserts a demo account with one post and one comment so a fresh
// environment has something to look at. Safe to run more than once.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, name, nickname)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lower(email)) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, "demo@example.com", hash, "Demo User", "demo").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO posts (user_id, title, body)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM posts WHERE user_id = $1 AND title = $2)
	`, userID, "Hello world", "This is the first post on a brand new blog.")
	if err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}

	var postID string
	err = db.QueryRowContext(ctx, `
		SELECT id FROM posts WHERE user_id = $1 AND title = $2
	`, userID, "Hello world").Scan(&postID)
	if err != nil {
		log.Fatalf("failed to read seeded post: %v", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO comments (post_id, user_id, body)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM comments WHERE post_id = $1 AND user_id = $2)
	`, postID, userID, "First! Commenting on my own post.")
	if err != nil {
		log.Fatalf("failed to seed comment: %v", err)
	}

	log.Printf("seeded user %s with post %s", userID, postID)
}
