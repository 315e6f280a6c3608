// Package db provides PostgreSQL persistence for projects and contact
// submissions. The database is optional: the site runs file-only when no
// connection URL is configured.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leonardomurakami/portfolio/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and creates the tables if they do
// not exist yet.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.createSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

func (db *DB) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL,
			description TEXT,
			technologies VARCHAR(500),
			github_url VARCHAR(500),
			demo_url VARCHAR(500),
			image_url VARCHAR(500),
			featured BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// ListProjects returns all stored projects, newest first.
func (db *DB) ListProjects(ctx context.Context) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, COALESCE(description, ''), COALESCE(technologies, ''),
		        COALESCE(github_url, ''), COALESCE(demo_url, ''), COALESCE(image_url, ''),
		        featured, created_at
		 FROM projects
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var p types.Project
		var createdAt time.Time
		if err := rows.Scan(&p.Name, &p.Description, &p.Technologies,
			&p.GitHubURL, &p.DemoURL, &p.ImageURL, &p.Featured, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.UpdatedAt = createdAt.UTC().Format(time.RFC3339)
		p.Source = types.SourceDatabase
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

// InsertProject stores a project record and returns its ID.
func (db *DB) InsertProject(ctx context.Context, p types.Project) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (name, description, technologies, github_url, demo_url, image_url, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		p.Name, p.Description, p.Technologies, p.GitHubURL, p.DemoURL, p.ImageURL, p.Featured,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert project %q: %w", p.Name, err)
	}
	return id, nil
}

// SaveContact stores a contact submission.
func (db *DB) SaveContact(ctx context.Context, sub types.ContactSubmission) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO contacts (id, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.Name, sub.Email, sub.Message, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

// ListContacts returns all stored submissions, oldest first.
func (db *DB) ListContacts(ctx context.Context) ([]types.ContactSubmission, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, message, created_at FROM contacts ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []types.ContactSubmission
	for rows.Next() {
		var c types.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}
