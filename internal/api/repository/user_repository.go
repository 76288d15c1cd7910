package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
)

var userTracer = otel.Tracer("repository.user")

// ErrConstraint signals a store-level constraint violation (duplicate
// or too-short username), distinguishable from a plain not-found.
var ErrConstraint = errors.New("constraint violation")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListWithBlogs(ctx context.Context) ([]models.UserWithBlogs, error)
	Count(ctx context.Context) (int, error)
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// Create inserts a new user, assigning a fresh opaque id. The password
// must already be hashed by the caller; this layer never sees plaintext.
func (r *sqliteUserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, span := userTracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	user.ID = uuid.New().String()

	query := `INSERT INTO users (id, username, name, password_hash) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Name, user.PasswordHash)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %s", ErrConstraint, err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by id. A missing user is (nil, nil).
func (r *sqliteUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.GetByID")
	defer span.End()

	var user models.User
	query := `SELECT id, username, name, password_hash FROM users WHERE id = ?`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username. A missing user is (nil, nil).
func (r *sqliteUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.GetByUsername")
	defer span.End()

	var user models.User
	query := `SELECT id, username, name, password_hash FROM users WHERE username = ?`
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// ListWithBlogs returns every user together with the blogs they own.
// Ownership is read from the blogs table at query time; there is no
// denormalized owned-ids column to fall out of sync.
func (r *sqliteUserRepository) ListWithBlogs(ctx context.Context) ([]models.UserWithBlogs, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.ListWithBlogs")
	defer span.End()

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, `SELECT id, username, name, password_hash FROM users ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	type ownedRow struct {
		models.BlogSummary
		OwnerID string `db:"owner_id"`
	}
	var owned []ownedRow
	if err := r.db.SelectContext(ctx, &owned, `SELECT id, title, url, author, owner_id FROM blogs ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("failed to list owned blogs: %w", err)
	}

	byOwner := make(map[string][]models.BlogSummary, len(users))
	for _, row := range owned {
		byOwner[row.OwnerID] = append(byOwner[row.OwnerID], row.BlogSummary)
	}

	result := make([]models.UserWithBlogs, 0, len(users))
	for _, u := range users {
		blogs := byOwner[u.ID]
		if blogs == nil {
			blogs = []models.BlogSummary{}
		}
		result = append(result, models.UserWithBlogs{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Blogs:    blogs,
		})
	}
	return result, nil
}

// Count returns the number of registered users.
func (r *sqliteUserRepository) Count(ctx context.Context) (int, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.Count")
	defer span.End()

	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// isConstraintViolation recognizes the sqlite constraint error classes
// (UNIQUE, CHECK, NOT NULL, FOREIGN KEY) by message, which is the only
// surface the driver exposes.
func isConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
