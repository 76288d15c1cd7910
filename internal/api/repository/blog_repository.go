package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
)

var blogTracer = otel.Tracer("repository.blog")

// BlogRepository defines the interface for blog data operations.
type BlogRepository interface {
	List(ctx context.Context) ([]models.BlogWithOwner, error)
	ListPlain(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	GetByIDWithOwner(ctx context.Context, id string) (*models.BlogWithOwner, error)
	Insert(ctx context.Context, blog *models.Blog) error
	UpdateByID(ctx context.Context, id string, patch *models.UpdateBlogRequest) (*models.Blog, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type sqliteBlogRepository struct {
	db *sqlx.DB
}

// NewBlogRepository creates a new SQLite-based BlogRepository.
func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &sqliteBlogRepository{db: db}
}

const blogWithOwnerColumns = `
	b.id, b.title, b.url, b.author, b.likes, b.owner_id,
	u.id AS "owner.id", u.username AS "owner.username", u.name AS "owner.name"`

// List returns every blog joined with its owner's public fields, in
// insertion order.
func (r *sqliteBlogRepository) List(ctx context.Context) ([]models.BlogWithOwner, error) {
	ctx, span := blogTracer.Start(ctx, "BlogRepository.List")
	defer span.End()

	blogs := []models.BlogWithOwner{}
	query := `SELECT ` + blogWithOwnerColumns + ` FROM blogs b JOIN users u ON u.id = b.owner_id ORDER BY b.rowid`
	if err := r.db.SelectContext(ctx, &blogs, query); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// ListPlain returns every blog without the owner join, the shape the
// aggregation engine consumes.
func (r *sqliteBlogRepository) ListPlain(ctx context.Context) ([]models.Blog, error) {
	ctx, span := blogTracer.Start(ctx, "BlogRepository.ListPlain")
	defer span.End()

	blogs := []models.Blog{}
	query := `SELECT id, title, url, author, likes, owner_id FROM blogs ORDER BY rowid`
	if err := r.db.SelectContext(ctx, &blogs, query); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// GetByID retrieves a blog by id. A missing blog is (nil, nil).
func (r *sqliteBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	ctx, span := blogTracer.Start(ctx, "BlogRepository.GetByID")
	defer span.End()

	var blog models.Blog
	query := `SELECT id, title, url, author, likes, owner_id FROM blogs WHERE id = ?`
	if err := r.db.GetContext(ctx, &blog, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}
	return &blog, nil
}

// GetByIDWithOwner retrieves a blog joined with its owner summary.
func (r *sqliteBlogRepository) GetByIDWithOwner(ctx context.Context, id string) (*models.BlogWithOwner, error) {
	ctx, span := blogTracer.Start(ctx, "BlogRepository.GetByIDWithOwner")
	defer span.End()

	var blog models.BlogWithOwner
	query := `SELECT ` + blogWithOwnerColumns + ` FROM blogs b JOIN users u ON u.id = b.owner_id WHERE b.id = ?`
	if err := r.db.GetContext(ctx, &blog, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}
	return &blog, nil
}

// Insert stores a new blog, assigning a fresh opaque id.
func (r *sqliteBlogRepository) Insert(ctx context.Context, blog *models.Blog) error {
	ctx, span := blogTracer.Start(ctx, "BlogRepository.Insert")
	defer span.End()

	blog.ID = uuid.New().String()

	query := `INSERT INTO blogs (id, title, url, author, likes, owner_id) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, blog.ID, blog.Title, blog.URL, blog.Author, blog.Likes, blog.OwnerID)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %s", ErrConstraint, err)
		}
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	return nil
}

// UpdateByID applies the patch to the blog's mutable fields and returns
// the updated row, or (nil, nil) when the id is unknown. The owner_id
// column is never part of the update.
func (r *sqliteBlogRepository) UpdateByID(ctx context.Context, id string, patch *models.UpdateBlogRequest) (*models.Blog, error) {
	ctx, span := blogTracer.Start(ctx, "BlogRepository.UpdateByID")
	defer span.End()

	likes := 0
	if patch.Likes != nil {
		likes = *patch.Likes
	}

	query := `UPDATE blogs SET title = ?, url = ?, author = ?, likes = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, patch.Title, patch.URL, patch.Author, likes, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// DeleteByID removes the blog and reports whether a row existed.
func (r *sqliteBlogRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	ctx, span := blogTracer.Start(ctx, "BlogRepository.DeleteByID")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete blog: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// Count returns the number of stored blogs.
func (r *sqliteBlogRepository) Count(ctx context.Context) (int, error) {
	ctx, span := blogTracer.Start(ctx, "BlogRepository.Count")
	defer span.End()

	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM blogs`); err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	return n, nil
}
