package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
	"github.com/VitorVA6/fullstack-part4/internal/api/repository"
	"github.com/VitorVA6/fullstack-part4/internal/auth"
	"github.com/VitorVA6/fullstack-part4/internal/liststats"
)

// ErrBlogNotFound is returned when an id references no stored blog.
var ErrBlogNotFound = errors.New("blog not found")

// BlogStats is the report computed by the aggregation engine over the
// full blog collection.
type BlogStats struct {
	TotalLikes int                    `json:"totalLikes"`
	Favorite   *models.Blog           `json:"favorite"`
	MostBlogs  *liststats.AuthorBlogs `json:"mostBlogs"`
	MostLikes  *liststats.AuthorLikes `json:"mostLikes"`
}

// BlogService defines the interface for blog-related business logic.
type BlogService interface {
	List(ctx context.Context) ([]models.BlogWithOwner, error)
	Create(ctx context.Context, req *models.CreateBlogRequest, actor *models.User) (*models.BlogWithOwner, error)
	Update(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id string, actor *models.User) error
	Stats(ctx context.Context) (*BlogStats, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

// List returns every blog with its owner summary.
func (s *blogService) List(ctx context.Context) ([]models.BlogWithOwner, error) {
	return s.blogRepo.List(ctx)
}

// Create stores a new blog owned by the actor. Ownership is bound to the
// resolved identity unconditionally; nothing in the request can name a
// different owner.
func (s *blogService) Create(ctx context.Context, req *models.CreateBlogRequest, actor *models.User) (*models.BlogWithOwner, error) {
	if err := auth.AuthorizeCreate(actor); err != nil {
		return nil, err
	}

	blog := models.NewBlog(req, actor.ID)
	if err := s.blogRepo.Insert(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	created, err := s.blogRepo.GetByIDWithOwner(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrBlogNotFound
	}
	return created, nil
}

// Update rewrites the blog's mutable fields. It deliberately requires no
// identity and no ownership check; only delete is owner-gated.
func (s *blogService) Update(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.blogRepo.UpdateByID(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

// Delete removes the blog after the ownership check. The existence check
// runs first, so an unknown id surfaces as not-found rather than as an
// ownership failure.
func (s *blogService) Delete(ctx context.Context, id string, actor *models.User) error {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if blog == nil {
		return ErrBlogNotFound
	}

	if err := auth.AuthorizeDelete(blog, actor); err != nil {
		return err
	}

	deleted, err := s.blogRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBlogNotFound
	}
	return nil
}

// Stats fetches the current collection and runs the aggregation engine
// over it. Nothing is cached; every call reads current state.
func (s *blogService) Stats(ctx context.Context) (*BlogStats, error) {
	blogs, err := s.blogRepo.ListPlain(ctx)
	if err != nil {
		return nil, err
	}
	return &BlogStats{
		TotalLikes: liststats.TotalLikes(blogs),
		Favorite:   liststats.FavoriteBlog(blogs),
		MostBlogs:  liststats.MostBlogs(blogs),
		MostLikes:  liststats.MostLikes(blogs),
	}, nil
}
