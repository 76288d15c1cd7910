package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
	"github.com/VitorVA6/fullstack-part4/internal/api/repository"
	"github.com/VitorVA6/fullstack-part4/internal/auth"
)

var (
	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("expected `username` to be unique")
	// ErrInvalidCredentials is returned on login with a wrong username or password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	List(ctx context.Context) ([]models.UserWithBlogs, error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenService) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

// Register validates the password policy, hashes the credential and
// persists the new user. The raw password never reaches the repository.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The store enforces uniqueness too; a concurrent duplicate
		// slips past the pre-check and lands here.
		if errors.Is(err, repository.ErrConstraint) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues an identity token. Wrong
// username and wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.LoginResponse{Token: token, Username: user.Username, Name: user.Name}, nil
}

// List returns every user with their owned-blog summaries.
func (s *userService) List(ctx context.Context) ([]models.UserWithBlogs, error) {
	return s.userRepo.ListWithBlogs(ctx)
}
