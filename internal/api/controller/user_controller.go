package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
	"github.com/VitorVA6/fullstack-part4/internal/api/response"
	"github.com/VitorVA6/fullstack-part4/internal/api/service"
	"github.com/VitorVA6/fullstack-part4/internal/auth"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles the user registration endpoint. Policy violations
// (short or duplicate username, short password) all surface as 422.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.BindingMessage(err))
		return
	}

	user, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPassword):
			response.Error(c, http.StatusUnprocessableEntity, "invalid password")
		case errors.Is(err, service.ErrUsernameTaken):
			response.Error(c, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("failed to register user", "error", err)
			response.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response.JSON(c, http.StatusCreated, user)
}

// Login handles the login endpoint and returns an identity token.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.BindingMessage(err))
		return
	}

	res, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, err.Error())
			return
		}
		slog.Error("failed to log user in", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// List handles the user listing endpoint.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, users)
}
