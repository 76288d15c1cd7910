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

// BlogController handles blog-related HTTP requests.
type BlogController struct {
	blogService service.BlogService
}

// NewBlogController creates a new BlogController.
func NewBlogController(blogService service.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// List handles the blog listing endpoint. No identity is required.
func (bc *BlogController) List(c *gin.Context) {
	blogs, err := bc.blogService.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list blogs", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, blogs)
}

// Create handles blog creation. The identity middleware has already
// resolved the actor; the created blog is owned by them regardless of
// the request body.
func (bc *BlogController) Create(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.BindingMessage(err))
		return
	}

	blog, err := bc.blogService.Create(c.Request.Context(), &req, actor)
	if err != nil {
		slog.Error("failed to create blog", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusCreated, blog)
}

// Update handles blog updates by id. The route is unauthenticated; only
// delete is owner-gated.
func (bc *BlogController) Update(c *gin.Context) {
	var req models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.BindingMessage(err))
		return
	}

	blog, err := bc.blogService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("failed to update blog", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, blog)
}

// Delete handles blog deletion by id for the resolved owner.
func (bc *BlogController) Delete(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	err := bc.blogService.Delete(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, auth.ErrNotOwner):
			response.Error(c, http.StatusUnauthorized, err.Error())
		default:
			slog.Error("failed to delete blog", "error", err)
			response.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response.NoContent(c)
}

// Stats handles the aggregated report over the whole blog collection.
func (bc *BlogController) Stats(c *gin.Context) {
	stats, err := bc.blogService.Stats(c.Request.Context())
	if err != nil {
		slog.Error("failed to compute blog stats", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, stats)
}
