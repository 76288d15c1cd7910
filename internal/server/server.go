package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/VitorVA6/fullstack-part4/internal/api/controller"
	"github.com/VitorVA6/fullstack-part4/internal/api/repository"
	"github.com/VitorVA6/fullstack-part4/internal/auth"
)

var tracer = otel.Tracer("server")

// Server wires the HTTP transport: routing, identity middleware and the
// controllers. It owns no business rules.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the gin engine and registers every route.
func NewServer(
	users *controller.UserController,
	blogs *controller.BlogController,
	tokens *auth.TokenService,
	userRepo repository.UserRepository,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(), traceRequests())

	requireUser := RequireUser(tokens, userRepo)

	api := engine.Group("/api")
	{
		api.GET("/blogs", blogs.List)
		api.GET("/blogs/stats", blogs.Stats)
		api.POST("/blogs", requireUser, blogs.Create)
		api.PUT("/blogs/:id", blogs.Update)
		api.DELETE("/blogs/:id", requireUser, blogs.Delete)

		api.GET("/users", users.List)
		api.POST("/users", users.Register)

		api.POST("/login", users.Login)
	}

	return &Server{engine: engine}
}

// Engine exposes the underlying handler for the http.Server in main and
// for httptest in the API tests.
func (s *Server) Engine() http.Handler {
	return s.engine
}

// traceRequests opens a span per request and records the route outcome.
func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath(), trace.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
		))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Writer.Status()))
	}
}
