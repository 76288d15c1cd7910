package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the envelope for failed requests. Successful requests return
// the entity itself, so clients never unwrap successful payloads.
type Body struct {
	Error string `json:"error"`
}

// JSON writes a successful response body as-is.
func JSON(c *gin.Context, code int, payload any) {
	c.JSON(code, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes a failure with a human-readable error message and stops
// further handlers. No stack trace or internal detail leaves this layer.
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Body{Error: message})
}
