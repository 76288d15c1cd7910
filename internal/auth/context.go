package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
)

const currentUserKey = "auth.currentUser"

// SetCurrentUser stashes the resolved identity in the request context.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the identity resolved for this request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
