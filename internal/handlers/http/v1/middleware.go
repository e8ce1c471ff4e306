package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blogger/internal/model"
)

const contextUserKey = "auth.user"

// bearerToken reads the credential from the Authorization header. The
// canonical form is "Bearer <token>"; a bare token is also accepted.
func bearerToken(c *gin.Context) string {
	raw := c.GetHeader("Authorization")
	return strings.TrimPrefix(raw, "Bearer ")
}

// requireAuth resolves the bearer token to a user and aborts with 401
// otherwise.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.auth.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			renderError(c, err)
			c.Abort()
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
