package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger/internal/apperrors"
)

// renderError writes a coded error with its mapped status. Anything
// without a code is logged and answered with a generic 500 so internals
// never leak to the client.
func renderError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"message": appErr.Message})
		return
	}
	log.Printf("[HANDLER] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
