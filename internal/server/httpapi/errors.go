package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teyvatdex/teyvatdex/internal/common"
)

// writeError maps a domain error onto a status code and a {"message": ...}
// body. Unknown errors are logged with full detail but answered with a
// generic message unless the server runs in dev mode.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
	case errors.Is(err, common.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"message": "already exists"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
	case errors.Is(err, common.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
	default:
		s.logger.Error(c.Request.Context(), "internal error",
			"request_id", c.GetString(requestIDKey), "error", err.Error())
		msg := "internal server error"
		if s.devMode {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
	}
}
