package middleware

import (
	"net/http"

	"github.com/biztime/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// MessageBodyTooLarge is returned when a request body exceeds the limit
const MessageBodyTooLarge = "Request body exceeds maximum allowed size"

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(http.StatusRequestEntityTooLarge, MessageBodyTooLarge))
			return
		}

		// Wrap the body with a limited reader for streaming requests
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
