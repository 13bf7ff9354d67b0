package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/pkg/response"
)

// BodyLimit caps the request body size. Oversized bodies fail during
// bind with a 400; this guard stops the read before buffering them.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 41300, "el cuerpo de la peticion es demasiado grande")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
