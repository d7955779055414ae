package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pvlov/gin-multipart-test/internal/pkg/logger"
)

const DefaultVersion = "1.0.0"

func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestId", requestID)
		c.Header("X-Request-Id", requestID)

		version := c.GetHeader("version")
		if version == "" {
			version = DefaultVersion
		}
		c.Set("version", version)

		start := time.Now()
		c.Set("start-time", start)
		c.Next()

		logger.HTTP.Printf("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), requestID)
	}
}
