package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	_type "github.com/pvlov/gin-multipart-test/internal/common/type"
	"github.com/pvlov/gin-multipart-test/internal/pkg/helper"
)

// ResponseInit stores a _type.SendFunc under "send". Calling it aborts the
// chain and writes the JSON envelope; in gin debug mode the envelope carries
// request timing and the error text.
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		shouldDebug := gin.Mode() == gin.DebugMode
		c.Set("send", _type.SendFunc(func(r *_type.Response) {
			if r.Code == 0 {
				r.Code = http.StatusOK
			}
			r = helper.ParseResponse(r)

			response := _type.ResponseAPI{
				Message: r.Message,
				Data:    r.Data,
			}

			if shouldDebug {
				startTime := time.Now()
				if t, ok := c.Value("start-time").(time.Time); ok {
					startTime = t
				}
				endTime := time.Now()

				response.Debug = &_type.ResponseAPIDebug{
					RequestID: c.GetString("requestId"),
					Version:   c.GetString("version"),
					StartTime: startTime,
					EndTime:   endTime,
					RuntimeMs: endTime.Sub(startTime).Milliseconds(),
				}
				if r.Error != nil {
					response.Debug.Error = helper.StringPtr(r.Error.Error())
				}
			}

			c.Abort()
			c.JSON(r.Code, response)
		}))

		c.Next()
	}
}

// Send returns the SendFunc installed by ResponseInit.
func Send(c *gin.Context) _type.SendFunc {
	return c.MustGet("send").(_type.SendFunc)
}
