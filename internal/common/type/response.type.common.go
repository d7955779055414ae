package types

import "time"

type Response struct {
	Data    any
	Message string
	Code    int
	Error   error
}

type ResponseAPIDebug struct {
	RequestID string    `json:"requestId"`
	Version   string    `json:"version"`
	Error     *string   `json:"error"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	RuntimeMs int64     `json:"runtimeMs"`
}

type ResponseAPI struct {
	Data    any               `json:"data"`
	Message string            `json:"message"`
	Debug   *ResponseAPIDebug `json:"debug,omitempty"`
}

// SendFunc is stored on the gin context under "send" by the response
// middleware.
type SendFunc func(r *Response)
