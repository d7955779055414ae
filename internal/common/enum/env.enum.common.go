package enum

import "github.com/gin-gonic/gin"

type EnvEnum string

const (
	DEVELOPMENT EnvEnum = "development"
	PRODUCTION  EnvEnum = "production"
	TEST        EnvEnum = "test"
)

func (e EnvEnum) ToString() string {
	switch e {
	case DEVELOPMENT:
		return "development"
	case PRODUCTION:
		return "production"
	case TEST:
		return "test"
	}
	return ""
}

func (e EnvEnum) IsValid() bool {
	switch e {
	case DEVELOPMENT, PRODUCTION, TEST:
		return true
	}
	return false
}

// GinMode maps the environment to a gin mode. Unknown values run in debug
// mode.
func (e EnvEnum) GinMode() string {
	switch e {
	case PRODUCTION:
		return gin.ReleaseMode
	case TEST:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
