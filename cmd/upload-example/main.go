package main

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pvlov/gin-multipart-test/internal/common/enum"
	"github.com/pvlov/gin-multipart-test/internal/pkg/helper"
	"github.com/pvlov/gin-multipart-test/internal/pkg/logger"
	"github.com/pvlov/gin-multipart-test/internal/server"
)

const defaultPort = 8001

func main() {
	logger.Setup()

	if err := helper.HandleAppError(helper.LoadEnv(), "main", "load env", true); err != nil {
		os.Exit(1)
	}

	env := enum.EnvEnum(helper.GetEnvOrDefault("APP_ENV", enum.DEVELOPMENT.ToString()))
	if !env.IsValid() {
		logger.Warning.Printf("unknown APP_ENV %q, running as %s", env, enum.DEVELOPMENT.ToString())
		env = enum.DEVELOPMENT
	}
	gin.SetMode(env.GinMode())
	if env == enum.PRODUCTION {
		logger.Silence()
	}

	r, err := server.NewEngine()
	if err := helper.HandleAppError(err, "main", "build engine", true); err != nil {
		os.Exit(1)
	}

	port := helper.GetEnvAsInt("PORT")
	if port == 0 {
		port = defaultPort
	}

	logger.Info.Printf("listening on :%d (%s)", port, env.ToString())
	if err := helper.HandleAppError(r.Run(":"+strconv.Itoa(port)), "main", "run", true); err != nil {
		os.Exit(1)
	}
}
