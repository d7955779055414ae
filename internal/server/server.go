package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pvlov/gin-multipart-test/internal/handler/upload"
	"github.com/pvlov/gin-multipart-test/internal/pkg/middleware"
	"github.com/pvlov/gin-multipart-test/internal/pkg/validation"
)

// NewEngine wires the middleware chain and the upload routes under /api.
func NewEngine() (*gin.Engine, error) {
	if err := validation.Setup(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestInit())
	r.Use(middleware.ResponseInit())
	r.MaxMultipartMemory = upload.MaxUploadMemory

	handler := upload.NewHandler()
	handler.NewRoutes(r.Group("/api"))

	return r, nil
}
