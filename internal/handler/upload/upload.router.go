package upload

import (
	"github.com/gin-gonic/gin"

	"github.com/pvlov/gin-multipart-test/internal/common/enum"
	"github.com/pvlov/gin-multipart-test/internal/pkg/middleware"
)

const MaxUploadMemory = 100 << 20

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	group := e.Group("/videos")

	group.POST("", middleware.MultipartFormMiddleware(middleware.MultipartOpts{
		Files: []middleware.FieldOpts{
			{Name: FileField, Type: enum.VIDEO, Min: 1, Max: 1},
		},
		JSON:      []string{MetadataField},
		MaxMemory: MaxUploadMemory,
	}), h.PostVideo)
}
