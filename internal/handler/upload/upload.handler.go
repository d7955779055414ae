package upload

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	_type "github.com/pvlov/gin-multipart-test/internal/common/type"
	"github.com/pvlov/gin-multipart-test/internal/pkg/helper"
	"github.com/pvlov/gin-multipart-test/internal/pkg/logger"
	"github.com/pvlov/gin-multipart-test/internal/pkg/middleware"
	"github.com/pvlov/gin-multipart-test/internal/pkg/validation"
)

const (
	FileField     = "file"
	MetadataField = "json"
	PublicField   = "public"
)

type Metadata struct {
	Name string `json:"name" validate:"required,max=255"`
}

type VideoForm struct {
	Metadata Metadata
	Public   _type.StringToBool `json:"public" validate:"stringToBool"`
}

type Result struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Size     int    `json:"size"`
	Public   bool   `json:"public"`
}

type Handler struct{}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
	PostVideo(c *gin.Context)
}

func NewHandler() IHandler {
	return &Handler{}
}

// PostVideo accepts a JSON metadata part, a single video file and an
// optional public flag.
func (h *Handler) PostVideo(c *gin.Context) {
	send := middleware.Send(c)
	files := c.MustGet("bufferedFiles").(_type.BufferedFiles)
	jsonFields := c.MustGet("jsonFields").(_type.JSONFields)

	form := VideoForm{Public: _type.StringToBool(c.PostForm(PublicField))}
	if err := helper.ByteToStruct(jsonFields[MetadataField], &form.Metadata); err != nil {
		send(helper.ParseResponse(&_type.Response{
			Code:    http.StatusBadRequest,
			Message: "Failed decoding " + MetadataField + " field",
			Error:   err,
		}))
		return
	}
	if err := validation.Validate(&form); err != nil {
		send(helper.ParseResponse(&_type.Response{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
			Error:   err,
		}))
		return
	}

	file, ok := files.First(FileField)
	if !ok {
		send(helper.ParseResponse(&_type.Response{Code: http.StatusBadRequest, Message: "Missing " + FileField + " field"}))
		return
	}

	logger.Info.Printf("received video %q (%s, %d bytes)", file.OriginalName, file.MimeType, file.Size)

	send(helper.ParseResponse(&_type.Response{
		Code:    http.StatusCreated,
		Message: fmt.Sprintf("Uploaded file %s, with size: %d", form.Metadata.Name, file.Size),
		Data: Result{
			Name:     form.Metadata.Name,
			Filename: file.OriginalName,
			MimeType: file.MimeType,
			Size:     file.Size,
			Public:   form.Public.ToBool(),
		},
	}))
}
