package upload_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvlov/gin-multipart-test/internal/handler/upload"
	"github.com/pvlov/gin-multipart-test/internal/server"
	"github.com/pvlov/gin-multipart-test/pkg/multipart"
)

const videosPath = "/api/videos"

var videoContent = []byte("This is a dummy video file")

type envelope struct {
	Data    upload.Result `json:"data"`
	Message string        `json:"message"`
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	engine, err := server.NewEngine()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestPostVideo(t *testing.T) {
	req, err := multipart.New(nil).
		WithJSON(upload.MetadataField, upload.Metadata{Name: "MyTestVideo"}).
		WithBytes(upload.FileField, "test_video.mp4", "video/mp4", videoContent).
		BuildRequest(http.MethodPost, videosPath)
	require.NoError(t, err)

	w, resp := serve(t, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "Uploaded file MyTestVideo, with size: 26", resp.Message)
	assert.Equal(t, upload.Result{
		Name:     "MyTestVideo",
		Filename: "test_video.mp4",
		MimeType: "video/mp4",
		Size:     len(videoContent),
	}, resp.Data)
}

func TestPostVideoAcceptsAnyPartOrder(t *testing.T) {
	req, err := multipart.New(multipart.DefaultOptions().WithBoundarySource(multipart.NewSeededBoundary(3))).
		WithText(upload.PublicField, "true").
		WithBytes(upload.FileField, "clip.webm", "video/webm", videoContent).
		WithJSON(upload.MetadataField, map[string]string{"name": "Clip"}).
		BuildRequest(http.MethodPost, videosPath)
	require.NoError(t, err)

	w, resp := serve(t, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Clip", resp.Data.Name)
	assert.Equal(t, "video/webm", resp.Data.MimeType)
	assert.True(t, resp.Data.Public)
}

func TestPostVideoRejectsBadForms(t *testing.T) {
	meta := upload.Metadata{Name: "MyTestVideo"}

	tests := []struct {
		name    string
		builder *multipart.Builder
		code    int
		message string
	}{
		{
			name:    "missing file",
			builder: multipart.New(nil).WithJSON(upload.MetadataField, meta),
			code:    http.StatusBadRequest,
			message: "Minimum file is 1",
		},
		{
			name: "two files",
			builder: multipart.New(nil).
				WithJSON(upload.MetadataField, meta).
				WithBytes(upload.FileField, "a.mp4", "video/mp4", videoContent).
				WithBytes(upload.FileField, "b.mp4", "video/mp4", videoContent),
			code:    http.StatusBadRequest,
			message: "Maximum file is 1",
		},
		{
			name: "not a video",
			builder: multipart.New(nil).
				WithJSON(upload.MetadataField, meta).
				WithBytes(upload.FileField, "a.png", "image/png", videoContent),
			code:    http.StatusUnsupportedMediaType,
			message: "Please upload a valid video file",
		},
		{
			name:    "missing metadata",
			builder: multipart.New(nil).WithBytes(upload.FileField, "a.mp4", "video/mp4", videoContent),
			code:    http.StatusBadRequest,
			message: "Expected exactly one json field, got 0",
		},
		{
			name: "malformed metadata",
			builder: multipart.New(nil).
				WithPart(multipart.Part{Kind: multipart.JSON, Name: upload.MetadataField, Content: []byte(`{"name":`)}).
				WithBytes(upload.FileField, "a.mp4", "video/mp4", videoContent),
			code:    http.StatusBadRequest,
			message: "Field json is not valid json",
		},
		{
			name: "unknown metadata field",
			builder: multipart.New(nil).
				WithJSON(upload.MetadataField, map[string]string{"name": "x", "title": "y"}).
				WithBytes(upload.FileField, "a.mp4", "video/mp4", videoContent),
			code:    http.StatusBadRequest,
			message: "Failed decoding json field",
		},
		{
			name: "empty name",
			builder: multipart.New(nil).
				WithJSON(upload.MetadataField, upload.Metadata{}).
				WithBytes(upload.FileField, "a.mp4", "video/mp4", videoContent),
			code:    http.StatusUnprocessableEntity,
			message: "Validation failed: VideoForm.Metadata.name: name is required",
		},
		{
			name: "public is not a boolean",
			builder: multipart.New(nil).
				WithJSON(upload.MetadataField, meta).
				WithBytes(upload.FileField, "a.mp4", "video/mp4", videoContent).
				WithText(upload.PublicField, "maybe"),
			code:    http.StatusUnprocessableEntity,
			message: "Validation failed: VideoForm.public: public must be a boolean value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.builder.BuildRequest(http.MethodPost, videosPath)
			require.NoError(t, err)

			w, resp := serve(t, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestPostVideoRequiresMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, videosPath, nil)
	req.Header.Set("Content-Type", "application/json")

	w, resp := serve(t, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Equal(t, "Expected multipart/form-data", resp.Message)
}
