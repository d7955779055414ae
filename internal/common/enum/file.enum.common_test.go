package enum

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFileTypeAccepts(t *testing.T) {
	tests := []struct {
		fileType FileTypeEnum
		mimeType string
		want     bool
	}{
		{VIDEO, "video/mp4", true},
		{VIDEO, "Video/MP4; codecs=avc1", true},
		{VIDEO, "image/png", false},
		{IMAGE, "image/png", true},
		{IMAGE, "", false},
		{FILE, "application/x-anything", true},
		{FileTypeEnum("audio"), "audio/mpeg", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.fileType.Accepts(tt.mimeType), "%s accepts %q", tt.fileType, tt.mimeType)
	}
}

func TestEnvGinMode(t *testing.T) {
	assert.Equal(t, gin.ReleaseMode, PRODUCTION.GinMode())
	assert.Equal(t, gin.TestMode, TEST.GinMode())
	assert.Equal(t, gin.DebugMode, DEVELOPMENT.GinMode())
	assert.Equal(t, gin.DebugMode, EnvEnum("staging").GinMode())
	assert.False(t, EnvEnum("staging").IsValid())
}

func TestContentTypeEnum(t *testing.T) {
	assert.Equal(t, "multipart/form-data", MultipartForm.ToString())
	assert.True(t, ApplicationOctetStream.IsValid())
	assert.Empty(t, HTTPContentTypeEnum("text/html").ToString())
}
