package enum

import "strings"

type FileTypeEnum string

const (
	IMAGE FileTypeEnum = "image"
	VIDEO FileTypeEnum = "video"
	FILE  FileTypeEnum = "file"
)

var (
	imageMimeTypes = map[string]struct{}{
		"image/jpeg": {}, "image/png": {}, "image/gif": {}, "image/bmp": {}, "image/webp": {},
		"image/tiff": {}, "image/svg+xml": {}, "image/x-icon": {}, "image/heic": {}, "image/heif": {},
	}
	videoMimeTypes = map[string]struct{}{
		"video/mp4": {}, "video/webm": {}, "video/ogg": {}, "video/avi": {}, "video/mkv": {},
		"video/quicktime": {}, "video/x-flv": {}, "video/x-msvideo": {},
	}
)

func (e FileTypeEnum) ToString() string {
	switch e {
	case IMAGE:
		return "image"
	case FILE:
		return "file"
	case VIDEO:
		return "video"
	default:
		return ""
	}
}

func (e FileTypeEnum) IsValid() bool {
	switch e {
	case IMAGE, FILE, VIDEO:
		return true
	}

	return false
}

// Accepts reports whether a part with the given Content-Type may be stored
// under this file type. FILE accepts anything.
func (e FileTypeEnum) Accepts(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0]))
	switch e {
	case IMAGE:
		_, ok := imageMimeTypes[mimeType]
		return ok
	case VIDEO:
		_, ok := videoMimeTypes[mimeType]
		return ok
	case FILE:
		return true
	}
	return false
}
