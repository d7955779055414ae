package enum

type HTTPContentTypeEnum string

const (
	ApplicationJSON        HTTPContentTypeEnum = "application/json"
	ApplicationOctetStream HTTPContentTypeEnum = "application/octet-stream"
	MultipartForm          HTTPContentTypeEnum = "multipart/form-data"
	TextPlain              HTTPContentTypeEnum = "text/plain"
)

func (e HTTPContentTypeEnum) ToString() string {
	switch e {
	case ApplicationJSON:
		return "application/json"
	case ApplicationOctetStream:
		return "application/octet-stream"
	case MultipartForm:
		return "multipart/form-data"
	case TextPlain:
		return "text/plain"
	default:
		return ""
	}
}

func (e HTTPContentTypeEnum) IsValid() bool {
	switch e {
	case ApplicationJSON, ApplicationOctetStream, MultipartForm, TextPlain:
		return true
	}
	return false
}
