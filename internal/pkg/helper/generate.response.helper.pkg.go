package helper

import (
	"net/http"

	_type "github.com/pvlov/gin-multipart-test/internal/common/type"
)

// ParseResponse clamps r.Code into the HTTP status range and fills in a
// default message for it.
func ParseResponse(r *_type.Response) *_type.Response {
	if r.Code < 200 || r.Code > 599 {
		r.Code = http.StatusInternalServerError
	}
	if r.Message == "" {
		r.Message = defaultMessage(r.Code)
	}
	return r
}

func defaultMessage(code int) string {
	switch code {
	case http.StatusOK:
		return "Success"
	case http.StatusCreated:
		return "Created"
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusMethodNotAllowed:
		return "Method Not Allowed"
	case http.StatusRequestEntityTooLarge:
		return "Request Entity Too Large"
	case http.StatusUnsupportedMediaType:
		return "Unsupported Media Type"
	case http.StatusUnprocessableEntity:
		return "Unprocessable Entity"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	}
	return http.StatusText(code)
}
