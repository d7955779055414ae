package multipart

import (
	"bytes"
	"net/http"
)

const ContentTypeHeader = "Content-Type"

// BuildRequest builds the body and wraps it in a request ready to be served
// by a gin engine through httptest.
func (b *Builder) BuildRequest(method, target string) (*http.Request, error) {
	contentType, body, err := b.Build()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set(ContentTypeHeader, contentType)
	req.ContentLength = int64(len(body))

	return req, nil
}
