// Package multipart assembles multipart/form-data request bodies for
// exercising gin handlers in tests.
//
//	contentType, body, err := multipart.New(nil).
//		WithJSON("json", Metadata{Name: "MyTestVideo"}).
//		WithBytes("file", "test_video.mp4", "video/mp4", content).
//		Build()
//
// Names, filenames and content types are written into the part headers as
// given. A double quote in a name or filename yields a malformed
// Content-Disposition header; no escaping is applied.
package multipart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pvlov/gin-multipart-test/internal/common/enum"
	"github.com/pvlov/gin-multipart-test/internal/pkg/logger"
)

// Builder accumulates parts in insertion order and renders them once.
// A Builder must not be shared between goroutines. The zero value is ready
// to use with DefaultOptions.
type Builder struct {
	opts     *Options
	parts    []Part
	err      error
	consumed bool
}

// New returns an empty builder. A nil opts uses DefaultOptions.
func New(opts *Options) *Builder {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Builder{opts: opts.normalize()}
}

// NewWithBoundary returns an empty builder that renders with boundary.
func NewWithBoundary(boundary string) *Builder {
	return New(DefaultOptions().WithBoundary(boundary))
}

// WithText adds a plain form field. Text parts carry no Content-Type header.
func (b *Builder) WithText(name, value string) *Builder {
	return b.WithPart(Part{
		Kind:    TEXT,
		Name:    name,
		Content: []byte(value),
	})
}

// WithJSON adds an application/json part holding the encoding of value.
// An encoding failure is kept and returned by Build as a *SerializationError.
func (b *Builder) WithJSON(name string, value any) *Builder {
	content, err := marshalJSON(value)
	if err != nil {
		b.fail(&SerializationError{Field: name, Err: err})
		return b
	}
	return b.WithPart(Part{
		Kind:        JSON,
		Name:        name,
		ContentType: enum.ApplicationJSON.ToString(),
		Content:     content,
	})
}

// WithBytes adds a file part. An empty contentType is sent as
// application/octet-stream.
func (b *Builder) WithBytes(name, filename, contentType string, content []byte) *Builder {
	return b.WithPart(Part{
		Kind:        BINARY,
		Name:        name,
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	})
}

// WithPart appends a copy of p, filling in the default content type of its
// kind.
func (b *Builder) WithPart(p Part) *Builder {
	if b.consumed {
		b.fail(ErrConsumed)
		return b
	}
	if !p.Kind.IsValid() {
		b.fail(fmt.Errorf("%w: %q for field %q", ErrInvalidPart, p.Kind, p.Name))
		return b
	}
	if p.ContentType == "" {
		switch p.Kind {
		case JSON:
			p.ContentType = enum.ApplicationJSON.ToString()
		case BINARY:
			p.ContentType = enum.ApplicationOctetStream.ToString()
		}
	}
	p.Content = bytes.Clone(p.Content)
	b.parts = append(b.parts, p)
	return b
}

// Len reports the number of parts added so far.
func (b *Builder) Len() int {
	return len(b.parts)
}

// Err returns the first error recorded while adding parts.
func (b *Builder) Err() error {
	return b.err
}

// Build renders the body and returns the matching Content-Type value.
// It consumes the builder; later calls return ErrConsumed.
//
// A builder with no parts renders only the closing delimiter.
func (b *Builder) Build() (string, []byte, error) {
	if b.consumed {
		return "", nil, ErrConsumed
	}
	b.consumed = true

	if b.opts == nil {
		b.opts = DefaultOptions().normalize()
	}
	if b.err != nil {
		return "", nil, b.err
	}

	boundary, err := b.boundary()
	if err != nil {
		return "", nil, err
	}

	body := render(boundary, b.parts)
	logger.Debug.Printf("multipart body built: boundary=%s parts=%d bytes=%d", boundary, len(b.parts), len(body))

	return ContentType(boundary), body, nil
}

// ContentType returns the Content-Type header value for boundary. Boundaries
// holding tspecials are quoted.
func ContentType(boundary string) string {
	if strings.ContainsAny(boundary, `()<>@,;:\"/[]?= `) {
		boundary = `"` + boundary + `"`
	}
	return enum.MultipartForm.ToString() + "; boundary=" + boundary
}

// marshalJSON encodes value without HTML escaping and without the trailing
// newline json.Encoder appends.
func marshalJSON(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) boundary() (string, error) {
	if b.opts.Boundary != "" {
		if err := ValidateBoundary(b.opts.Boundary); err != nil {
			return "", err
		}
		if collides(b.opts.Boundary, b.parts) {
			return "", fmt.Errorf("%w: %q", ErrBoundaryCollision, b.opts.Boundary)
		}
		return b.opts.Boundary, nil
	}

	for attempt := 0; attempt < b.opts.MaxBoundaryAttempts; attempt++ {
		token, err := b.opts.BoundarySource.Boundary()
		if err != nil {
			return "", fmt.Errorf("multipart: generating boundary: %w", err)
		}
		if err := ValidateBoundary(token); err != nil {
			return "", err
		}
		if !collides(token, b.parts) {
			return token, nil
		}
		logger.Debug.Printf("multipart boundary %s found in payload, regenerating (attempt %d)", token, attempt+1)
	}

	return "", fmt.Errorf("%w: gave up after %d attempts", ErrBoundaryCollision, b.opts.MaxBoundaryAttempts)
}

func collides(token string, parts []Part) bool {
	needle := []byte(token)
	for _, p := range parts {
		if bytes.Contains(p.Content, needle) {
			return true
		}
	}
	return false
}

func render(boundary string, parts []Part) []byte {
	var buf bytes.Buffer

	for _, p := range parts {
		fmt.Fprintf(&buf, "--%s\r\n", boundary)

		if p.Kind == BINARY {
			fmt.Fprintf(&buf, "Content-Disposition: form-data; name=\"%s\"; filename=\"%s\"\r\n", p.Name, p.Filename)
		} else {
			fmt.Fprintf(&buf, "Content-Disposition: form-data; name=\"%s\"\r\n", p.Name)
		}

		if p.Kind != TEXT {
			fmt.Fprintf(&buf, "Content-Type: %s\r\n", p.ContentType)
		}

		buf.WriteString("\r\n")
		buf.Write(p.Content)
		buf.WriteString("\r\n")
	}

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes()
}
