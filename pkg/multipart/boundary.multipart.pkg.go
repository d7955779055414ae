package multipart

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// MaxBoundaryLength is the RFC 2046 limit on a boundary token.
	MaxBoundaryLength = 70

	boundaryAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	seededLength     = 30
)

// BoundarySource hands out boundary tokens. Builders draw one token per
// attempt, so a source may be asked more than once for a single body.
type BoundarySource interface {
	Boundary() (string, error)
}

type uuidBoundary struct{}

// UUIDBoundary returns random v4 UUIDs. It is the default source.
func UUIDBoundary() BoundarySource {
	return uuidBoundary{}
}

func (uuidBoundary) Boundary() (string, error) {
	return uuid.NewString(), nil
}

type nanoIDBoundary struct {
	size int
}

// NanoIDBoundary returns alphanumeric nanoid tokens of the given size.
func NanoIDBoundary(size int) BoundarySource {
	return nanoIDBoundary{size: size}
}

func (n nanoIDBoundary) Boundary() (string, error) {
	return gonanoid.Generate(boundaryAlphabet, n.size)
}

type fixedBoundary string

// FixedBoundary always returns token.
func FixedBoundary(token string) BoundarySource {
	return fixedBoundary(token)
}

func (f fixedBoundary) Boundary() (string, error) {
	return string(f), nil
}

// SeededBoundary is a reproducible token stream: two sources created with
// the same seed return the same sequence of tokens.
type SeededBoundary struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededBoundary returns a source whose token stream is fully determined
// by seed.
func NewSeededBoundary(seed int64) *SeededBoundary {
	return &SeededBoundary{rnd: rand.New(rand.NewSource(seed))}
}

func (s *SeededBoundary) Boundary() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	sb.Grow(seededLength)
	for i := 0; i < seededLength; i++ {
		sb.WriteByte(boundaryAlphabet[s.rnd.Intn(len(boundaryAlphabet))])
	}
	return sb.String(), nil
}

// ValidateBoundary checks token against the bchars grammar of
// rfc2046#section-5.1.1.
func ValidateBoundary(token string) error {
	if len(token) < 1 || len(token) > MaxBoundaryLength {
		return fmt.Errorf("%w: length %d not in [1, %d]", ErrInvalidBoundary, len(token), MaxBoundaryLength)
	}
	if token[len(token)-1] == ' ' {
		return fmt.Errorf("%w: trailing space", ErrInvalidBoundary)
	}
	for _, b := range token {
		if 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' {
			continue
		}
		switch b {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?', ' ':
			continue
		}
		return fmt.Errorf("%w: character %q", ErrInvalidBoundary, b)
	}
	return nil
}
