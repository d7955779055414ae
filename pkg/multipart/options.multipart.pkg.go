package multipart

const (
	// DefaultMaxBoundaryAttempts bounds how often a generated boundary is
	// redrawn after colliding with a payload.
	DefaultMaxBoundaryAttempts = 8
)

// Options configures a Builder. Without a Boundary, tokens come from
// BoundarySource; use NewSeededBoundary for reproducible output.
type Options struct {
	// Boundary, when set, is used verbatim instead of drawing from
	// BoundarySource.
	Boundary            string
	BoundarySource      BoundarySource
	MaxBoundaryAttempts int
}

// DefaultOptions draws random v4 UUID boundaries.
func DefaultOptions() *Options {
	return &Options{
		BoundarySource:      UUIDBoundary(),
		MaxBoundaryAttempts: DefaultMaxBoundaryAttempts,
	}
}

// WithBoundary returns a copy of o that uses token as the boundary.
func (o *Options) WithBoundary(token string) *Options {
	cp := *o
	cp.Boundary = token
	return &cp
}

// WithBoundarySource returns a copy of o that draws tokens from src.
func (o *Options) WithBoundarySource(src BoundarySource) *Options {
	cp := *o
	cp.BoundarySource = src
	return &cp
}

func (o *Options) normalize() *Options {
	cp := *o
	if cp.BoundarySource == nil {
		cp.BoundarySource = UUIDBoundary()
	}
	if cp.MaxBoundaryAttempts <= 0 {
		cp.MaxBoundaryAttempts = DefaultMaxBoundaryAttempts
	}
	return &cp
}
