package manifest

import "context"

// Parser normalises raw manifest documents into Manifest values that the
// selection package consumes.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Manifest, error)
}

// ParserOptions exposes toggles for manifest parsing behaviour.
type ParserOptions struct {
	// AllowEmptyOperators accepts manifests that enumerate no operator
	// entries. Defaults to false: an operator library rule that traces zero
	// operators is almost always a packaging mistake.
	AllowEmptyOperators bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithEmptyOperators toggles acceptance of manifests without operators.
func WithEmptyOperators(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowEmptyOperators = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/manifest call this helper
// to remain consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level oplist package to avoid import cycles.
