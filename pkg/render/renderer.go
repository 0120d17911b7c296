package render

import (
	"context"

	"github.com/goliatone/go-oplist/pkg/selection"
)

// Renderer converts a combined descriptor into one build artifact.
type Renderer interface {
	// Name identifies the renderer inside a Registry.
	Name() string

	// ContentType reports the serialization format produced by Render.
	ContentType() string

	// FileName is the artifact's conventional file name inside the output
	// directory.
	FileName() string

	Render(ctx context.Context, d selection.Descriptor, options Options) ([]byte, error)
}
