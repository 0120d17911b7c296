// Package operatorsyaml renders the combined descriptor as the
// selected_operators.yaml artifact consumed by downstream build rules.
package operatorsyaml

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-oplist/pkg/render"
	"github.com/goliatone/go-oplist/pkg/selection"
)

const defaultBanner = "Generated by oplist-gen. Do not edit."

// Renderer emits the YAML operator list. yaml.v3 marshals map keys in
// sorted order, so output is stable across runs.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the YAML renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "operators-yaml"
}

func (r *Renderer) ContentType() string {
	return "application/yaml"
}

func (r *Renderer) FileName() string {
	return "selected_operators.yaml"
}

func (r *Renderer) Render(ctx context.Context, d selection.Descriptor, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("operatorsyaml: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	banner := options.Banner
	if banner == "" {
		banner = defaultBanner
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", banner)

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(d.Snapshot()); err != nil {
		return nil, fmt.Errorf("operatorsyaml: encode descriptor: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("operatorsyaml: close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
