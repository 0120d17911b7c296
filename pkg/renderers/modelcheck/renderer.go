// Package modelcheck renders the SupportedMobileModelsRegistration.cpp
// artifact. The original registry template lived behind a process-wide
// singleton; here it is a plain data-to-text transform fed by the model
// hashes carried in render.Options.
package modelcheck

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-oplist/pkg/render"
	rendertemplate "github.com/goliatone/go-oplist/pkg/render/template"
	gotemplate "github.com/goliatone/go-oplist/pkg/render/template/gotemplate"
	"github.com/goliatone/go-oplist/pkg/selection"
)

const defaultBanner = "Generated by oplist-gen. Do not edit."

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits the registration source for supported-model checking.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the model-check renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("modelcheck renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "model-check"
}

func (r *Renderer) ContentType() string {
	return "text/x-c++src"
}

func (r *Renderer) FileName() string {
	return "SupportedMobileModelsRegistration.cpp"
}

func (r *Renderer) Render(ctx context.Context, _ selection.Descriptor, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("modelcheck renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("modelcheck renderer: template renderer is nil")
	}

	banner := options.Banner
	if banner == "" {
		banner = defaultBanner
	}

	result, err := r.templates.RenderTemplate("templates/registration.cpp.tmpl", map[string]any{
		"banner": banner,
		"hashes": options.ModelHashes,
	})
	if err != nil {
		return nil, fmt.Errorf("modelcheck renderer: render template: %w", err)
	}
	return []byte(result), nil
}
