// Package mobileops renders the selected_mobile_ops.h artifact: the C++
// header carrying the operator whitelist macro plus the kernel dtype guard
// used by templated selective builds.
package mobileops

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

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

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
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

// Renderer emits the mobile ops header from an embedded pongo2 template.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the header renderer applying any provided options.
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
			return nil, fmt.Errorf("mobileops renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "mobile-ops-header"
}

func (r *Renderer) ContentType() string {
	return "text/x-c++hdr"
}

func (r *Renderer) FileName() string {
	return "selected_mobile_ops.h"
}

func (r *Renderer) Render(ctx context.Context, d selection.Descriptor, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("mobileops renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("mobileops renderer: template renderer is nil")
	}

	banner := options.Banner
	if banner == "" {
		banner = defaultBanner
	}

	viewContext := map[string]any{
		"banner":    banner,
		"whitelist": whitelist(d),
		"kernels":   kernelContext(d),
	}
	for key, value := range options.Extra {
		viewContext[key] = value
	}

	result, err := r.templates.RenderTemplate("templates/selected_mobile_ops.h.tmpl", viewContext)
	if err != nil {
		return nil, fmt.Errorf("mobileops renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// whitelist joins every selected operator name with trailing semicolons, the
// separator the build macro consumer expects.
func whitelist(d selection.Descriptor) string {
	names := selection.AllOperatorNames(d)
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, ";") + ";"
}

func kernelContext(d selection.Descriptor) []map[string]any {
	metadata := d.KernelMetadata()
	if len(metadata) == 0 {
		return nil
	}

	tags := make([]string, 0, len(metadata))
	for tag := range metadata {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	kernels := make([]map[string]any, 0, len(tags))
	for _, tag := range tags {
		kernels = append(kernels, map[string]any{
			"tag":    tag,
			"dtypes": metadata[tag],
		})
	}
	return kernels
}
