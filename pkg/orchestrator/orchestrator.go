package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-oplist/internal/manifest/loader"
	internalParser "github.com/goliatone/go-oplist/internal/manifest/parser"
	pkgmanifest "github.com/goliatone/go-oplist/pkg/manifest"
	"github.com/goliatone/go-oplist/pkg/modelhash"
	"github.com/goliatone/go-oplist/pkg/render"
	"github.com/goliatone/go-oplist/pkg/renderers/mobileops"
	"github.com/goliatone/go-oplist/pkg/renderers/modelcheck"
	"github.com/goliatone/go-oplist/pkg/renderers/operatorsyaml"
	"github.com/goliatone/go-oplist/pkg/selection"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom manifest loader.
func WithLoader(loader pkgmanifest.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom manifest parser.
func WithParser(parser pkgmanifest.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry, replacing the built-in artifact
// renderers entirely.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithRenderers registers additional renderers alongside the defaults.
func WithRenderers(renderers ...render.Renderer) Option {
	return func(o *Orchestrator) {
		o.extraRenderers = append(o.extraRenderers, renderers...)
	}
}

// WithAllowIncludeAllOverloads disables the strict overload policy check.
// Operators registered without the traced style select every overload of
// their base name; allowing them is an explicit opt-in.
func WithAllowIncludeAllOverloads(allowed bool) Option {
	return func(o *Orchestrator) {
		o.allowIncludeAllOverloads = allowed
	}
}

// WithBanner overrides the generated-by banner emitted in every artifact.
func WithBanner(banner string) Option {
	return func(o *Orchestrator) {
		o.banner = banner
	}
}

// Orchestrator coordinates the full pipeline from manifest sources to
// rendered build artifacts. It applies sensible defaults (YAML loader and
// parser, the three built-in renderers) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	loader                   pkgmanifest.Loader
	parser                   pkgmanifest.Parser
	registry                 *render.Registry
	extraRenderers           []render.Renderer
	allowIncludeAllOverloads bool
	banner                   string
	initialiseErr            error
	defaultsApplied          bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate artifacts from a set of
// model manifests.
type Request struct {
	// Sources identify the manifests to load. List sources expand into one
	// manifest per referenced path.
	Sources []pkgmanifest.Source

	// Manifests allows callers to bypass the loader and parser when they
	// already have parsed payloads. They are combined with any loaded
	// sources.
	Manifests []pkgmanifest.Manifest

	// Artifacts names the renderers to run. Empty means every registered
	// renderer.
	Artifacts []string

	// RenderOptions carries per-request instructions (banner override, extra
	// template context). Model hashes are filled in by the orchestrator.
	RenderOptions render.Options
}

// Artifact is one rendered output file.
type Artifact struct {
	Name        string
	FileName    string
	ContentType string
	Data        []byte
}

// Result bundles the combined descriptor with the rendered artifacts, keyed
// by renderer name.
type Result struct {
	Descriptor selection.Descriptor
	Artifacts  map[string]Artifact
}

// Generate loads and parses the requested manifests, folds them into a
// single descriptor, enforces the overload policy, and renders the requested
// artifacts. Zero manifests is legal and yields the empty descriptor; the
// artifacts then describe an empty selection.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	manifests, err := o.resolveManifests(ctx, req)
	if err != nil {
		return Result{}, err
	}

	descriptor, err := selection.FromManifests(manifests...)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: build descriptor: %w", err)
	}

	if !o.allowIncludeAllOverloads {
		if err := selection.CheckNoIncludeAllOverloads(descriptor); err != nil {
			return Result{}, fmt.Errorf("orchestrator: %w", err)
		}
	}

	hashes, err := modelhash.FromManifests(manifests...)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: %w", err)
	}

	options := req.RenderOptions
	options.ModelHashes = hashes
	if options.Banner == "" {
		options.Banner = o.banner
	}

	names := req.Artifacts
	if len(names) == 0 {
		names = o.registry.List()
	}
	if len(names) == 0 {
		return Result{}, errors.New("orchestrator: no renderers registered")
	}

	artifacts := make(map[string]Artifact, len(names))
	for _, name := range names {
		renderer, err := o.registry.Get(name)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: %w", err)
		}
		data, err := renderer.Render(ctx, descriptor, options)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: render %s: %w", name, err)
		}
		artifacts[name] = Artifact{
			Name:        name,
			FileName:    renderer.FileName(),
			ContentType: renderer.ContentType(),
			Data:        data,
		}
	}

	return Result{Descriptor: descriptor, Artifacts: artifacts}, nil
}

func (o *Orchestrator) resolveManifests(ctx context.Context, req Request) ([]pkgmanifest.Manifest, error) {
	manifests := append([]pkgmanifest.Manifest(nil), req.Manifests...)

	if len(req.Sources) == 0 {
		return manifests, nil
	}

	documents, err := o.loader.LoadAll(ctx, req.Sources...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load manifests: %w", err)
	}
	for _, doc := range documents {
		parsed, err := o.parser.Parse(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: parse manifest: %w", err)
		}
		manifests = append(manifests, parsed)
	}
	return manifests, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgmanifest.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgmanifest.NewParserOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(operatorsyaml.New())

		header, err := mobileops.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default header renderer: %w", err)
		} else {
			o.registry.MustRegister(header)
		}

		check, err := modelcheck.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default model-check renderer: %w", err)
		} else {
			o.registry.MustRegister(check)
		}
	}
	for _, renderer := range o.extraRenderers {
		if renderer == nil {
			continue
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register renderer: %w", err)
		}
	}
	o.extraRenderers = nil

	o.defaultsApplied = true
}
