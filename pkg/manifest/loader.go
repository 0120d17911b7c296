package manifest

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches manifest documents from different sources (filesystem,
// fs.FS, HTTP, list files). Implementations live under internal/manifest
// but satisfy this contract.
type Loader interface {
	// Load resolves a single source into a document. List sources are
	// rejected here; use LoadAll for sources that may expand.
	Load(ctx context.Context, src Source) (Document, error)

	// LoadAll resolves every source, expanding list sources into one
	// document per referenced manifest.
	LoadAll(ctx context.Context, sources ...Source) ([]Document, error)
}

// LoaderOptions configures how a Loader resolves sources. Offline-first:
// HTTP is disabled unless a client is injected or the fallback is enabled.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; defaults to the
	// operating system if nil.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means HTTP sources are disabled unless AllowHTTPFallback
	// is true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles the default HTTP loader when no client is
	// supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations when AllowHTTPFallback is
	// true.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for relative paths.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote manifests.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading using http.DefaultClient semantics
// and assigns an optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level oplist package to prevent import cycles.
