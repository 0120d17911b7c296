package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	pkgmanifest "github.com/goliatone/go-oplist/pkg/manifest"
)

// Loader implements pkgmanifest.Loader by delegating to file, fs.FS, HTTP,
// or list-file strategies. Construction helpers live in the top-level oplist
// package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgmanifest.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgmanifest.LoaderOptions) pkgmanifest.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a manifest from the provided source and wraps it in a
// Document. List sources are rejected; they expand to many documents and
// must go through LoadAll.
func (l *Loader) Load(ctx context.Context, src pkgmanifest.Source) (pkgmanifest.Document, error) {
	if src == nil {
		return pkgmanifest.Document{}, errors.New("manifest loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgmanifest.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgmanifest.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgmanifest.SourceKindURL:
		if !l.allowHTTP {
			return pkgmanifest.Document{}, errors.New("manifest loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	case pkgmanifest.SourceKindList:
		return pkgmanifest.Document{}, errors.New("manifest loader: list sources expand to many documents, use LoadAll")
	default:
		err = errors.New("manifest loader: unsupported source kind")
	}
	if err != nil {
		return pkgmanifest.Document{}, err
	}

	return pkgmanifest.NewDocument(src, data)
}

// LoadAll resolves every source in order, expanding list sources into one
// document per referenced manifest path.
func (l *Loader) LoadAll(ctx context.Context, sources ...pkgmanifest.Source) ([]pkgmanifest.Document, error) {
	var documents []pkgmanifest.Document
	for _, src := range sources {
		if src == nil {
			return nil, errors.New("manifest loader: source is nil")
		}
		if src.Kind() != pkgmanifest.SourceKindList {
			doc, err := l.Load(ctx, src)
			if err != nil {
				return nil, err
			}
			documents = append(documents, doc)
			continue
		}

		expanded, err := expandList(ctx, l.fs, src.Location())
		if err != nil {
			return nil, fmt.Errorf("manifest loader: expand list %s: %w", src.Location(), err)
		}
		for _, entry := range expanded {
			doc, err := l.Load(ctx, entry)
			if err != nil {
				return nil, err
			}
			documents = append(documents, doc)
		}
	}
	return documents, nil
}
