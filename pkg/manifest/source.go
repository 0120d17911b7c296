package manifest

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// fileSource identifies an on-disk manifest.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a manifest file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a manifest inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It
// panics if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("manifest: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("manifest: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// listSource points at a file listing manifest paths, one per whitespace
// separated token.
type listSource struct {
	path string
}

func (s listSource) Location() string {
	return s.path
}

func (s listSource) Kind() SourceKind {
	return SourceKindList
}

// SourceFromList returns a Source for a manifest list file. A leading "@"
// (the build-system convention for response files) is stripped.
func SourceFromList(path string) Source {
	trimmed := strings.TrimPrefix(path, "@")
	return listSource{path: filepath.Clean(trimmed)}
}
