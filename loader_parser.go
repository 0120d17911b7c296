package oplist

import (
	internalLoader "github.com/goliatone/go-oplist/internal/manifest/loader"
	internalParser "github.com/goliatone/go-oplist/internal/manifest/parser"
	pkgmanifest "github.com/goliatone/go-oplist/pkg/manifest"
)

// NewLoader constructs a manifest loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgmanifest.LoaderOption) pkgmanifest.Loader {
	cfg := pkgmanifest.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a manifest parser backed by the internal
// implementation.
func NewParser(options ...pkgmanifest.ParserOption) pkgmanifest.Parser {
	cfg := pkgmanifest.NewParserOptions(options...)
	return internalParser.New(cfg)
}
