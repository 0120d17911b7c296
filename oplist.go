// Package oplist merges per-model operator-usage manifests into a single
// selective-build descriptor and renders the downstream build artifacts.
// The root package is a thin facade over pkg/orchestrator and friends for
// callers that want a single import.
package oplist

import (
	"context"

	pkgmanifest "github.com/goliatone/go-oplist/pkg/manifest"
	"github.com/goliatone/go-oplist/pkg/orchestrator"
	"github.com/goliatone/go-oplist/pkg/selection"
)

// Descriptor aliases the immutable operator selection set produced by the
// combinator.
type Descriptor = selection.Descriptor

// Operator aliases a single operator record inside a descriptor.
type Operator = selection.Operator

// Manifest aliases one parsed model manifest.
type Manifest = pkgmanifest.Manifest

// Result aliases the orchestrator output bundle.
type Result = orchestrator.Result

// Artifact aliases one rendered output file.
type Artifact = orchestrator.Artifact

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateArtifacts loads the given manifest sources, folds them into one
// descriptor, and renders every registered artifact. It is the simplest
// entry point for callers that just want the output files.
func GenerateArtifacts(ctx context.Context, sources []pkgmanifest.Source, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Sources: sources})
}

// Combine merges two descriptors; see pkg/selection for the algebraic
// contract.
func Combine(a, b Descriptor) Descriptor {
	return selection.Combine(a, b)
}

// Fold reduces any number of descriptors into one, starting from the empty
// descriptor.
func Fold(descriptors ...Descriptor) Descriptor {
	return selection.Fold(descriptors...)
}
