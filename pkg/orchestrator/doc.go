// Package orchestrator wires the manifest loader, parser, descriptor fold,
// and artifact renderers into a single pipeline, providing dependency
// injection friendly helpers for consumers that prefer one entry point.
package orchestrator
