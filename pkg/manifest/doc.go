// Package manifest exposes the public contracts for loading and parsing
// per-model operator-usage manifests. Implementations live under
// internal/manifest so the YAML plumbing stays hidden from consumers; the
// selection package consumes the parsed Manifest values defined here.
package manifest
