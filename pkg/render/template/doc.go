// Package template defines renderer-agnostic template interfaces and
// adapters. Artifact renderers depend on the TemplateRenderer seam rather
// than a concrete engine so template backends stay swappable.
package template
