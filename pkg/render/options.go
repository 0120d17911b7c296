package render

// Options describe per-request data that renderers can use to customise
// their output without mutating the selection pipeline.
type Options struct {
	// Banner overrides the generated-by comment emitted at the top of text
	// artifacts. Renderers fall back to their own default when empty.
	Banner string

	// ModelHashes carries the supported-model checksums consumed by the
	// model-check renderer. Other renderers ignore it.
	ModelHashes []string

	// Extra exposes additional template context for callers that ship their
	// own artifact templates.
	Extra map[string]any
}
