// Package render defines the artifact renderer contract and the registry
// that maps artifact names to renderer implementations. Renderers consume a
// combined selection descriptor and produce the bytes of one build artifact
// (YAML operator list, C++ header, registration source).
package render
