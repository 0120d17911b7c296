package mobileops

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// to customise the generated header starting from the built-in layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
