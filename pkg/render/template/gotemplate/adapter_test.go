package gotemplate_test

import (
	"strings"
	"testing"
	"testing/fstest"

	gotemplate "github.com/goliatone/go-oplist/pkg/render/template/gotemplate"
)

func engineFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/listing.txt.tmpl": &fstest.MapFile{
			Data: []byte("{{ banner }}\n{% for op in ops %}{{ op }};{% endfor %}"),
		},
	}
}

func TestEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error without base dir or fs")
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(engineFS()),
		gotemplate.WithExtension(".tmpl"),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("templates/listing.txt", map[string]any{
		"banner": "generated",
		"ops":    []string{"aten::add", "aten::mul"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "generated") || !strings.Contains(out, "aten::add;aten::mul;") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestEngine_RenderStringWithCPPStringFilter(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(engineFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString(`{{ name|cppstring }}`, map[string]any{
		"name": `quote"back\slash`,
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != `"quote\"back\\slash"` {
		t.Fatalf("unexpected escaping: %s", out)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(engineFS()),
		gotemplate.WithGlobalData(map[string]any{"tool": "oplist-gen"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ tool }}", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "oplist-gen" {
		t.Fatalf("unexpected global context output: %s", out)
	}
}
