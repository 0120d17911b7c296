package modelcheck_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-oplist/pkg/render"
	"github.com/goliatone/go-oplist/pkg/renderers/modelcheck"
	"github.com/goliatone/go-oplist/pkg/selection"
	"github.com/goliatone/go-oplist/pkg/testsupport"
)

func TestRenderer_RegistersModelHashes(t *testing.T) {
	renderer, err := modelcheck.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), selection.Empty(), render.Options{
		ModelHashes: []string{"0011aabb", "ffee9988"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	source := string(out)
	if !strings.Contains(source, "SupportedMobileModelCheckerRegistry") {
		t.Fatalf("missing registry struct:\n%s", source)
	}
	if !strings.Contains(source, `"0011aabb",`) || !strings.Contains(source, `"ffee9988",`) {
		t.Fatalf("missing hashes:\n%s", source)
	}
	if !strings.Contains(source, "register_model_versions;") {
		t.Fatalf("missing global registration object:\n%s", source)
	}
}

func TestRenderer_EmptyHashes(t *testing.T) {
	renderer, err := modelcheck.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), selection.Empty(), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "std::unordered_set<std::string>{") {
		t.Fatalf("expected empty set literal:\n%s", out)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := modelcheck.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.FileName() != "SupportedMobileModelsRegistration.cpp" {
		t.Fatalf("unexpected file name: %s", renderer.FileName())
	}
}
