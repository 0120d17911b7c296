package operatorsyaml_test

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-oplist/pkg/manifest"
	"github.com/goliatone/go-oplist/pkg/render"
	"github.com/goliatone/go-oplist/pkg/renderers/operatorsyaml"
	"github.com/goliatone/go-oplist/pkg/selection"
	"github.com/goliatone/go-oplist/pkg/testsupport"
)

func fixture(t *testing.T) selection.Descriptor {
	t.Helper()
	d, err := selection.FromManifest(manifest.Manifest{
		Operators: []manifest.OperatorEntry{
			{Name: "aten::add", IncludeAllOverloads: true},
			{Name: "aten::mul", IsUsedForTraining: true},
		},
		BuildFeatures: []string{"quantized"},
	})
	if err != nil {
		t.Fatalf("build descriptor: %v", err)
	}
	return d
}

func TestRenderer_EmitsStableYAML(t *testing.T) {
	renderer := operatorsyaml.New()

	out, err := renderer.Render(testsupport.Context(), fixture(t), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	payload := string(out)
	if !strings.HasPrefix(payload, "# Generated by oplist-gen") {
		t.Fatalf("expected default banner, got:\n%s", payload)
	}

	var decoded selection.Snapshot
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	add, ok := decoded.Operators["aten::add"]
	if !ok || !add.IncludeAllOverloads {
		t.Fatalf("unexpected operators: %+v", decoded.Operators)
	}
	if len(decoded.BuildFeatures) != 1 || decoded.BuildFeatures[0] != "quantized" {
		t.Fatalf("unexpected build features: %v", decoded.BuildFeatures)
	}

	again, err := renderer.Render(testsupport.Context(), fixture(t), render.Options{})
	if err != nil {
		t.Fatalf("render again: %v", err)
	}
	if string(again) != payload {
		t.Fatal("output is not deterministic across runs")
	}
}

func TestRenderer_BannerOverride(t *testing.T) {
	renderer := operatorsyaml.New()

	out, err := renderer.Render(testsupport.Context(), selection.Empty(), render.Options{Banner: "custom banner"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(out), "# custom banner\n") {
		t.Fatalf("expected custom banner, got:\n%s", out)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := operatorsyaml.New()
	if renderer.FileName() != "selected_operators.yaml" {
		t.Fatalf("unexpected file name: %s", renderer.FileName())
	}
	if renderer.Name() != "operators-yaml" {
		t.Fatalf("unexpected name: %s", renderer.Name())
	}
}
