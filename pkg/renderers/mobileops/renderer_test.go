package mobileops_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-oplist/pkg/manifest"
	"github.com/goliatone/go-oplist/pkg/render"
	"github.com/goliatone/go-oplist/pkg/renderers/mobileops"
	"github.com/goliatone/go-oplist/pkg/selection"
	"github.com/goliatone/go-oplist/pkg/testsupport"
)

func fixture(t *testing.T) selection.Descriptor {
	t.Helper()
	d, err := selection.FromManifest(manifest.Manifest{
		Operators: []manifest.OperatorEntry{
			{Name: "aten::mul"},
			{Name: "aten::add"},
		},
		KernelMetadata: map[string][]string{
			"add_kernel": {"Int", "Float"},
		},
	})
	if err != nil {
		t.Fatalf("build descriptor: %v", err)
	}
	return d
}

func TestRenderer_WhitelistMacro(t *testing.T) {
	renderer, err := mobileops.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), fixture(t), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	header := string(out)
	if !strings.Contains(header, `#define TORCH_OPERATOR_WHITELIST "aten::add;aten::mul;"`) {
		t.Fatalf("missing whitelist macro:\n%s", header)
	}
	if !strings.Contains(header, "#pragma once") {
		t.Fatalf("missing pragma once:\n%s", header)
	}
}

func TestRenderer_KernelDtypeGuard(t *testing.T) {
	renderer, err := mobileops.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), fixture(t), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	header := string(out)
	if !strings.Contains(header, "should_include_kernel_dtype") {
		t.Fatalf("missing dtype guard:\n%s", header)
	}
	if !strings.Contains(header, `compare("add_kernel")`) {
		t.Fatalf("missing kernel tag:\n%s", header)
	}
	if !strings.Contains(header, "at::ScalarType::Float") || !strings.Contains(header, "at::ScalarType::Int") {
		t.Fatalf("missing dtype comparisons:\n%s", header)
	}
}

func TestRenderer_NoKernelMetadataOmitsGuard(t *testing.T) {
	renderer, err := mobileops.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	d, err := selection.FromManifest(manifest.Manifest{
		Operators: []manifest.OperatorEntry{{Name: "aten::add"}},
	})
	if err != nil {
		t.Fatalf("build descriptor: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), d, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "should_include_kernel_dtype") {
		t.Fatalf("guard should be omitted without kernel metadata:\n%s", out)
	}
}

func TestRenderer_BannerOverride(t *testing.T) {
	renderer, err := mobileops.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), selection.Empty(), render.Options{Banner: "custom banner"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "custom banner") {
		t.Fatalf("expected custom banner:\n%s", out)
	}
}
