package manifest_test

import (
	"testing"

	"github.com/goliatone/go-oplist/pkg/manifest"
)

func TestNewDocument_Validation(t *testing.T) {
	if _, err := manifest.NewDocument(nil, []byte("operators: []")); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := manifest.NewDocument(manifest.SourceFromFile("a.yaml"), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDocument_RawIsCopied(t *testing.T) {
	payload := []byte("operators: []")
	doc := manifest.MustNewDocument(manifest.SourceFromFile("a.yaml"), payload)

	payload[0] = 'X'
	if doc.Raw()[0] == 'X' {
		t.Fatal("document payload should not alias caller bytes")
	}

	raw := doc.Raw()
	raw[0] = 'Y'
	if doc.Raw()[0] == 'Y' {
		t.Fatal("Raw should return a fresh copy")
	}
}

func TestSourceKinds(t *testing.T) {
	cases := []struct {
		src  manifest.Source
		kind manifest.SourceKind
	}{
		{manifest.SourceFromFile("models/a.yaml"), manifest.SourceKindFile},
		{manifest.SourceFromFS("models/a.yaml"), manifest.SourceKindFS},
		{manifest.SourceFromURL("https://example.com/a.yaml"), manifest.SourceKindURL},
		{manifest.SourceFromList("@models.list"), manifest.SourceKindList},
	}
	for _, tc := range cases {
		if tc.src.Kind() != tc.kind {
			t.Fatalf("expected %s, got %s", tc.kind, tc.src.Kind())
		}
	}
}

func TestSourceFromList_StripsResponseFilePrefix(t *testing.T) {
	src := manifest.SourceFromList("@models.list")
	if src.Location() != "models.list" {
		t.Fatalf("expected prefix stripped, got %q", src.Location())
	}
}

func TestSourceFromURL_PanicsOnInvalidInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid URL")
		}
	}()
	manifest.SourceFromURL("://broken")
}
