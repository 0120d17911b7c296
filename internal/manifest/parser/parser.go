package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	pkgmanifest "github.com/goliatone/go-oplist/pkg/manifest"
)

// Parser implements pkgmanifest.Parser using yaml.v3. Manifests are plain
// YAML mappings; unknown top-level fields are ignored so newer tracers can
// emit extra metadata without breaking older generators.
type Parser struct {
	options pkgmanifest.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgmanifest.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgmanifest.ParserOptions) pkgmanifest.Parser {
	return &Parser{options: options}
}

// Parse decodes a manifest document and validates its operator entries. A
// missing or blank operator name fails the whole manifest; no partial value
// is returned.
func (p *Parser) Parse(ctx context.Context, doc pkgmanifest.Document) (pkgmanifest.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return pkgmanifest.Manifest{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgmanifest.Manifest{}, errors.New("manifest parser: document payload is empty")
	}

	var out pkgmanifest.Manifest
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return pkgmanifest.Manifest{}, fmt.Errorf("manifest parser: decode %s: %w", describeSource(doc), err)
	}

	if len(out.Operators) == 0 && !p.options.AllowEmptyOperators {
		return pkgmanifest.Manifest{}, fmt.Errorf("manifest parser: %s enumerates no operators", describeSource(doc))
	}

	for i, entry := range out.Operators {
		if strings.TrimSpace(entry.Name) == "" {
			return pkgmanifest.Manifest{}, fmt.Errorf(
				"manifest parser: %s: operator entry %d is missing a name", describeSource(doc), i)
		}
	}

	if src := doc.Source(); src != nil {
		out.Source = src.Location()
	}
	return out, nil
}

func describeSource(doc pkgmanifest.Document) string {
	if src := doc.Source(); src != nil {
		return src.Location()
	}
	return "manifest"
}
