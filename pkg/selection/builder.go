package selection

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-oplist/pkg/manifest"
)

// FromManifest builds a descriptor from one parsed manifest. A blank
// operator name fails construction with an error naming the entry; no
// partial descriptor is returned. Duplicate names within one manifest merge
// by the same monotonic OR rule Combine applies across manifests.
func FromManifest(m manifest.Manifest) (Descriptor, error) {
	operators := make(map[string]Operator, len(m.Operators))
	for i, entry := range m.Operators {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return Descriptor{}, fmt.Errorf(
				"selection: %s: name is required", describeEntry(m, i))
		}

		op := Operator{
			Name:                name,
			IsRootOperator:      entry.IsRootOperator == nil || *entry.IsRootOperator,
			IsUsedForTraining:   entry.IsUsedForTraining,
			IncludeAllOverloads: entry.IncludeAllOverloads,
			DebugInfo:           canonicalStrings(entry.DebugInfo),
		}
		if existing, ok := operators[name]; ok {
			op = combineOperators(existing, op)
		}
		operators[name] = op
	}
	if len(operators) == 0 {
		operators = nil
	}

	kernelMetadata := combineKernelMetadata(nil, m.KernelMetadata)

	return Descriptor{
		operators:           operators,
		includeAllOperators: m.IncludeAllOperators,
		debugInfo:           canonicalStrings(m.DebugInfo),
		kernelMetadata:      kernelMetadata,
		customClasses:       stringSet(m.CustomClasses),
		buildFeatures:       stringSet(m.BuildFeatures),
	}, nil
}

// FromManifests builds one descriptor per manifest and folds them together.
func FromManifests(manifests ...manifest.Manifest) (Descriptor, error) {
	result := Empty()
	for _, m := range manifests {
		d, err := FromManifest(m)
		if err != nil {
			return Descriptor{}, err
		}
		result = Combine(result, d)
	}
	return result, nil
}

func describeEntry(m manifest.Manifest, index int) string {
	if m.Source != "" {
		return fmt.Sprintf("manifest %s: operator entry %d", m.Source, index)
	}
	return fmt.Sprintf("manifest operator entry %d", index)
}
