package selection

import "sort"

// Operator records one selected operator. Overload-qualified names (e.g.
// "aten::add.Tensor") are distinct entries from their base name; an entry
// with IncludeAllOverloads set covers every overload of its base name.
type Operator struct {
	Name                string   `json:"name" yaml:"name"`
	IsRootOperator      bool     `json:"is_root_operator" yaml:"is_root_operator"`
	IsUsedForTraining   bool     `json:"is_used_for_training" yaml:"is_used_for_training"`
	IncludeAllOverloads bool     `json:"include_all_overloads" yaml:"include_all_overloads"`
	DebugInfo           []string `json:"debug_info,omitempty" yaml:"debug_info,omitempty"`
}

// Descriptor is the union of operators reachable by some set of models plus
// the non-operator selections carried alongside them (kernel dtype metadata,
// custom classes, build features). It is safe for concurrent readers when
// treated as immutable after construction, which every constructor and
// Combine guarantee.
type Descriptor struct {
	operators           map[string]Operator
	includeAllOperators bool
	debugInfo           []string
	kernelMetadata      map[string][]string
	customClasses       map[string]struct{}
	buildFeatures       map[string]struct{}
}

// Empty returns the identity descriptor: no operators, no selections.
func Empty() Descriptor {
	return Descriptor{}
}

// Len reports the number of operator entries.
func (d Descriptor) Len() int {
	return len(d.operators)
}

// Operator returns the record for name, if present.
func (d Descriptor) Operator(name string) (Operator, bool) {
	op, ok := d.operators[name]
	return op, ok
}

// IncludeAllOperators reports whether any contributing manifest demanded the
// full operator universe rather than an enumerated subset.
func (d Descriptor) IncludeAllOperators() bool {
	return d.includeAllOperators
}

// DebugInfo returns the descriptor-level provenance entries in canonical
// (sorted, deduplicated) order.
func (d Descriptor) DebugInfo() []string {
	return append([]string(nil), d.debugInfo...)
}

// KernelMetadata returns a copy of the kernel tag to dtype-list mapping.
func (d Descriptor) KernelMetadata() map[string][]string {
	if len(d.kernelMetadata) == 0 {
		return nil
	}
	out := make(map[string][]string, len(d.kernelMetadata))
	for tag, dtypes := range d.kernelMetadata {
		out[tag] = append([]string(nil), dtypes...)
	}
	return out
}

// CustomClasses returns the selected custom class names, sorted.
func (d Descriptor) CustomClasses() []string {
	return sortedKeys(d.customClasses)
}

// BuildFeatures returns the selected build feature names, sorted.
func (d Descriptor) BuildFeatures() []string {
	return sortedKeys(d.buildFeatures)
}

// Snapshot is the serializable form of a Descriptor. Field order and the
// sorted collections keep marshalled output stable across runs.
type Snapshot struct {
	IncludeAllOperators bool                `json:"include_all_operators" yaml:"include_all_operators"`
	Operators           map[string]Operator `json:"operators" yaml:"operators"`
	DebugInfo           []string            `json:"debug_info,omitempty" yaml:"debug_info,omitempty"`
	KernelMetadata      map[string][]string `json:"kernel_metadata,omitempty" yaml:"kernel_metadata,omitempty"`
	CustomClasses       []string            `json:"custom_classes" yaml:"custom_classes"`
	BuildFeatures       []string            `json:"build_features" yaml:"build_features"`
}

// Snapshot renders the descriptor as a plain value suitable for
// serialization and for equality checks in tests.
func (d Descriptor) Snapshot() Snapshot {
	operators := make(map[string]Operator, len(d.operators))
	for name, op := range d.operators {
		op.DebugInfo = append([]string(nil), op.DebugInfo...)
		operators[name] = op
	}
	return Snapshot{
		IncludeAllOperators: d.includeAllOperators,
		Operators:           operators,
		DebugInfo:           d.DebugInfo(),
		KernelMetadata:      d.KernelMetadata(),
		CustomClasses:       d.CustomClasses(),
		BuildFeatures:       d.BuildFeatures(),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func stringSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

// canonicalStrings sorts and deduplicates, returning nil for empty input so
// zero values compare equal regardless of how they were produced.
func canonicalStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := append([]string(nil), values...)
	sort.Strings(out)
	dedup := out[:0]
	for i, value := range out {
		if i > 0 && out[i-1] == value {
			continue
		}
		dedup = append(dedup, value)
	}
	return dedup
}
