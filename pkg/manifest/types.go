package manifest

// OperatorEntry is one operator usage record inside a manifest. Name is the
// only required field. IsRootOperator defaults to true when omitted: a
// manifest that does not distinguish root operators treats every traced
// operator as directly callable.
type OperatorEntry struct {
	Name                string   `yaml:"name" json:"name"`
	IncludeAllOverloads bool     `yaml:"include_all_overloads" json:"include_all_overloads"`
	IsUsedForTraining   bool     `yaml:"is_used_for_training" json:"is_used_for_training"`
	IsRootOperator      *bool    `yaml:"is_root_operator,omitempty" json:"is_root_operator,omitempty"`
	DebugInfo           []string `yaml:"debug_info,omitempty" json:"debug_info,omitempty"`
}

// Manifest is one already-parsed model manifest: the operators a single
// model trace proved reachable plus the non-operator selections recorded
// alongside them.
type Manifest struct {
	Operators           []OperatorEntry     `yaml:"operators" json:"operators"`
	DebugInfo           []string            `yaml:"debug_info,omitempty" json:"debug_info,omitempty"`
	IncludeAllOperators bool                `yaml:"include_all_operators" json:"include_all_operators"`
	KernelMetadata      map[string][]string `yaml:"kernel_metadata,omitempty" json:"kernel_metadata,omitempty"`
	CustomClasses       []string            `yaml:"custom_classes,omitempty" json:"custom_classes,omitempty"`
	BuildFeatures       []string            `yaml:"build_features,omitempty" json:"build_features,omitempty"`

	// Source records where the manifest was loaded from, when known. Parsers
	// fill it in so downstream errors can name the offending file.
	Source string `yaml:"-" json:"-"`
}
