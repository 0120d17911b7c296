package selection

// Combine merges two descriptors into one. Every operator present in either
// input appears exactly once in the result; entries present in both merge
// their flags by OR so a capability required by any contributing model is
// never dropped. Combine is a pure, total function: neither input is
// mutated and no error can occur for well-formed descriptors.
func Combine(a, b Descriptor) Descriptor {
	operators := make(map[string]Operator, len(a.operators)+len(b.operators))
	for name, op := range a.operators {
		operators[name] = op
	}
	for name, op := range b.operators {
		if existing, ok := operators[name]; ok {
			op = combineOperators(existing, op)
		}
		operators[name] = op
	}
	if len(operators) == 0 {
		operators = nil
	}

	return Descriptor{
		operators:           operators,
		includeAllOperators: a.includeAllOperators || b.includeAllOperators,
		debugInfo:           canonicalStrings(append(a.DebugInfo(), b.debugInfo...)),
		kernelMetadata:      combineKernelMetadata(a.kernelMetadata, b.kernelMetadata),
		customClasses:       combineSets(a.customClasses, b.customClasses),
		buildFeatures:       combineSets(a.buildFeatures, b.buildFeatures),
	}
}

// Fold reduces descriptors left to right starting from Empty(). The order of
// the inputs does not affect the result; Combine's laws make any reduction
// shape equivalent.
func Fold(descriptors ...Descriptor) Descriptor {
	result := Empty()
	for _, d := range descriptors {
		result = Combine(result, d)
	}
	return result
}

// combineOperators assumes both records carry the same name.
func combineOperators(lhs, rhs Operator) Operator {
	return Operator{
		Name:                lhs.Name,
		IsRootOperator:      lhs.IsRootOperator || rhs.IsRootOperator,
		IsUsedForTraining:   lhs.IsUsedForTraining || rhs.IsUsedForTraining,
		IncludeAllOverloads: lhs.IncludeAllOverloads || rhs.IncludeAllOverloads,
		DebugInfo:           canonicalStrings(append(append([]string(nil), lhs.DebugInfo...), rhs.DebugInfo...)),
	}
}

func combineKernelMetadata(lhs, rhs map[string][]string) map[string][]string {
	if len(lhs) == 0 && len(rhs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(lhs)+len(rhs))
	for tag, dtypes := range lhs {
		out[tag] = canonicalStrings(dtypes)
	}
	for tag, dtypes := range rhs {
		out[tag] = canonicalStrings(append(append([]string(nil), out[tag]...), dtypes...))
	}
	return out
}

func combineSets(lhs, rhs map[string]struct{}) map[string]struct{} {
	if len(lhs) == 0 && len(rhs) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(lhs)+len(rhs))
	for key := range lhs {
		out[key] = struct{}{}
	}
	for key := range rhs {
		out[key] = struct{}{}
	}
	return out
}
