package selection

import "sort"

// AllOperatorNames returns every selected operator name, sorted.
func AllOperatorNames(d Descriptor) []string {
	if len(d.operators) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.operators))
	for name := range d.operators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TrainingOperatorNames returns the names whose record is flagged as used
// for training, sorted.
func TrainingOperatorNames(d Descriptor) []string {
	return filterNames(d, func(op Operator) bool { return op.IsUsedForTraining })
}

// RootOperatorNames returns the names flagged as root operators, sorted.
func RootOperatorNames(d Descriptor) []string {
	return filterNames(d, func(op Operator) bool { return op.IsRootOperator })
}

// OperatorsWithAllOverloads returns the names whose record covers every
// overload of its base name, sorted. A non-empty result fails the strict
// overload policy check.
func OperatorsWithAllOverloads(d Descriptor) []string {
	return filterNames(d, func(op Operator) bool { return op.IncludeAllOverloads })
}

func filterNames(d Descriptor, keep func(Operator) bool) []string {
	var names []string
	for name, op := range d.operators {
		if keep(op) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
