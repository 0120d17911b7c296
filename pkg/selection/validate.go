package selection

import (
	"fmt"
	"strings"
)

// OverloadPolicyError reports operators whose selection covers every
// overload of their base name when the strict policy forbids that. The
// check is fatal for callers: a blanket overload selection silently bloats
// the build and defeats the point of selecting operators at all.
type OverloadPolicyError struct {
	Operators []string
}

func (e *OverloadPolicyError) Error() string {
	return fmt.Sprintf(
		"selection: operators that include all overloads are not allowed "+
			"unless explicitly permitted: %s",
		strings.Join(e.Operators, ", "),
	)
}

// CheckNoIncludeAllOverloads enforces the strict overload policy. It returns
// an *OverloadPolicyError naming every offending operator, or nil when the
// descriptor only selects explicit overloads.
func CheckNoIncludeAllOverloads(d Descriptor) error {
	offenders := OperatorsWithAllOverloads(d)
	if len(offenders) == 0 {
		return nil
	}
	return &OverloadPolicyError{Operators: offenders}
}
