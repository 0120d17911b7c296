// Package selection models the set of operators a group of traced models
// needs at runtime and defines the merge that folds many per-model
// descriptors into one. Combine is commutative, associative, and idempotent
// with Empty() as its identity, so callers may reduce descriptors in any
// order (including tree-reductions) and obtain the same result. Descriptors
// are immutable after construction; every operation returns a new value.
package selection
