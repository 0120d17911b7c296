package selection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-oplist/pkg/manifest"
	"github.com/goliatone/go-oplist/pkg/selection"
)

func queryFixture(t *testing.T) selection.Descriptor {
	t.Helper()
	return mustDescriptor(t, manifest.Manifest{
		Operators: []manifest.OperatorEntry{
			{Name: "aten::mul", IsUsedForTraining: true},
			{Name: "aten::add"},
			{Name: "aten::conv2d", IncludeAllOverloads: true, IsRootOperator: boolPtr(false)},
			{Name: "aten::relu", IsUsedForTraining: true, IncludeAllOverloads: true},
		},
	})
}

func TestAllOperatorNames_SortedRegardlessOfFlags(t *testing.T) {
	names := selection.AllOperatorNames(queryFixture(t))
	require.Equal(t, []string{"aten::add", "aten::conv2d", "aten::mul", "aten::relu"}, names)
}

func TestTrainingOperatorNames(t *testing.T) {
	names := selection.TrainingOperatorNames(queryFixture(t))
	require.Equal(t, []string{"aten::mul", "aten::relu"}, names)
}

func TestRootOperatorNames(t *testing.T) {
	names := selection.RootOperatorNames(queryFixture(t))
	require.Equal(t, []string{"aten::add", "aten::mul", "aten::relu"}, names)
}

func TestOperatorsWithAllOverloads(t *testing.T) {
	names := selection.OperatorsWithAllOverloads(queryFixture(t))
	require.Equal(t, []string{"aten::conv2d", "aten::relu"}, names)
}

func TestQueries_EmptyDescriptor(t *testing.T) {
	empty := selection.Empty()
	require.Nil(t, selection.AllOperatorNames(empty))
	require.Nil(t, selection.TrainingOperatorNames(empty))
	require.Nil(t, selection.OperatorsWithAllOverloads(empty))
}
