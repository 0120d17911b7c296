package selection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-oplist/pkg/manifest"
	"github.com/goliatone/go-oplist/pkg/selection"
)

func boolPtr(v bool) *bool { return &v }

func TestFromManifest_BuildsRecords(t *testing.T) {
	d, err := selection.FromManifest(manifest.Manifest{
		Operators: []manifest.OperatorEntry{
			{Name: "aten::add", IsUsedForTraining: true},
			{Name: "aten::conv2d", IsRootOperator: boolPtr(false), DebugInfo: []string{"resnet"}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	add, ok := d.Operator("aten::add")
	require.True(t, ok)
	require.True(t, add.IsRootOperator, "root defaults to true when the manifest omits it")
	require.True(t, add.IsUsedForTraining)

	conv, ok := d.Operator("aten::conv2d")
	require.True(t, ok)
	require.False(t, conv.IsRootOperator)
	require.Equal(t, []string{"resnet"}, conv.DebugInfo)
}

func TestFromManifest_MissingNameFails(t *testing.T) {
	_, err := selection.FromManifest(manifest.Manifest{
		Source: "models/detector.yaml",
		Operators: []manifest.OperatorEntry{
			{Name: "aten::add"},
			{Name: "   "},
		},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "models/detector.yaml")
	require.Contains(t, err.Error(), "entry 1")
}

func TestFromManifest_DuplicateNamesMergeByOR(t *testing.T) {
	d, err := selection.FromManifest(manifest.Manifest{
		Operators: []manifest.OperatorEntry{
			{Name: "aten::add", IsUsedForTraining: true},
			{Name: "aten::add", IncludeAllOverloads: true},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())

	add, ok := d.Operator("aten::add")
	require.True(t, ok)
	require.True(t, add.IsUsedForTraining)
	require.True(t, add.IncludeAllOverloads)
}

func TestFromManifests_FoldsAllInputs(t *testing.T) {
	d, err := selection.FromManifests(
		manifest.Manifest{Operators: []manifest.OperatorEntry{{Name: "aten::add"}}},
		manifest.Manifest{Operators: []manifest.OperatorEntry{{Name: "aten::mul"}}},
	)
	require.NoError(t, err)
	require.Equal(t, []string{"aten::add", "aten::mul"}, selection.AllOperatorNames(d))
}

func TestFromManifests_FailsFastOnInvalidManifest(t *testing.T) {
	_, err := selection.FromManifests(
		manifest.Manifest{Operators: []manifest.OperatorEntry{{Name: "aten::add"}}},
		manifest.Manifest{Operators: []manifest.OperatorEntry{{Name: ""}}},
	)
	require.Error(t, err)
}
