package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild/errs"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/models"
)

func metadataTable(ids ...string) models.Table {
	t := models.Table{Name: "Metadata", Columns: []string{"ipm_id", "species"}}
	for _, id := range ids {
		t.Rows = append(t.Rows, []models.Value{models.Text(id), models.Text("sp-" + id)})
	}
	return t
}

func TestMergeRowCountAdditivity(t *testing.T) {
	primary := models.Collection{"Metadata": metadataTable("a1", "a2", "a3")}
	secondary := models.Collection{"Metadata": metadataTable("b1", "b2")}

	merged, err := Merge(primary, secondary, []string{"Metadata"})
	require.NoError(t, err)

	assert.Equal(t, 5, merged["Metadata"].NumRows())
}

func TestMergePreservesRowOrder(t *testing.T) {
	primary := models.Collection{"Metadata": metadataTable("a1", "a2")}
	secondary := models.Collection{"Metadata": metadataTable("b1")}

	merged, err := Merge(primary, secondary, []string{"Metadata"})
	require.NoError(t, err)

	got := merged["Metadata"]
	for i, want := range []string{"a1", "a2", "b1"} {
		assert.Equal(t, models.Text(want), got.Rows[i][0], "row %d", i)
	}
	assert.Equal(t, primary["Metadata"].Columns, got.Columns)
}

func TestMergePrimaryOnlyTablePassesThrough(t *testing.T) {
	primary := models.Collection{"Metadata": metadataTable("a1")}
	secondary := models.Collection{}

	merged, err := Merge(primary, secondary, []string{"Metadata"})
	require.NoError(t, err)

	if diff := cmp.Diff(primary["Metadata"], merged["Metadata"]); diff != "" {
		t.Errorf("primary-only table changed (-want +got):\n%s", diff)
	}
}

func TestMergeDoesNotAliasPrimaryStorage(t *testing.T) {
	primary := models.Collection{"Metadata": metadataTable("a1")}
	secondary := models.Collection{"Metadata": metadataTable("b1")}

	merged, err := Merge(primary, secondary, []string{"Metadata"})
	require.NoError(t, err)

	merged["Metadata"].Rows[0][0] = models.Missing()
	assert.Equal(t, models.Text("a1"), primary["Metadata"].Rows[0][0])
}

func TestMergeColumnMismatchIsSchemaMismatch(t *testing.T) {
	primary := models.Collection{"Metadata": metadataTable("a1")}
	secondary := models.Collection{"Metadata": {
		Name:    "Metadata",
		Columns: []string{"species", "ipm_id"}, // reordered
		Rows:    [][]models.Value{{models.Text("x"), models.Text("y")}},
	}}

	_, err := Merge(primary, secondary, []string{"Metadata"})
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "Metadata")
}

func TestMergeMissingPrimaryTableFails(t *testing.T) {
	_, err := Merge(models.Collection{}, models.Collection{}, []string{"Metadata"})
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}
