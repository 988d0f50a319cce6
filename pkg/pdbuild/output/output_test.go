package output

import (
	"io"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild/errs"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/models"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/schema"
)

func readFile(t *testing.T, fsys billy.Filesystem, path string) string {
	t.Helper()
	f, err := fsys.Open(path)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(data)
}

func fileNames(t *testing.T, fsys billy.Filesystem, dir string) []string {
	t.Helper()
	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestExportReadTableRoundTrip(t *testing.T) {
	table := models.Table{
		Name:    "ParameterValues",
		Columns: []string{"ipm_id", "parameter_name", "parameter_value"},
		Rows: [][]models.Value{
			{models.Text("aaaa1"), models.Text("surv_int"), models.Number(-1.35)},
			{models.Text("aaaa1"), models.Text("grow_slope"), models.Missing()},
			{models.Text("aaaa2"), models.Text(`says "large"`), models.Bool(true)},
		},
	}
	fsys := memfs.New()

	err := Export(fsys, "clean", models.Collection{"ParameterValues": table}, []string{"ParameterValues"})
	require.NoError(t, err)

	got, err := ReadTable(fsys, "clean/ParameterValues.txt")
	require.NoError(t, err)

	if diff := cmp.Diff(table, got); diff != "" {
		t.Errorf("round trip changed the table (-exported +read):\n%s", diff)
	}
}

func TestExportQuotesEveryField(t *testing.T) {
	table := models.Table{
		Name:    "Metadata",
		Columns: []string{"ipm_id", "n_years"},
		Rows: [][]models.Value{
			{models.Text("aaaa1"), models.Number(4)},
			{models.Text("aaaa2"), models.Missing()},
		},
	}
	fsys := memfs.New()

	require.NoError(t, Export(fsys, "clean", models.Collection{"Metadata": table}, []string{"Metadata"}))

	content := readFile(t, fsys, "clean/Metadata.txt")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "\"ipm_id\"\t\"n_years\"", lines[0])
	assert.Equal(t, "\"aaaa1\"\t\"4\"", lines[1])
	// Missing cell is a quoted token, never an empty field.
	assert.Equal(t, "\"aaaa2\"\t\"NA\"", lines[2])
}

func TestExportRenamesHierarchTable(t *testing.T) {
	table := models.Table{
		Name:    schema.HierarchTable,
		Columns: []string{"ipm_id", "range"},
		Rows:    [][]models.Value{{models.Text("aaaa1"), models.Text("site_1; site_2")}},
	}
	fsys := memfs.New()

	err := Export(fsys, "clean", models.Collection{schema.HierarchTable: table}, []string{schema.HierarchTable})
	require.NoError(t, err)

	names := fileNames(t, fsys, "clean")
	assert.Contains(t, names, "ParSetIndices.txt")
	assert.NotContains(t, names, "HierarchTable.txt")
}

func TestExportReplacesWholeDirectory(t *testing.T) {
	first := models.Collection{
		"Metadata":       {Name: "Metadata", Columns: []string{"ipm_id"}},
		"StateVariables": {Name: "StateVariables", Columns: []string{"ipm_id"}},
	}
	fsys := memfs.New()
	require.NoError(t, Export(fsys, "clean", first, []string{"Metadata", "StateVariables"}))

	// Second run carries one fewer table; the stale file must not survive.
	second := models.Collection{
		"Metadata": {Name: "Metadata", Columns: []string{"ipm_id"}},
	}
	require.NoError(t, Export(fsys, "clean", second, []string{"Metadata"}))

	assert.Equal(t, []string{"Metadata.txt"}, fileNames(t, fsys, "clean"))
}

func TestExportMissingTableFails(t *testing.T) {
	err := Export(memfs.New(), "clean", models.Collection{}, []string{"Metadata"})
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestReadDirSortsByFileName(t *testing.T) {
	c := models.Collection{
		"StateVariables": {Name: "StateVariables", Columns: []string{"ipm_id"}},
		"Metadata":       {Name: "Metadata", Columns: []string{"ipm_id"}},
	}
	fsys := memfs.New()
	require.NoError(t, Export(fsys, "clean", c, []string{"StateVariables", "Metadata"}))

	tables, err := ReadDir(fsys, "clean")
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "Metadata", tables[0].Name)
	assert.Equal(t, "StateVariables", tables[1].Name)
}

func TestReadTableRejectsUnquotedFields(t *testing.T) {
	fsys := memfs.New()
	f, err := fsys.Create("bad.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("\"ipm_id\"\nnot-quoted\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = ReadTable(fsys, "bad.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
