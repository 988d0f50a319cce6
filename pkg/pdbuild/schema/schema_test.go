package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesAreUniqueAndStable(t *testing.T) {
	names := Names()
	assert.Len(t, names, 12)

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate registry name %q", n)
		seen[n] = true
	}

	// Callers must not be able to mutate the registry through the returned slice.
	names[0] = "Mutated"
	assert.Equal(t, MetadataTable, Names()[0])
}

func TestExportNameRename(t *testing.T) {
	assert.Equal(t, ParSetIndicesName, ExportName(HierarchTable))

	for _, n := range Names() {
		if n == HierarchTable {
			continue
		}
		assert.Equal(t, n, ExportName(n))
	}
}
