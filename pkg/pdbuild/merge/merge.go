// Package merge combines the two source collections into one. Primary rows
// always precede secondary rows and no re-sorting is performed, so row
// provenance stays readable in the exported files.
package merge

import (
	"fmt"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild/errs"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/models"
)

// Merge concatenates primary and secondary tables name by name, driven by the
// registry order. Column order is taken from the primary table. A name absent
// from the secondary collection passes the primary table through unchanged.
// The two tables for a name must agree on column names and order; a mismatch
// aborts the merge rather than producing ragged output.
func Merge(primary, secondary models.Collection, names []string) (models.Collection, error) {
	merged := make(models.Collection, len(names))
	for _, name := range names {
		pt, ok := primary[name]
		if !ok {
			return nil, fmt.Errorf("%w: table %q missing from primary collection", errs.ErrSchemaMismatch, name)
		}
		st, ok := secondary[name]
		if !ok {
			merged[name] = pt.Clone()
			continue
		}
		if !pt.SameColumns(st) {
			return nil, fmt.Errorf("%w: table %q columns differ between sources: primary %v, secondary %v",
				errs.ErrSchemaMismatch, name, pt.Columns, st.Columns)
		}
		out := pt.Clone()
		for _, row := range st.Rows {
			out.Rows = append(out.Rows, append([]models.Value(nil), row...))
		}
		merged[name] = out
	}
	return merged, nil
}
