// Package normalize folds the literal placeholder spelling of "no data" into
// the tagged missing value. The two workbook sources disagree here: one
// leaves absent cells truly empty (the loader already tags those), the other
// types the token in as text.
package normalize

import "github.com/padrinoDB/pdbuild/pkg/pdbuild/models"

// Table returns a copy of t where every text cell exactly equal to the
// missing token is replaced with the missing value. The match is a full-cell
// equality check; the token appearing inside longer text is left alone.
// Applying Table to an already-normalized table is a no-op.
func Table(t models.Table) models.Table {
	out := t.Clone()
	for i, row := range out.Rows {
		for j, v := range row {
			if v.Kind == models.KindText && v.Text == models.MissingToken {
				out.Rows[i][j] = models.Missing()
			}
		}
	}
	return out
}
