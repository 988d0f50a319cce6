// Package loader reads one workbook source into an in-memory collection.
// Each registry table is one sheet: a header row of column names followed by
// data rows. Loading is read-only and fails fast; the pipeline cannot proceed
// without both sources complete.
package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild/errs"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/models"
)

// Load reads the workbook at path and returns one table per registry name,
// in cell values classified into tagged form. A missing sheet or a sheet
// without a header row is a schema mismatch; an unreadable file is a source
// failure.
func Load(path string, names []string) (models.Collection, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", errs.ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	collection := make(models.Collection, len(names))
	for _, name := range names {
		t, err := loadSheet(f, name)
		if err != nil {
			return nil, err
		}
		collection[name] = t
	}
	return collection, nil
}

func loadSheet(f *excelize.File, name string) (models.Table, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return models.Table{}, fmt.Errorf("%w: sheet %q not found", errs.ErrSchemaMismatch, name)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: read sheet %q: %v", errs.ErrSourceUnavailable, name, err)
	}
	if len(rows) == 0 {
		return models.Table{}, fmt.Errorf("%w: sheet %q has no header row", errs.ErrSchemaMismatch, name)
	}

	header := append([]string(nil), rows[0]...)
	t := models.Table{
		Name:    name,
		Columns: header,
		Rows:    make([][]models.Value, 0, len(rows)-1),
	}
	for _, raw := range rows[1:] {
		// excelize truncates trailing empty cells; pad to the header width.
		vals := make([]models.Value, len(header))
		for j := range vals {
			if j < len(raw) {
				vals[j] = models.Classify(raw[j])
			} else {
				vals[j] = models.Missing()
			}
		}
		t.Rows = append(t.Rows, vals)
	}
	return t, nil
}

// Augment returns a copy of t with one column appended and every row filled
// with the given value. The input table is left untouched, so the loader's
// output stays immutable and the augmentation is testable on its own.
func Augment(t models.Table, column string, v models.Value) models.Table {
	out := t.Clone()
	out.Columns = append(out.Columns, column)
	for i := range out.Rows {
		out.Rows[i] = append(out.Rows[i], v)
	}
	return out
}
