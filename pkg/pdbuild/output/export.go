// Package output serializes the merged collection to the flat-file layout
// the downstream interface library reads: one tab-delimited UTF-8 text file
// per table, every field quoted, missing cells written as the literal token.
// It also reads that layout back, for verification and round-trip tests.
package output

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild/errs"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/models"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/schema"
)

// Export writes one file per registry table into dir, clearing dir first so
// no file from a previous run survives. The clear-then-write sequence is not
// atomic: a write failure leaves dir partially written, and the fix is to
// re-run after correcting the cause. Same inputs produce byte-identical
// output files.
func Export(fsys billy.Filesystem, dir string, c models.Collection, names []string) error {
	if err := util.RemoveAll(fsys, dir); err != nil {
		return fmt.Errorf("%w: clear %q: %v", errs.ErrWriteFailure, dir, err)
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %q: %v", errs.ErrWriteFailure, dir, err)
	}

	for _, name := range names {
		t, ok := c[name]
		if !ok {
			return fmt.Errorf("%w: table %q missing from merged collection", errs.ErrSchemaMismatch, name)
		}
		path := fsys.Join(dir, schema.ExportName(name)+".txt")
		if err := writeTable(fsys, path, t); err != nil {
			return fmt.Errorf("%w: table %q: %v", errs.ErrWriteFailure, name, err)
		}
	}
	return nil
}

func writeTable(fsys billy.Filesystem, path string, t models.Table) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)

	fields := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		fields = append(fields, quote(col))
	}
	if _, err := w.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
		f.Close()
		return err
	}

	for _, row := range t.Rows {
		fields = fields[:0]
		for _, v := range row {
			fields = append(fields, quote(v.String()))
		}
		if _, err := w.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// quote wraps a field in double quotes, doubling any embedded quote. Every
// field is quoted, including the missing token and numeric values, so the
// file format stays uniform column to column.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
