// Package pdbuild builds the flat-file form of the database: it loads the
// two workbook sources, merges them table by table, normalizes placeholder
// values, and exports one delimited text file per table.
package pdbuild

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild/schema"
)

// Options configures one build run.
type Options struct {
	// PrimaryPath is the hand-curated workbook.
	PrimaryPath string
	// SecondaryPath is the supplementary workbook.
	SecondaryPath string
	// OutDir is the directory the table files are written into. Its prior
	// contents are removed.
	OutDir string
	// FS is the filesystem the output is written through. If nil, the OS
	// filesystem rooted at the working directory is used.
	FS billy.Filesystem
	// Logger receives stage and table progress. If nil, slog.Default() is
	// used.
	Logger *slog.Logger
	// Tables overrides the table registry. If nil, schema.Names() is used.
	Tables []string
}

func (o Options) tables() []string {
	if o.Tables != nil {
		return o.Tables
	}
	return schema.Names()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
