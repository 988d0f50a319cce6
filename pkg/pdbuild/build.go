package pdbuild

import (
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild/errs"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/loader"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/merge"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/models"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/normalize"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/output"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/schema"
)

// Build runs the whole pipeline once: load both sources, augment the
// secondary metadata with the validation-status column, merge primary above
// secondary, normalize placeholder cells, and export the collection. Any
// failure aborts the run; there is no retry or rollback, and re-running
// with the same inputs reproduces the same output files.
func Build(opts Options) error {
	log := opts.logger()
	names := opts.tables()

	log.Info("loading primary source", "path", opts.PrimaryPath, "tables", len(names))
	primary, err := loader.Load(opts.PrimaryPath, names)
	if err != nil {
		return errs.NewStageError("load-primary", "", err)
	}

	log.Info("loading secondary source", "path", opts.SecondaryPath)
	secondary, err := loader.Load(opts.SecondaryPath, names)
	if err != nil {
		return errs.NewStageError("load-secondary", "", err)
	}

	// Only the primary source tracks the validation flag natively.
	if t, ok := secondary[schema.MetadataTable]; ok {
		secondary[schema.MetadataTable] = loader.Augment(t, schema.CheckedColumn, models.Missing())
	}

	merged, err := merge.Merge(primary, secondary, names)
	if err != nil {
		return errs.NewStageError("merge", "", err)
	}
	for _, name := range names {
		t := normalize.Table(merged[name])
		merged[name] = t
		log.Debug("merged table", "table", name, "rows", t.NumRows(), "columns", t.NumCols())
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = osfs.New(".")
	}
	log.Info("exporting", "dir", opts.OutDir)
	if err := output.Export(fsys, opts.OutDir, merged, names); err != nil {
		return errs.NewStageError("export", "", err)
	}

	log.Info("build complete", "tables", len(names), "dir", opts.OutDir)
	return nil
}
