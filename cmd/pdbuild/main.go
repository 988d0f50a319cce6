// Package main provides the CLI entry point for pdbuild.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/config"
	"github.com/padrinoDB/pdbuild/pkg/pdbuild/output"
)

var (
	configPath    string
	primaryPath   string
	secondaryPath string
	outDir        string
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pdbuild",
		Short: "Build the flat-file database from the two workbook sources",
		Long: `pdbuild merges the hand-curated and supplementary database workbooks
into one set of tab-delimited text tables, replacing the previous output
directory. It is run manually by a curator as part of the release process.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultManifestFile, "Build manifest path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable per-table debug logging")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Merge both sources and export the table files",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&primaryPath, "primary", "a", "", "Primary (hand-curated) workbook path")
	buildCmd.Flags().StringVarP(&secondaryPath, "secondary", "b", "", "Secondary workbook path")
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (cleared before writing)")

	verifyCmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Read an exported directory back and report table shapes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runVerify,
	}

	rootCmd.AddCommand(buildCmd, verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runBuild(cmd *cobra.Command, args []string) error {
	manifest, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if primaryPath != "" {
		manifest.Primary = primaryPath
	}
	if secondaryPath != "" {
		manifest.Secondary = secondaryPath
	}
	if outDir != "" {
		manifest.Out = outDir
	}

	if _, err := os.Stat(manifest.Primary); os.IsNotExist(err) {
		return fmt.Errorf("primary workbook not found: %s", manifest.Primary)
	}
	if _, err := os.Stat(manifest.Secondary); os.IsNotExist(err) {
		return fmt.Errorf("secondary workbook not found: %s", manifest.Secondary)
	}

	return pdbuild.Build(pdbuild.Options{
		PrimaryPath:   manifest.Primary,
		SecondaryPath: manifest.Secondary,
		OutDir:        manifest.Out,
		Logger:        newLogger(),
	})
}

func runVerify(cmd *cobra.Command, args []string) error {
	dir := ""
	if len(args) == 1 {
		dir = args[0]
	} else {
		manifest, err := config.Load(configPath)
		if err != nil {
			return err
		}
		dir = manifest.Out
	}

	tables, err := output.ReadDir(osfs.New("."), dir)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	if len(tables) == 0 {
		return fmt.Errorf("no table files found in %s", dir)
	}

	for _, t := range tables {
		fmt.Printf("%-24s %5d rows  %3d columns\n", t.Name, t.NumRows(), t.NumCols())
	}
	return nil
}
