// Package config loads the optional build manifest. The manifest is a small
// YAML file fixing the two workbook paths and the output directory; absent
// file or absent fields fall back to the repository-relative defaults the
// release process documents.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultManifestFile is the manifest path probed when no --config flag is
// given.
const DefaultManifestFile = "pdbuild.yaml"

// Manifest models the build manifest file.
type Manifest struct {
	// Primary is the path of the hand-curated workbook.
	Primary string `yaml:"primary"`
	// Secondary is the path of the supplementary workbook.
	Secondary string `yaml:"secondary"`
	// Out is the directory the flat files are written into.
	Out string `yaml:"out"`
}

// Default returns the repository-relative default paths.
func Default() Manifest {
	return Manifest{
		Primary:   "data/pdb_a.xlsx",
		Secondary: "data/pdb_b.xlsx",
		Out:       "padrino-database/clean",
	}
}

// Load reads the manifest at path. A missing file yields the defaults; a
// present file only overrides the fields it sets.
func Load(path string) (Manifest, error) {
	m := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, fmt.Errorf("read manifest %q: %w", path, err)
	}

	var file Manifest
	if err := yaml.Unmarshal(data, &file); err != nil {
		return m, fmt.Errorf("parse manifest %q: %w", path, err)
	}
	if file.Primary != "" {
		m.Primary = file.Primary
	}
	if file.Secondary != "" {
		m.Secondary = file.Secondary
	}
	if file.Out != "" {
		m.Out = file.Out
	}
	return m, nil
}
