// Package manifest models the drn.json package manifest.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FileName is the manifest file name in the package root.
const FileName = "drn.json"

// Manifest describes the package being published. Field order matters: the
// file is written with fields in declaration order.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Main        string `json:"main"`
}

// Default returns a manifest prefilled with the init defaults for dir.
func Default(dir string) *Manifest {
	return &Manifest{
		Name:        filepath.Base(dir),
		Version:     "1.0.0",
		Description: "",
		Main:        "index.js",
	}
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return &m, nil
}

// Save writes the manifest as indented JSON, overwriting path in full.
func (m *Manifest) Save(path string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", FileName, err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	return nil
}

const schemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name", "version", "main"],
	"properties": {
		"name":        {"type": "string", "minLength": 1, "pattern": "^[a-z0-9][a-z0-9._-]*$"},
		"version":     {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"main":        {"type": "string", "minLength": 1}
	}
}`

var schema = jsonschema.MustCompileString("drn.json", schemaJSON)

// Validate checks the manifest against the registry schema and requires a
// strict semver version.
func (m *Manifest) Validate() error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", FileName, err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid %s: %w", FileName, err)
	}
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		return fmt.Errorf("invalid %s: version %q is not semver: %w", FileName, m.Version, err)
	}
	return nil
}

// ArchiveName returns the upload file name for the package archive. Names
// that pass Validate never contain path separators, so the result is a plain
// file name.
func (m *Manifest) ArchiveName() string {
	return fmt.Sprintf("%s-%s.zip", m.Name, m.Version)
}
