// Package sampledata bundles solver output documents for tests and demos.
package sampledata

import (
	_ "embed"
	"os"
	"path/filepath"
)

//go:embed output_small_test_input.json
var sampleResponse []byte

//go:embed output_legacy_test_input.json
var legacyResponse []byte

// Raw returns the bundled 4-vehicle sample in the current schema (with an
// objectiveValue).
func Raw() []byte { return sampleResponse }

// RawLegacy returns the bundled sample in the legacy schema (vehicle ids, no
// objectiveValue).
func RawLegacy() []byte { return legacyResponse }

// Write copies the bundled sample into dir and returns its path, so callers
// that need a real file (the importer, CLI tests) can locate one.
func Write(dir string) (string, error) {
	return write(dir, "output_small_test_input.json", sampleResponse)
}

// WriteLegacy copies the legacy-schema sample into dir and returns its path.
func WriteLegacy(dir string) (string, error) {
	return write(dir, "output_legacy_test_input.json", legacyResponse)
}

func write(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
