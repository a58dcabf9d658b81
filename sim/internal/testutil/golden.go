// Package testutil provides shared test infrastructure for the circuit simulator.
// It wraps goldie so golden files for every package live under the repo-root
// testdata/golden directory.
package testutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenDir resolves testdata/golden relative to this source file:
// sim/internal/testutil/ → testdata/golden.
func GoldenDir(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden")
}

// AssertGolden compares got with testdata/golden/<name>.golden.
// Regenerate with `go test ./... -update`.
func AssertGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir(t)),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}
