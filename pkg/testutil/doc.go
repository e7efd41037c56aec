// Package testutil provides fixtures and helpers for testing brewbump components.
//
// Key components:
//   - VelarFormula: a formula file carrying every placeholder token
//   - CreateFile / ReadFile: real-filesystem helpers rooted in t.TempDir()
//   - MemoryFS: an afero-backed types.FS seeded with files
//
// All test data is defined inline, not in external files.
package testutil
