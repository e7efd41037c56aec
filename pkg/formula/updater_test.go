package formula_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velar/brewbump/pkg/config"
	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/filesystem"
	"github.com/velar/brewbump/pkg/formula"
	"github.com/velar/brewbump/pkg/testutil"
)

const brokenFormula = `class Velar < Formula
  version "0.0.0"
  url "https://example.com/velar.tar.gz"
  sha256 "` + testutil.PlaceholderSHA256 + `"
end
`

func TestUpdate_WritesFormula(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{
		"homebrew-velar/Formula/velar.rb": testutil.VelarFormula,
	})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	result, err := u.Update("homebrew-velar/Formula/velar.rb", v123)
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.True(t, result.Changed())
	assert.Len(t, result.Changes, 5)
	assert.Equal(t, testutil.VelarFormulaV123, testutil.ReadFS(t, fsys, "homebrew-velar/Formula/velar.rb"))
}

func TestUpdate_DryRunLeavesFileUntouched(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"Formula/velar.rb": testutil.VelarFormula})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{DryRun: true})

	result, err := u.Update("Formula/velar.rb", v123)
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.Len(t, result.Changes, 5)
	assert.Equal(t, testutil.VelarFormula, testutil.ReadFS(t, fsys, "Formula/velar.rb"))
}

func TestUpdate_FormatMismatchLeavesFileUntouched(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"Formula/velar.rb": brokenFormula})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	result, err := u.Update("Formula/velar.rb", v123)
	require.Error(t, err)
	assert.Nil(t, result)

	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatMismatch))
	assert.Contains(t, err.Error(), "failed to update sha256 in Formula/velar.rb")
	assert.Equal(t, "Formula/velar.rb", errors.GetErrorDetails(err)["path"])
	assert.Equal(t, brokenFormula, testutil.ReadFS(t, fsys, "Formula/velar.rb"))
}

func TestUpdate_MissingFile(t *testing.T) {
	u := formula.NewUpdater(filesystem.NewMemory(), formula.DefaultLayout(), formula.Options{})

	_, err := u.Update("Formula/velar.rb", v123)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestUpdate_Directory(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"Formula/velar.rb": testutil.VelarFormula})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	_, err := u.Update("Formula", v123)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestUpdate_InvalidRelease(t *testing.T) {
	tests := []struct {
		name   string
		rel    formula.Release
		strict bool
	}{
		{"empty_version", formula.Release{SHA256Arm64: "a", SHA256X8664: "b"}, false},
		{"only_prefix", formula.Release{Version: "v", SHA256Arm64: "a", SHA256X8664: "b"}, false},
		{"empty_arm64", formula.Release{Version: "v1.0.0", SHA256X8664: "b"}, false},
		{"blank_x86_64", formula.Release{Version: "v1.0.0", SHA256Arm64: "a", SHA256X8664: "  "}, false},
		{"strict_not_hex", formula.Release{Version: "v1.0.0", SHA256Arm64: testutil.Arm64SHA256, SHA256X8664: "deadbeef"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.MemoryFS(t, map[string]string{"Formula/velar.rb": testutil.VelarFormula})
			u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{StrictChecksums: tt.strict})

			_, err := u.Update("Formula/velar.rb", tt.rel)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
			assert.Equal(t, testutil.VelarFormula, testutil.ReadFS(t, fsys, "Formula/velar.rb"))
		})
	}
}

func TestUpdate_NonHexChecksumAcceptedWhenNotStrict(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"Formula/velar.rb": testutil.VelarFormula})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	rel := formula.Release{Version: "v1.2.3", SHA256Arm64: "abc", SHA256X8664: "def"}
	_, err := u.Update("Formula/velar.rb", rel)
	require.NoError(t, err)

	content := testutil.ReadFS(t, fsys, "Formula/velar.rb")
	assert.Contains(t, content, `      sha256 "abc"`)
	assert.Contains(t, content, `      sha256 "def"`)
}

func TestUpdate_PreservesPermissions(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "Formula/velar.rb", testutil.VelarFormula)
	require.NoError(t, os.Chmod(path, 0600))

	u := formula.NewUpdater(filesystem.NewOS(), formula.DefaultLayout(), formula.Options{})
	_, err := u.Update(path, v123)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.Equal(t, testutil.VelarFormulaV123, testutil.ReadFile(t, path))
}

func TestUpdateAll_UpdatesEveryFormula(t *testing.T) {
	paths := []string{"homebrew-velar/Formula/velar.rb", "Formula/velar.rb"}
	fsys := testutil.MemoryFS(t, map[string]string{
		paths[0]: testutil.VelarFormula,
		paths[1]: testutil.VelarFormula,
	})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	results, err := u.UpdateAll(paths, v123)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for i, path := range paths {
		assert.Equal(t, path, results[i].Path)
		assert.True(t, results[i].Written)
		assert.Equal(t, testutil.VelarFormulaV123, testutil.ReadFS(t, fsys, path))
	}
}

func TestUpdateAll_StopsAtFirstFailure(t *testing.T) {
	paths := []string{"a/velar.rb", "b/velar.rb", "c/velar.rb"}
	fsys := testutil.MemoryFS(t, map[string]string{
		paths[0]: testutil.VelarFormula,
		paths[1]: brokenFormula,
		paths[2]: testutil.VelarFormula,
	})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	results, err := u.UpdateAll(paths, v123)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatMismatch))
	assert.Contains(t, err.Error(), "b/velar.rb")

	require.Len(t, results, 1)
	assert.Equal(t, "a/velar.rb", results[0].Path)

	assert.Equal(t, testutil.VelarFormulaV123, testutil.ReadFS(t, fsys, paths[0]))
	assert.Equal(t, brokenFormula, testutil.ReadFS(t, fsys, paths[1]))
	assert.Equal(t, testutil.VelarFormula, testutil.ReadFS(t, fsys, paths[2]))
}

func TestUpdateAll_MissingSecondFile(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"homebrew-velar/Formula/velar.rb": testutil.VelarFormula})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	results, err := u.UpdateAll([]string{"homebrew-velar/Formula/velar.rb", "Formula/velar.rb"}, v123)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	assert.Len(t, results, 1)
}

func TestUpdateAll_NoPaths(t *testing.T) {
	u := formula.NewUpdater(filesystem.NewMemory(), formula.DefaultLayout(), formula.Options{})

	_, err := u.UpdateAll(nil, v123)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestUpdateAll_InvalidReleaseTouchesNothing(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"Formula/velar.rb": testutil.VelarFormula})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	results, err := u.UpdateAll([]string{"Formula/velar.rb"}, formula.Release{Version: "v1.2.3"})
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Equal(t, testutil.VelarFormula, testutil.ReadFS(t, fsys, "Formula/velar.rb"))
}

func TestLayoutFromConfig_Defaults(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, formula.DefaultLayout(), formula.LayoutFromConfig(cfg))
}

func TestLayoutFromConfig_CustomFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "brewbump.toml", `
[project]
name = "velard"

[anchors]
arm64 = "  if Hardware::CPU.arm?  "
x86_64 = "else"

[scan]
lookahead = 3
stop_at_block_end = false
`)
	loaded, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	layout := formula.LayoutFromConfig(loaded.Config)
	assert.Equal(t, "velard", layout.Project)
	assert.Equal(t, 3, layout.Lookahead)
	assert.False(t, layout.StopAtBlockEnd)
	assert.Equal(t, "if Hardware::CPU.arm?", layout.Anchors[0].Marker)
	assert.Equal(t, "else", layout.Anchors[1].Marker)

	content := `class Velard < Formula
  version "0.0.0"
  if Hardware::CPU.arm?
    url "https://example.com/releases/download/v0.0.0/velard-darwin-arm64-v0.0.0.tar.gz"
    sha256 "x"
  else
    url "https://example.com/releases/download/v0.0.0/velard-darwin-x86_64-v0.0.0.tar.gz"
    sha256 "y"
  end
end
`
	file := filepath.Join(dir, "velard.rb")
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	_, err = formula.NewUpdater(filesystem.NewOS(), layout, formula.Options{}).Update(file, v123)
	require.NoError(t, err)

	got := testutil.ReadFile(t, file)
	assert.Contains(t, got, "download/v1.2.3/velard-darwin-arm64-v1.2.3.tar.gz")
	assert.Contains(t, got, `      sha256 "`+testutil.Arm64SHA256+`"`)
	assert.Contains(t, got, `      sha256 "`+testutil.X8664SHA256+`"`)
}

func TestUpdate_AdjacentAnchorsLeaveFileUntouched(t *testing.T) {
	content := "  on_macos do\n    on_arm do\n    on_intel do\n      url \"x\"\n      sha256 \"old\"\n    end\n  end\n"
	fsys := testutil.MemoryFS(t, map[string]string{"Formula/velar.rb": content})
	u := formula.NewUpdater(fsys, formula.DefaultLayout(), formula.Options{})

	_, err := u.Update("Formula/velar.rb", v123)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatMismatch))
	assert.Equal(t, content, testutil.ReadFS(t, fsys, "Formula/velar.rb"))
}
