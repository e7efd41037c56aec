package checksum

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/testutil"
	"github.com/velar/brewbump/pkg/types"
)

const (
	emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
)

func TestChecksum(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{
		"dist/velar-darwin-arm64-v1.2.3.tar.gz":  "hello",
		"dist/velar-darwin-x86_64-v1.2.3.tar.gz": "",
	})

	result, err := Checksum(ChecksumOptions{
		Paths:      []string{"dist/velar-darwin-arm64-v1.2.3.tar.gz", "dist/velar-darwin-x86_64-v1.2.3.tar.gz"},
		FileSystem: fsys,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.ArtifactChecksum{
		{Path: "dist/velar-darwin-arm64-v1.2.3.tar.gz", SHA256: helloSHA256},
		{Path: "dist/velar-darwin-x86_64-v1.2.3.tar.gz", SHA256: emptySHA256},
	}, result.Artifacts)
}

func TestChecksum_OSFileSystem(t *testing.T) {
	path := testutil.CreateFile(t, t.TempDir(), "artifact.tar.gz", "hello")

	result, err := Checksum(ChecksumOptions{Paths: []string{path}})
	require.NoError(t, err)
	assert.Equal(t, helloSHA256, result.Artifacts[0].SHA256)
}

func TestChecksum_MissingArtifact(t *testing.T) {
	fsys := testutil.MemoryFS(t, map[string]string{"a.tar.gz": "hello"})

	result, err := Checksum(ChecksumOptions{Paths: []string{"a.tar.gz", "b.tar.gz"}, FileSystem: fsys})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "b.tar.gz", errors.GetErrorDetails(err)["path"])
}

func TestChecksum_NoPaths(t *testing.T) {
	_, err := Checksum(ChecksumOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
