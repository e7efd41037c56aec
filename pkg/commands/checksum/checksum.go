package checksum

import (
	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/filesystem"
	"github.com/velar/brewbump/pkg/hashutil"
	"github.com/velar/brewbump/pkg/logging"
	"github.com/velar/brewbump/pkg/types"
)

// ChecksumOptions holds options for the checksum command
type ChecksumOptions struct {
	Paths []string
	// FileSystem defaults to the OS filesystem
	FileSystem types.FS
}

// Checksum computes the SHA256 digest of each artifact, in order
func Checksum(opts ChecksumOptions) (*types.ChecksumResult, error) {
	logger := logging.GetLogger("commands.checksum")

	if len(opts.Paths) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no artifacts given")
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	result := &types.ChecksumResult{Artifacts: make([]types.ArtifactChecksum, 0, len(opts.Paths))}
	for _, path := range opts.Paths {
		sum, err := hashutil.FileSHA256(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to hash %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Str("sha256", sum).Msg("Artifact hashed")
		result.Artifacts = append(result.Artifacts, types.ArtifactChecksum{Path: path, SHA256: sum})
	}

	return result, nil
}
