package formula

import (
	"github.com/rs/zerolog"
	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/hashutil"
	"github.com/velar/brewbump/pkg/logging"
	"github.com/velar/brewbump/pkg/types"
)

// Options controls how an Updater treats its input and output
type Options struct {
	// DryRun computes changes without writing any file
	DryRun bool
	// StrictChecksums rejects checksums that are not hex SHA256 digests
	StrictChecksums bool
}

// Updater applies a Release to formula files on a filesystem
type Updater struct {
	fs     types.FS
	layout Layout
	opts   Options
	logger zerolog.Logger
}

// NewUpdater creates an Updater writing through fsys
func NewUpdater(fsys types.FS, layout Layout, opts Options) *Updater {
	return &Updater{
		fs:     fsys,
		layout: layout,
		opts:   opts,
		logger: logging.GetLogger("formula"),
	}
}

// Update rewrites the formula at path for rel. The file is overwritten only
// after both checksum fields have been replaced in memory.
func (u *Updater) Update(path string, rel Release) (*types.FormulaResult, error) {
	logger := u.logger.With().Str("path", path).Logger()
	done := logging.LogOperationStart(logger, "update-formula")
	defer done()

	if err := u.validate(rel); err != nil {
		return nil, err
	}

	info, err := u.fs.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrFileRead, "%s is a directory", path).
			WithDetail("path", path)
	}

	data, err := u.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
			WithDetail("path", path)
	}

	updated, changes, err := Apply(string(data), rel, u.layout)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrFormatMismatch) {
			return nil, errors.Wrapf(err, errors.ErrFormatMismatch, "failed to update %s in %s", u.layout.ChecksumKeyword, path).
				WithDetail("path", path).
				WithDetail("missing", errors.GetErrorDetails(err)["missing"])
		}
		return nil, err
	}

	result := &types.FormulaResult{Path: path, Changes: changes}
	logger.Debug().Int("changes", len(changes)).Msg("Formula updated in memory")

	if u.opts.DryRun {
		logger.Info().Int("changes", len(changes)).Msg("Dry run, not writing formula")
		return result, nil
	}

	if err := u.fs.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	result.Written = true

	logger.Info().Int("changes", len(changes)).Msg("Formula written")
	return result, nil
}

// UpdateAll updates paths in order and stops at the first failure. The
// results of the files completed before the failure are returned with it.
func (u *Updater) UpdateAll(paths []string, rel Release) ([]*types.FormulaResult, error) {
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no formula files to update")
	}
	if err := rel.Validate(u.opts.StrictChecksums); err != nil {
		return nil, err
	}

	results := make([]*types.FormulaResult, 0, len(paths))
	for _, path := range paths {
		result, err := u.Update(path, rel)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (u *Updater) validate(rel Release) error {
	if err := rel.Validate(u.opts.StrictChecksums); err != nil {
		return err
	}

	if !u.opts.StrictChecksums {
		for _, arch := range []Arch{ArchArm64, ArchX8664} {
			if !hashutil.IsSHA256(rel.Checksum(arch)) {
				u.logger.Warn().Str("arch", string(arch)).Str("sha256", rel.Checksum(arch)).
					Msg("Checksum does not look like a SHA256 hex digest")
			}
		}
	}
	return nil
}
