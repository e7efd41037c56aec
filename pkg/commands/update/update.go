package update

import (
	"path/filepath"
	"time"

	"github.com/velar/brewbump/pkg/config"
	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/filesystem"
	"github.com/velar/brewbump/pkg/formula"
	"github.com/velar/brewbump/pkg/logging"
	"github.com/velar/brewbump/pkg/types"
)

// UpdateOptions holds options for the update command
type UpdateOptions struct {
	// WorkDir resolves relative formula paths and the project config file
	WorkDir    string
	ConfigFile string

	Release formula.Release

	// Formulas replaces the configured formula list when not empty
	Formulas []string
	// Lookahead overrides scan.lookahead when positive
	Lookahead int

	DryRun          bool
	StrictChecksums bool

	// FileSystem defaults to the OS filesystem
	FileSystem types.FS
}

// Update rewrites every formula for the release. On failure the result holds
// the formulas completed before the failing one.
func Update(opts UpdateOptions) (*types.UpdateResult, error) {
	logger := logging.GetLogger("commands.update")

	loaded, err := config.Load(config.LoadOptions{
		ConfigFile: opts.ConfigFile,
		WorkDir:    opts.WorkDir,
		Overrides:  overrides(opts),
	})
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("sources", loaded.Sources).Msg("Configuration loaded")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	paths := resolvePaths(opts.WorkDir, loaded.Config.Formulas)
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no formula files configured")
	}

	updater := formula.NewUpdater(fsys, formula.LayoutFromConfig(loaded.Config), formula.Options{
		DryRun:          opts.DryRun,
		StrictChecksums: opts.StrictChecksums,
	})

	logger.Info().
		Str("version", opts.Release.Version).
		Strs("formulas", paths).
		Bool("dryRun", opts.DryRun).
		Msg("Updating formulas")

	formulas, err := updater.UpdateAll(paths, opts.Release)
	result := &types.UpdateResult{
		Version:   opts.Release.BareVersion(),
		Tag:       opts.Release.Tag(),
		DryRun:    opts.DryRun,
		Formulas:  formulas,
		Timestamp: time.Now(),
	}
	if err != nil {
		return result, err
	}

	return result, nil
}

// overrides maps command line values onto configuration keys
func overrides(opts UpdateOptions) map[string]interface{} {
	o := make(map[string]interface{})
	if len(opts.Formulas) > 0 {
		o["formulas"] = opts.Formulas
	}
	if opts.Lookahead > 0 {
		o["scan.lookahead"] = opts.Lookahead
	}
	return o
}

func resolvePaths(workDir string, formulas []string) []string {
	paths := make([]string, 0, len(formulas))
	for _, f := range formulas {
		if f == "" {
			continue
		}
		if workDir != "" && !filepath.IsAbs(f) {
			f = filepath.Join(workDir, f)
		}
		paths = append(paths, f)
	}
	return paths
}
