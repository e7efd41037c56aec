package genconfig

import (
	"path/filepath"

	"github.com/velar/brewbump/pkg/config"
	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/filesystem"
	"github.com/velar/brewbump/pkg/logging"
	"github.com/velar/brewbump/pkg/types"
)

// GenConfigOptions holds options for the config command
type GenConfigOptions struct {
	WorkDir    string
	ConfigFile string
	// Write saves the output as WorkDir/.brewbump.toml
	Write bool
	// Defaults selects the commented built-in defaults instead of the
	// effective configuration
	Defaults bool
	// FileSystem defaults to the OS filesystem
	FileSystem types.FS
}

// GenConfig renders the effective configuration and optionally writes it
// to the project file. An existing project file is never overwritten.
func GenConfig(opts GenConfigOptions) (*types.ConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result, err := render(opts)
	if err != nil {
		return nil, err
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	target := filepath.Join(dir, config.ProjectFileNames[0])

	if _, err := fsys.Stat(target); err == nil {
		return result, errors.Newf(errors.ErrFileWrite, "%s already exists", target).
			WithDetail("path", target)
	}

	if err := fsys.WriteFile(target, []byte(result.Content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", target).
			WithDetail("path", target)
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.Written = target
	return result, nil
}

func render(opts GenConfigOptions) (*types.ConfigResult, error) {
	if opts.Defaults {
		return &types.ConfigResult{
			Sources: []string{config.SourceDefaults},
			Content: config.GetDefaultsContent(),
		}, nil
	}

	loaded, err := config.Load(config.LoadOptions{ConfigFile: opts.ConfigFile, WorkDir: opts.WorkDir})
	if err != nil {
		return nil, err
	}

	content, err := config.Render(loaded.Config)
	if err != nil {
		return nil, err
	}

	return &types.ConfigResult{
		Sources: loaded.Sources,
		Content: content,
	}, nil
}
