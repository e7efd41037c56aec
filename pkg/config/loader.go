package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/logging"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "BREWBUMP_"

// SourceDefaults, SourceEnv and SourceFlags name the non-file configuration layers
const (
	SourceDefaults = "defaults"
	SourceEnv      = "env"
	SourceFlags    = "flags"
)

// ProjectFileNames are searched, in order, in the working directory
var ProjectFileNames = []string{".brewbump.toml", "brewbump.toml"}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit configuration file. It must exist when set.
	ConfigFile string
	// WorkDir is searched for ProjectFileNames when ConfigFile is empty.
	WorkDir string
	// Overrides are dotted keys (scan.lookahead) set from command line flags.
	// They take precedence over every other layer.
	Overrides map[string]interface{}
}

// Loaded is a validated configuration plus the layers it came from
type Loaded struct {
	Config  *Config
	Sources []string
}

// Load reads defaults, the project file, the environment and the overrides,
// in that order
func Load(opts LoadOptions) (*Loaded, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	sources := []string{SourceDefaults}

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the project file if there is one
	path, err := resolveProjectFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
		sources = append(sources, path)
	}

	// 3. Load env vars
	envK := koanf.New(".")
	if err := envK.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if len(envK.Keys()) > 0 {
		if err := k.Merge(envK); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge env vars")
		}
		logger.Debug().Strs("keys", envK.Keys()).Msg("Loaded env config")
		sources = append(sources, SourceEnv)
	}

	// 4. Apply command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
		sources = append(sources, SourceFlags)
	}

	// 5. Unmarshal
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Loaded{Config: cfg, Sources: sources}, nil
}

// Default returns the embedded default configuration
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func resolveProjectFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	for _, name := range ProjectFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// envKey maps BREWBUMP_SCAN__LOOKAHEAD to scan.lookahead
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
