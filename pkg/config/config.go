package config

import (
	"strings"
	"text/template"

	"github.com/velar/brewbump/pkg/errors"
)

// Config is the effective brewbump configuration
type Config struct {
	Formulas  []string  `koanf:"formulas" toml:"formulas"`
	Project   Project   `koanf:"project" toml:"project"`
	Templates Templates `koanf:"templates" toml:"templates"`
	Anchors   Anchors   `koanf:"anchors" toml:"anchors"`
	Scan      Scan      `koanf:"scan" toml:"scan"`
}

// Project identifies the released project and its placeholder version
type Project struct {
	Name               string `koanf:"name" toml:"name"`
	PlaceholderVersion string `koanf:"placeholder_version" toml:"placeholder_version"`
}

// Templates are text/template strings for the substituted tokens
type Templates struct {
	VersionField string `koanf:"version_field" toml:"version_field"`
	DownloadURL  string `koanf:"download_url" toml:"download_url"`
}

// Anchors are the block markers preceding each architecture's checksum
type Anchors struct {
	Arm64 string `koanf:"arm64" toml:"arm64"`
	X8664 string `koanf:"x86_64" toml:"x86_64"`
}

// Scan controls the checksum search below each anchor
type Scan struct {
	Lookahead       int    `koanf:"lookahead" toml:"lookahead"`
	ChecksumKeyword string `koanf:"checksum_keyword" toml:"checksum_keyword"`
	ChecksumIndent  int    `koanf:"checksum_indent" toml:"checksum_indent"`
	StopAtBlockEnd  bool   `koanf:"stop_at_block_end" toml:"stop_at_block_end"`
}

// Validate checks that the configuration can describe a formula layout
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Project.Name) == "" {
		return errors.New(errors.ErrConfigValid, "project.name must not be empty")
	}
	if strings.TrimSpace(c.Project.PlaceholderVersion) == "" {
		return errors.New(errors.ErrConfigValid, "project.placeholder_version must not be empty")
	}

	for key, text := range map[string]string{
		"templates.version_field": c.Templates.VersionField,
		"templates.download_url":  c.Templates.DownloadURL,
	} {
		if strings.TrimSpace(text) == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key)
		}
		if _, err := template.New(key).Option("missingkey=error").Parse(text); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "%s is not a valid template", key)
		}
	}

	arm := strings.TrimSpace(c.Anchors.Arm64)
	intel := strings.TrimSpace(c.Anchors.X8664)
	if arm == "" || intel == "" {
		return errors.New(errors.ErrConfigValid, "anchors.arm64 and anchors.x86_64 must not be empty")
	}
	if arm == intel {
		return errors.Newf(errors.ErrConfigValid, "anchors must differ, both are %q", arm)
	}

	if c.Scan.Lookahead < 1 {
		return errors.Newf(errors.ErrConfigValid, "scan.lookahead must be at least 1, got %d", c.Scan.Lookahead)
	}
	if strings.TrimSpace(c.Scan.ChecksumKeyword) == "" {
		return errors.New(errors.ErrConfigValid, "scan.checksum_keyword must not be empty")
	}
	if c.Scan.ChecksumIndent < 0 {
		return errors.Newf(errors.ErrConfigValid, "scan.checksum_indent must not be negative, got %d", c.Scan.ChecksumIndent)
	}

	return nil
}
