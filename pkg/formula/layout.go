package formula

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/velar/brewbump/pkg/config"
	"github.com/velar/brewbump/pkg/errors"
)

// Anchor binds a block marker line to the architecture whose checksum follows it
type Anchor struct {
	Arch   Arch
	Marker string
}

// Layout describes the recognisable tokens of a formula file
type Layout struct {
	Project            string
	PlaceholderVersion string

	// text/template strings, see TemplateFields
	VersionField string
	DownloadURL  string

	Anchors         []Anchor
	Lookahead       int
	ChecksumKeyword string
	ChecksumIndent  int
	StopAtBlockEnd  bool
}

// TemplateFields are available to the VersionField and DownloadURL templates
type TemplateFields struct {
	Version string
	Tag     string
	Project string
	Arch    Arch
}

// DefaultLayout is the layout of the velar formula
func DefaultLayout() Layout {
	return Layout{
		Project:            "velar",
		PlaceholderVersion: "0.0.0",
		VersionField:       `version "{{.Version}}"`,
		DownloadURL:        "releases/download/{{.Tag}}/{{.Project}}-darwin-{{.Arch}}-{{.Tag}}.tar.gz",
		Anchors: []Anchor{
			{Arch: ArchArm64, Marker: "on_arm do"},
			{Arch: ArchX8664, Marker: "on_intel do"},
		},
		Lookahead:       7,
		ChecksumKeyword: "sha256",
		ChecksumIndent:  6,
		StopAtBlockEnd:  true,
	}
}

// LayoutFromConfig builds a layout from validated configuration
func LayoutFromConfig(cfg *config.Config) Layout {
	return Layout{
		Project:            cfg.Project.Name,
		PlaceholderVersion: cfg.Project.PlaceholderVersion,
		VersionField:       cfg.Templates.VersionField,
		DownloadURL:        cfg.Templates.DownloadURL,
		Anchors: []Anchor{
			{Arch: ArchArm64, Marker: strings.TrimSpace(cfg.Anchors.Arm64)},
			{Arch: ArchX8664, Marker: strings.TrimSpace(cfg.Anchors.X8664)},
		},
		Lookahead:       cfg.Scan.Lookahead,
		ChecksumKeyword: cfg.Scan.ChecksumKeyword,
		ChecksumIndent:  cfg.Scan.ChecksumIndent,
		StopAtBlockEnd:  cfg.Scan.StopAtBlockEnd,
	}
}

// Validate reports layouts that cannot locate both checksums
func (l Layout) Validate() error {
	if l.Lookahead < 1 {
		return errors.Newf(errors.ErrInvalidInput, "lookahead must be at least 1, got %d", l.Lookahead)
	}
	if l.ChecksumKeyword == "" {
		return errors.New(errors.ErrInvalidInput, "checksum keyword must not be empty")
	}
	if l.ChecksumIndent < 0 {
		return errors.Newf(errors.ErrInvalidInput, "checksum indent must not be negative, got %d", l.ChecksumIndent)
	}

	seen := make(map[Arch]bool)
	for _, a := range l.Anchors {
		if a.Marker == "" {
			return errors.Newf(errors.ErrInvalidInput, "anchor for %s must not be empty", a.Arch)
		}
		seen[a.Arch] = true
	}
	if !seen[ArchArm64] || !seen[ArchX8664] {
		return errors.New(errors.ErrInvalidInput, "layout needs an anchor for both arm64 and x86_64")
	}
	return nil
}

// checksumLine is the replacement for a located checksum field
func (l Layout) checksumLine(sum string) string {
	return strings.Repeat(" ", l.ChecksumIndent) + l.ChecksumKeyword + ` "` + sum + `"`
}

type substitution struct {
	old string
	new string
}

// placeholderRelease is the release the committed formula is written for
func (l Layout) placeholderRelease() Release {
	return Release{Version: "v" + l.PlaceholderVersion}
}

func (l Layout) templateFields(rel Release) TemplateFields {
	return TemplateFields{
		Version: rel.BareVersion(),
		Tag:     rel.Tag(),
		Project: l.Project,
	}
}

// isMarker reports whether a trimmed line opens any anchor block
func (l Layout) isMarker(trimmed string) bool {
	for _, a := range l.Anchors {
		if trimmed == a.Marker {
			return true
		}
	}
	return false
}

// substitutions returns the literal replacements for version and URLs:
// the version field first, then one download URL per anchor.
func (l Layout) substitutions(rel Release) ([]substitution, error) {
	placeholder := l.templateFields(l.placeholderRelease())
	actual := l.templateFields(rel)

	var subs []substitution

	sub, err := renderPair("version_field", l.VersionField, placeholder, actual)
	if err != nil {
		return nil, err
	}
	subs = append(subs, sub)

	for _, a := range l.Anchors {
		placeholder.Arch = a.Arch
		actual.Arch = a.Arch
		sub, err := renderPair("download_url", l.DownloadURL, placeholder, actual)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

func renderPair(name, text string, placeholder, actual TemplateFields) (substitution, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return substitution{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid %s template", name)
	}

	var oldBuf, newBuf bytes.Buffer
	if err := tmpl.Execute(&oldBuf, placeholder); err != nil {
		return substitution{}, errors.Wrapf(err, errors.ErrInvalidInput, "failed to render %s", name)
	}
	if err := tmpl.Execute(&newBuf, actual); err != nil {
		return substitution{}, errors.Wrapf(err, errors.ErrInvalidInput, "failed to render %s", name)
	}

	return substitution{old: oldBuf.String(), new: newBuf.String()}, nil
}
