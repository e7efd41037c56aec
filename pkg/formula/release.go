package formula

import (
	"strings"

	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/hashutil"
)

// Arch is a CPU architecture token as it appears in artifact names
type Arch string

const (
	ArchArm64 Arch = "arm64"
	ArchX8664 Arch = "x86_64"
)

// Release describes the published artifacts a formula is updated to
type Release struct {
	// Version as tagged, usually with a "v" prefix
	Version     string `json:"version"`
	SHA256Arm64 string `json:"sha256Arm64"`
	SHA256X8664 string `json:"sha256X86_64"`
}

// Tag returns the version exactly as supplied; releases are tagged with the prefix.
func (r Release) Tag() string {
	return r.Version
}

// BareVersion returns the version with leading "v" characters removed.
func (r Release) BareVersion() string {
	return strings.TrimLeft(r.Version, "v")
}

// Checksum returns the digest for arch, or "" for an unknown arch.
func (r Release) Checksum(arch Arch) string {
	switch arch {
	case ArchArm64:
		return r.SHA256Arm64
	case ArchX8664:
		return r.SHA256X8664
	default:
		return ""
	}
}

// Validate checks that every field is set. With strict, checksums must
// also be 64-character hex digests.
func (r Release) Validate(strict bool) error {
	if strings.TrimSpace(r.Version) == "" {
		return errors.New(errors.ErrInvalidInput, "version is required")
	}
	if r.BareVersion() == "" {
		return errors.Newf(errors.ErrInvalidInput, "version %q has no version number", r.Version)
	}

	for _, arch := range []Arch{ArchArm64, ArchX8664} {
		sum := r.Checksum(arch)
		if strings.TrimSpace(sum) == "" {
			return errors.Newf(errors.ErrInvalidInput, "sha256 for %s is required", arch).
				WithDetail("arch", string(arch))
		}
		if strict && !hashutil.IsSHA256(sum) {
			return errors.Newf(errors.ErrInvalidInput, "sha256 for %s is not a hex digest: %q", arch, sum).
				WithDetail("arch", string(arch))
		}
	}

	return nil
}
