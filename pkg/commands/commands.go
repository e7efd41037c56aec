// Package commands provides high-level command implementations for brewbump.
//
// This package is the orchestration layer between the CLI and the formula
// updater. Each command is implemented in its own subdirectory:
//   - update/    - Update command
//   - checksum/  - Checksum command
//   - genconfig/ - GenConfig command
//
// This file re-exports the command functions so the CLI imports one package.
package commands

import (
	"github.com/velar/brewbump/pkg/commands/checksum"
	"github.com/velar/brewbump/pkg/commands/genconfig"
	"github.com/velar/brewbump/pkg/commands/update"
	"github.com/velar/brewbump/pkg/types"
)

// Update patches version, download URLs and checksums in formula files.
type UpdateOptions = update.UpdateOptions

func Update(opts UpdateOptions) (*types.UpdateResult, error) {
	return update.Update(opts)
}

// Checksum computes artifact digests for the update command's checksum flags.
type ChecksumOptions = checksum.ChecksumOptions

func Checksum(opts ChecksumOptions) (*types.ChecksumResult, error) {
	return checksum.Checksum(opts)
}

// GenConfig renders, and optionally writes, the effective configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.ConfigResult, error) {
	return genconfig.GenConfig(opts)
}
