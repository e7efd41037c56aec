package brewbump

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Patch Homebrew formulas for a new release"
	MsgUpdateShort     = "Write version, URLs and checksums into formula files"
	MsgChecksumShort   = "Print SHA256 checksums of release artifacts"
	MsgChecksumLong    = "Checksum prints the SHA256 digest of each artifact in the form expected by\n--sha256-arm64 and --sha256-x86_64, one \"<digest>  <file>\" line per file."
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigLong      = "Config prints the configuration after applying defaults, the project file\nand BREWBUMP_ environment variables, as TOML.\n\nWith --defaults, the commented built-in defaults are printed instead.\nWith --write, the output is saved to .brewbump.toml unless that file exists."
	MsgVersionShort    = "Show build information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Configuration written to %s"
	MsgVersionFormat = "brewbump %s (commit %s, built %s)"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrLookahead = "--lookahead must be at least 1, got %d"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun          = "Report changes without writing any file"
	MsgFlagFormat          = "Output format: auto, term, text or json"
	MsgFlagConfig          = "Configuration file (default: .brewbump.toml or brewbump.toml)"
	MsgFlagDir             = "Run as if started in this directory"
	MsgFlagVersion         = "Release version, e.g. v1.2.3"
	MsgFlagSHA256Arm64     = "SHA256 of the darwin arm64 artifact"
	MsgFlagSHA256X8664     = "SHA256 of the darwin x86_64 artifact"
	MsgFlagFormula         = "Formula file to update (repeatable, replaces the configured list)"
	MsgFlagLookahead       = "Lines searched below an anchor for its checksum field"
	MsgFlagStrictChecksums = "Reject checksums that are not 64 hex characters"
	MsgFlagWrite           = "Write the configuration to .brewbump.toml"
	MsgFlagDefaults        = "Use the commented built-in defaults instead of the effective configuration"
	MsgFlagStyles          = "YAML file with terminal output styles"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/update-long.txt
	msgUpdateLongRaw string
	MsgUpdateLong    = strings.TrimSpace(msgUpdateLongRaw)

	//go:embed msgs/update-example.txt
	msgUpdateExampleRaw string
	MsgUpdateExample    = strings.TrimRight(msgUpdateExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
