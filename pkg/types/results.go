package types

import "time"

// LineChange records a single line rewritten in a formula.
// Line is 1-based.
type LineChange struct {
	Line   int    `json:"line"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// FormulaResult holds the outcome of updating one formula file.
type FormulaResult struct {
	Path    string       `json:"path"`
	Changes []LineChange `json:"changes"`
	Written bool         `json:"written"`
}

// Changed reports whether the update modified any line.
func (r *FormulaResult) Changed() bool {
	return len(r.Changes) > 0
}

// Formula statuses as reported to the user
const (
	StatusUpdated     = "updated"
	StatusWouldUpdate = "would update"
	StatusUnchanged   = "unchanged"
)

// Status summarises the result in one of the Status constants.
func (r *FormulaResult) Status() string {
	switch {
	case !r.Changed():
		return StatusUnchanged
	case r.Written:
		return StatusUpdated
	default:
		return StatusWouldUpdate
	}
}

// UpdateResult holds the result of the 'update' command.
type UpdateResult struct {
	Version   string           `json:"version"`
	Tag       string           `json:"tag"`
	DryRun    bool             `json:"dryRun"`
	Formulas  []*FormulaResult `json:"formulas"`
	Timestamp time.Time        `json:"timestamp"`
}

// ArtifactChecksum pairs an artifact path with its SHA-256 digest.
type ArtifactChecksum struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

// ChecksumResult holds the result of the 'checksum' command.
type ChecksumResult struct {
	Artifacts []ArtifactChecksum `json:"artifacts"`
}

// ConfigResult holds the result of the 'config' command.
type ConfigResult struct {
	Sources []string `json:"sources"`
	Content string   `json:"content"`
	// Written is the file the configuration was saved to, if any
	Written string `json:"written,omitempty"`
}
