package formula

import (
	"fmt"
	"strings"

	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/types"
)

// Apply rewrites content for rel and returns the new content together with
// the lines that changed. It fails with ErrFormatMismatch unless the checksum
// field of every anchor was located; content is never partially updated.
func Apply(content string, rel Release, layout Layout) (string, []types.LineChange, error) {
	if err := layout.Validate(); err != nil {
		return "", nil, err
	}

	subs, err := layout.substitutions(rel)
	if err != nil {
		return "", nil, err
	}

	text := content
	for _, s := range subs {
		text = strings.ReplaceAll(text, s.old, s.new)
	}

	lines := splitLines(text)
	replaced := replaceChecksums(lines, rel, layout)

	var missing []string
	for _, a := range layout.Anchors {
		if !replaced[a.Arch] {
			missing = append(missing, fmt.Sprintf("%s (%q)", a.Arch, a.Marker))
		}
	}
	if len(missing) > 0 {
		return "", nil, errors.Newf(errors.ErrFormatMismatch,
			"no %s field found below anchor for %s", layout.ChecksumKeyword, strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}

	return strings.Join(lines, "\n") + "\n", diffLines(splitLines(content), lines), nil
}

// replaceChecksums rewrites, in place, the checksum field below the first
// occurrence of each anchor and reports which architectures were replaced.
// A field is never claimed by two anchors.
func replaceChecksums(lines []string, rel Release, layout Layout) map[Arch]bool {
	seen := make(map[Arch]bool, len(layout.Anchors))
	replaced := make(map[Arch]bool, len(layout.Anchors))
	claimed := make(map[int]Arch, len(layout.Anchors))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, a := range layout.Anchors {
			if seen[a.Arch] || trimmed != a.Marker {
				continue
			}
			seen[a.Arch] = true

			j, ok := findChecksum(lines, i, layout)
			if !ok {
				continue
			}
			if _, taken := claimed[j]; taken {
				continue
			}
			lines[j] = layout.checksumLine(rel.Checksum(a.Arch))
			claimed[j] = a.Arch
			replaced[a.Arch] = true
		}
	}

	return replaced
}

// findChecksum returns the index of the first checksum field among the
// Lookahead lines after anchor. The search stops at the next anchor marker
// and, with StopAtBlockEnd, at the anchor block's "end".
func findChecksum(lines []string, anchor int, layout Layout) (int, bool) {
	prefix := layout.ChecksumKeyword + " "
	anchorIndent := indentOf(lines[anchor])

	last := anchor + layout.Lookahead
	if last >= len(lines) {
		last = len(lines) - 1
	}

	for j := anchor + 1; j <= last; j++ {
		trimmed := strings.TrimSpace(lines[j])
		if layout.isMarker(trimmed) {
			return 0, false
		}
		if layout.StopAtBlockEnd && trimmed == "end" && indentOf(lines[j]) <= anchorIndent {
			return 0, false
		}
		if strings.HasPrefix(trimmed, prefix) {
			return j, true
		}
	}
	return 0, false
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// splitLines splits on newlines, dropping a single trailing newline and any
// carriage returns, so "a\nb\n" and "a\r\nb" both give [a b].
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// diffLines pairs lines by index; substitutions never add or remove lines.
func diffLines(before, after []string) []types.LineChange {
	n := len(before)
	if len(after) > n {
		n = len(after)
	}

	var changes []types.LineChange
	for i := 0; i < n; i++ {
		var b, a string
		if i < len(before) {
			b = before[i]
		}
		if i < len(after) {
			a = after[i]
		}
		if a != b {
			changes = append(changes, types.LineChange{Line: i + 1, Before: b, After: a})
		}
	}
	return changes
}
