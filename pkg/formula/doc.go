// Package formula rewrites the release placeholders of a Homebrew formula.
//
// A formula is committed with placeholder values: a version field of
// "0.0.0", download URLs tagged v0.0.0 and dummy sha256 fields. At release
// time Apply substitutes the version and URLs literally, then locates each
// architecture's checksum field by scanning forward from its anchor line
// ("on_arm do", "on_intel do") and replaces it. Both checksums must be
// replaced or nothing is written.
//
// The scan below an anchor is bounded by Layout.Lookahead and, when
// Layout.StopAtBlockEnd is set, by the "end" closing the anchor's block,
// so a checksum belonging to a later section is never picked up.
package formula
