// Package hashutil computes artifact digests for formula checksum fields.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/velar/brewbump/pkg/types"
)

// FileSHA256 returns the hex-encoded SHA256 digest of the file at path,
// in the bare form Homebrew expects in a sha256 field.
func FileSHA256(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// IsSHA256 reports whether s looks like a hex-encoded SHA256 digest.
func IsSHA256(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
