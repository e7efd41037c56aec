package types

import (
	"io/fs"
)

// FS abstracts the filesystem operations brewbump needs.
// Formula files are read whole and overwritten whole; nothing else is required.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (fs.File, error)
}
