package types

import (
	"io/fs"
)

// FS is the filesystem view the linter works against. It is deliberately
// read-only: asset packs are inspected, never modified.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
