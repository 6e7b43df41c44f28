package types

import (
	"io/fs"
	"path/filepath"
)

// Category is one of the configured top-level asset directories
type Category struct {
	// Name is the configured category name, e.g. "sounds"
	Name string

	// Path is the directory holding the category's packs
	Path string
}

// Pack represents one contributor-supplied asset bundle
type Pack struct {
	// Category is the name of the category the pack lives in
	Category string

	// Name is the pack name (the directory name)
	Name string

	// Path is the path to the pack directory
	Path string
}

// GetFilePath returns the full path to a file within the pack
func (p *Pack) GetFilePath(filename string) string {
	return filepath.Join(p.Path, filename)
}

// StatFile stats a file within the pack
func (p *Pack) StatFile(fsys FS, filename string) (fs.FileInfo, error) {
	return fsys.Stat(p.GetFilePath(filename))
}

// ReadFile reads a file from within the pack
func (p *Pack) ReadFile(fsys FS, filename string) ([]byte, error) {
	return fsys.ReadFile(p.GetFilePath(filename))
}

// Complaint returns the (category, pack) pair identifying this pack in reports
func (p *Pack) Complaint() Complaint {
	return Complaint{Category: p.Category, Pack: p.Name}
}
