package packs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/types"
)

// Options tunes pack enumeration
type Options struct {
	// Ignore holds glob patterns of pack directory names to skip
	Ignore []string
}

// List returns the packs of a category in directory listing order
func List(fsys types.FS, category types.Category, opts Options) ([]types.Pack, error) {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("category", category.Name).Str("path", category.Path).Msg("Listing packs")

	info, err := fsys.Stat(category.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrCategoryNotFound, "category directory does not exist").
				WithDetail("category", category.Name).
				WithDetail("path", category.Path)
		}
		return nil, errors.Wrap(err, errors.ErrCategoryAccess, "cannot access category directory").
			WithDetail("category", category.Name).
			WithDetail("path", category.Path)
	}

	if !info.IsDir() {
		return nil, errors.New(errors.ErrCategoryInvalid, "category path is not a directory").
			WithDetail("category", category.Name).
			WithDetail("path", category.Path)
	}

	entries, err := fsys.ReadDir(category.Path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCategoryAccess, "cannot read category directory").
			WithDetail("category", category.Name).
			WithDetail("path", category.Path)
	}

	var packs []types.Pack
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(category.Path, name)

		if !isPackDir(fsys, entry, path) {
			logger.Trace().Str("name", name).Msg("Skipping non-directory entry")
			continue
		}

		if shouldIgnoreWithPatterns(name, opts.Ignore) {
			logger.Debug().Str("name", name).Msg("Skipping ignored pack")
			continue
		}

		packs = append(packs, types.Pack{
			Category: category.Name,
			Name:     name,
			Path:     path,
		})
	}

	logger.Info().Str("category", category.Name).Int("count", len(packs)).Msg("Found packs")
	return packs, nil
}

// isPackDir reports whether entry is a directory. Symlinks are resolved, so a
// link to a directory is a pack and a dangling link is not.
func isPackDir(fsys types.FS, entry fs.DirEntry, path string) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := fsys.Stat(path)
	if err != nil {
		logger := logging.GetLogger("packs.discovery")
		logger.Debug().Err(err).Str("path", path).Msg("Cannot resolve symlink")
		return false
	}
	return info.IsDir()
}

// shouldIgnoreWithPatterns reports whether name matches any ignore glob
func shouldIgnoreWithPatterns(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
