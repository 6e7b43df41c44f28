package config

import (
	"path/filepath"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/types"
)

// Files holds the names of the files every pack must contain
type Files struct {
	Meta   string `koanf:"meta" toml:"meta"`
	Splash string `koanf:"splash" toml:"splash"`
}

// Required returns the required file names, metadata file first
func (f Files) Required() []string {
	return []string{f.Meta, f.Splash}
}

// Meta holds the metadata schema rules
type Meta struct {
	Required []string `koanf:"required" toml:"required"`
	URLs     []string `koanf:"urls" toml:"urls"`
}

// Packs holds pack discovery settings
type Packs struct {
	Ignore []string `koanf:"ignore" toml:"ignore"`
}

// Config is the main configuration structure
type Config struct {
	Root        string   `koanf:"root" toml:"root"`
	Categories  []string `koanf:"categories" toml:"categories"`
	Concurrency int      `koanf:"concurrency" toml:"concurrency"`
	Files       Files    `koanf:"files" toml:"files"`
	Meta        Meta     `koanf:"meta" toml:"meta"`
	Packs       Packs    `koanf:"packs" toml:"packs"`

	// Source is the config file that was loaded, empty when only defaults apply
	Source string `koanf:"-" toml:"-"`
}

// CategoryList resolves the configured category names against Root
func (c *Config) CategoryList() []types.Category {
	categories := make([]types.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		categories = append(categories, types.Category{
			Name: name,
			Path: filepath.Join(c.Root, name),
		})
	}
	return categories
}

// Validate rejects configurations the linter cannot run with
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return errors.New(errors.ErrConfigValid, "at least one category is required")
	}

	seen := make(map[string]bool, len(c.Categories))
	for i, name := range c.Categories {
		if name == "" {
			return errors.Newf(errors.ErrConfigValid, "categories[%d] is empty", i)
		}
		clean := filepath.Clean(name)
		if seen[clean] {
			return errors.Newf(errors.ErrConfigValid, "duplicate category %q", name).
				WithDetail("index", i)
		}
		seen[clean] = true
	}

	if c.Files.Meta == "" {
		return errors.New(errors.ErrConfigValid, "files.meta cannot be empty")
	}
	if c.Files.Splash == "" {
		return errors.New(errors.ErrConfigValid, "files.splash cannot be empty")
	}

	if c.Concurrency < 0 {
		return errors.Newf(errors.ErrConfigValid, "concurrency must be >= 0, got %d", c.Concurrency)
	}

	for _, pattern := range c.Packs.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid packs.ignore pattern %q", pattern)
		}
	}

	return nil
}
