package rules

import (
	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/types"
)

// Checker runs every check against a pack
type Checker struct {
	fs    types.FS
	files config.Files
	meta  config.Meta
}

// NewChecker creates a Checker reading through fs with the rules from cfg
func NewChecker(fs types.FS, cfg *config.Config) *Checker {
	return &Checker{
		fs:    fs,
		files: cfg.Files,
		meta:  cfg.Meta,
	}
}

// Check runs the naming, required-file and metadata checks against pack.
// It is safe for concurrent use.
func (c *Checker) Check(pack types.Pack) types.PackResult {
	result := types.PackResult{Pack: pack}

	CheckName(&result)
	present := CheckFiles(c.fs, &result, c.files.Required())
	if present[c.files.Meta] {
		CheckMetadata(c.fs, &result, c.files.Meta, c.meta)
	}

	return result
}
