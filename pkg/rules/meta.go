package rules

import (
	"fmt"

	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/metadata"
	"github.com/arthur-debert/assetlint/pkg/types"
)

// CheckMetadata validates the pack's metadata file against the schema rules.
// A file that cannot be read or parsed yields a single malformed issue and
// the field checks are skipped.
func CheckMetadata(fs types.FS, result *types.PackResult, filename string, schema config.Meta) {
	pack := result.Pack

	data, err := pack.ReadFile(fs, filename)
	if err != nil {
		result.Add(types.IssueMalformedMetadata, filename, fmt.Sprintf(MsgMalformedMeta, pack.Name, filename),
			errors.Wrap(err, errors.ErrPackAccess, "cannot read metadata"))
		return
	}

	meta, err := metadata.Parse(data)
	if err != nil {
		result.Add(types.IssueMalformedMetadata, filename, fmt.Sprintf(MsgMalformedMeta, pack.Name, filename), err)
		return
	}

	for _, field := range schema.Required {
		if !meta.Has(field) {
			result.Add(types.IssueMissingField, field, fmt.Sprintf(MsgMissingField, pack.Name, field), nil)
		}
	}

	for _, field := range schema.URLs {
		if !meta.Has(field) {
			continue
		}
		if !metadata.IsValidURL(meta[field]) {
			result.Add(types.IssueInvalidURL, field, fmt.Sprintf(MsgInvalidURLField, pack.Name, field), nil)
		}
	}
}
