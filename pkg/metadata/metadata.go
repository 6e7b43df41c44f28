// Package metadata parses pack metadata files and validates their values.
package metadata

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/types"
)

// specialSchemes require a host, the way browsers parse them
var specialSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// Parse decodes a metadata file. The top level must be a JSON object;
// anything else, null included, is malformed.
func Parse(data []byte) (types.Metadata, error) {
	var meta types.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrap(err, errors.ErrMetaParse, "invalid JSON")
	}
	if meta == nil {
		return nil, errors.New(errors.ErrMetaParse, "metadata must be a JSON object, got null")
	}
	return meta, nil
}

// IsValidURL reports whether value is a string holding an absolute URL:
// a scheme followed by a well-formed remainder, with a host for web schemes.
// Non-string values are never valid.
func IsValidURL(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" {
		return false
	}

	if specialSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}

	return true
}
