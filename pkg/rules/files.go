package rules

import (
	"fmt"
	"os"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/types"
)

// CheckFiles records one issue per required file absent from the pack and
// returns the set of files that are present. A file that cannot be stat'ed
// counts as absent; the stat failure is kept on the issue unless the file
// simply does not exist.
func CheckFiles(fs types.FS, result *types.PackResult, required []string) map[string]bool {
	present := make(map[string]bool, len(required))
	for _, name := range required {
		_, err := result.Pack.StatFile(fs, name)
		if err == nil {
			present[name] = true
			continue
		}

		var cause error
		if !os.IsNotExist(err) {
			cause = errors.Wrap(err, errors.ErrPackAccess, "cannot stat pack file").
				WithDetail("file", name)
		}
		result.Add(types.IssueMissingFile, name, fmt.Sprintf(MsgMissingFile, result.Pack.Name, name), cause)
	}
	return present
}
