package rules

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/assetlint/pkg/types"
)

var unfriendly = regexp.MustCompile(`[_!]|  `)

// IsUnfriendlyName reports whether a pack name breaks the display-name
// convention. The first character is flagged when lowercasing leaves it
// unchanged, so names starting with a digit or a symbol are flagged too.
func IsUnfriendlyName(name string) bool {
	if name == "" {
		return true
	}
	if unfriendly.MatchString(name) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.ToLower(first) == first
}

// CheckName records a naming issue for an unfriendly pack name
func CheckName(result *types.PackResult) {
	if IsUnfriendlyName(result.Pack.Name) {
		result.Add(types.IssueNaming, "", fmt.Sprintf(MsgUnfriendlyName, result.Pack.Name), nil)
	}
}
