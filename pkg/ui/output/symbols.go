package output

import "github.com/arthur-debert/assetlint/pkg/types"

// Console symbols
const (
	SymbolChecking = "⌛"
	SymbolValid    = "✅"
	SymbolWarning  = "⚠️ "
)

// IssueSymbol returns the symbol that prefixes an issue line, so each kind
// of failure is recognizable at a glance
func IssueSymbol(kind types.IssueKind) string {
	switch kind {
	case types.IssueNaming:
		return "✏️ "
	case types.IssueMissingFile:
		return "📁"
	case types.IssueMalformedMetadata, types.IssueMissingField, types.IssueInvalidURL:
		return "⛔"
	default:
		return "❔"
	}
}

// issueStyle returns the style name used for an issue line
func issueStyle(kind types.IssueKind) string {
	if kind == types.IssueNaming {
		return "Warning"
	}
	return "Error"
}
