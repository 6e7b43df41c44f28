package assetlint

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Validate user-contributed asset packs"
	MsgListShort       = "List categories and their packs"
	MsgRulesShort      = "Describe the rules every pack is checked against"
	MsgGenConfigShort  = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgCategoryHeader = "%s (%s)"
	MsgPackItem       = "  %s"
	MsgNoPacks        = "  (no packs)"
	MsgVersionFormat  = "assetlint version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default: assetlint.toml in the root directory)"
	MsgFlagRoot        = "Asset root directory holding the category directories (default \".\")"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagCategory    = "Category to check, repeatable (replaces the configured list)"
	MsgFlagConcurrency = "Maximum packs checked at once per category (0 = unlimited)"
	MsgFlagDefaults    = "Print the commented built-in defaults instead of the effective config"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/rules.md
	MsgRulesDoc string
)
