package rules

// Issue messages, formatted with the pack name first
const (
	MsgUnfriendlyName  = "%s has an unfriendly name. Make sure it does not have special symbols and is capitalized."
	MsgMissingFile     = "%s does not contain a %s"
	MsgMalformedMeta   = "%s has a malformed %s file."
	MsgMissingField    = "%s does not contain a %s field."
	MsgInvalidURLField = "%s's %s field is not a valid URL."
)
