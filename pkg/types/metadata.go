package types

// Metadata is the parsed key/value content of a pack's metadata file
type Metadata map[string]interface{}

// Has reports whether the field is present, whatever its value
func (m Metadata) Has(field string) bool {
	_, ok := m[field]
	return ok
}
