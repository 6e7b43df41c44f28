package metadata

import (
	"testing"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		meta, err := Parse([]byte(`{"source":"https://x.com","author":"me","tags":["rain"]}`))
		require.NoError(t, err)
		assert.Equal(t, "me", meta["author"])
		assert.True(t, meta.Has("tags"))
	})

	t.Run("empty_object", func(t *testing.T) {
		meta, err := Parse([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, types.Metadata{}, meta)
	})

	malformed := map[string]string{
		"syntax_error":    `{"source": "https://x.com",}`,
		"truncated":       `{"author": "me"`,
		"empty_file":      ``,
		"top_level_null":  `null`,
		"top_level_list":  `["source", "author"]`,
		"top_level_str":   `"author"`,
		"byte_order_mark": "\ufeff{}",
	}
	for name, input := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMetaParse), "got %v", err)
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		value interface{}
		want  bool
	}{
		{"https://example.com", true},
		{"https://x.com", true},
		{"http://example.com/path?q=1#frag", true},
		{"https://itch.io/profile/someone", true},
		{"  https://example.com  ", true},
		{"mailto:someone@example.com", true},
		{"ftp://files.example.com/pack.zip", true},
		{"not a url", false},
		{"example.com", false},
		{"/relative/path", false},
		{"https://", false},
		// web schemes need the "//" authority form; "https:foo" is rejected
		// even though browsers would fix it up to https://foo/
		{"https:foo", false},
		{"https:/x.com", false},
		{"HTTPS:x.com", false},
		{"https://exa mple.com", false},
		{"", false},
		{42, false},
		{nil, false},
		{true, false},
		{[]interface{}{"https://example.com"}, false},
	}

	for _, tt := range tests {
		t.Run(stringify(tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidURL(tt.value))
		})
	}
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "non-string"
}
