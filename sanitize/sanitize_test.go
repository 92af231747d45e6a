package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Run("strips control characters", func(t *testing.T) {
		assert.Equal(t, "hello world", Text("hel\x00lo\x1f wor\x7fld"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "go backend", Text("  go backend \t\n"))
	})

	t.Run("keeps unicode text intact", func(t *testing.T) {
		assert.Equal(t, "méxico remoto", Text("méxico remoto"))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", Text(""))
		assert.Equal(t, "", Text("\x00\x01\x02  "))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{"  a\x00b  ", "plain", "", " \x7f ", "\ttabs\t"}
		for _, in := range inputs {
			once := Text(in)
			assert.Equal(t, once, Text(once))
		}
	})
}

func TestTags(t *testing.T) {
	t.Run("lowercases and dedupes", func(t *testing.T) {
		got := Tags([]string{"Node", "node", "REACT", "react "})
		assert.Equal(t, []string{"node", "react"}, got)
	})

	t.Run("drops empty results", func(t *testing.T) {
		got := Tags([]string{"", "  ", "\x00", "go"})
		assert.Equal(t, []string{"go"}, got)
	})

	t.Run("never returns nil", func(t *testing.T) {
		assert.NotNil(t, Tags(nil))
		assert.Empty(t, Tags(nil))
	})

	t.Run("applying twice equals applying once", func(t *testing.T) {
		in := []string{"Go", " GO ", "TypeScript", "", "db\x1f"}
		once := Tags(in)
		assert.Equal(t, once, Tags(once))
	})
}
