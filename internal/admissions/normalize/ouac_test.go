package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOUACCode(t *testing.T) {
	t.Run("trims and upper-cases", func(t *testing.T) {
		code, ok := OUACCode("  tcs ")
		assert.True(t, ok)
		assert.Equal(t, "TCS", code)
	})

	t.Run("rejects placeholders regardless of case and padding", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "n/a", "N/A", "na", "  NONE  ", "null", "Idk", `n\a`} {
			code, ok := OUACCode(raw)
			assert.False(t, ok, "expected %q to be rejected", raw)
			assert.Empty(t, code)
		}
	})

	t.Run("is idempotent on its output", func(t *testing.T) {
		for _, raw := range []string{"tcs", " MCE ", "yb-1", "ON a"} {
			first, ok := OUACCode(raw)
			assert.True(t, ok)
			second, ok := OUACCode(first)
			assert.True(t, ok)
			assert.Equal(t, first, second)
		}
	})
}
