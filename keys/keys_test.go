package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingsMatchStringsMap(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		require.True(t, ok, "no binding for %q", s)
		assert.Contains(t, binding.Keys(), s, "binding for %q does not list it", s)
	}

	for name, binding := range GlobalkeyBindings {
		for _, s := range binding.Keys() {
			assert.Equal(t, name, GlobalKeyStringsMap[s], "key %q maps elsewhere", s)
		}
		assert.NotEmpty(t, binding.Help().Desc)
	}
}

func TestDigits(t *testing.T) {
	for d := 0; d <= 9; d++ {
		name := GlobalKeyStringsMap[string(rune('0'+d))]
		assert.True(t, name.IsDigit())
		assert.Equal(t, d, name.Digit())
	}
	assert.False(t, KeyPoint.IsDigit())
	assert.False(t, KeyQuit.IsDigit())
}
