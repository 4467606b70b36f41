package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SixDigitsZeroPadded(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 200; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		require.Len(t, code, Digits)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q contains non-digit %q", code, c)
		}
	}
}

func TestGenerate_NotConstant(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 50 draws from a million values colliding into one bucket would mean a
	// broken source, not bad luck.
	assert.Greater(t, len(seen), 1)
}
