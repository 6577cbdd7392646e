package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeLengthAndCharset(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := randomCode(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeCharset, c), "unexpected character %q in %s", c, code)
		}
	}
}

func TestRandomCodeOmitsAmbiguousCharacters(t *testing.T) {
	// 0, O, 1 and I are excluded so codes survive being read aloud.
	for _, banned := range "0O1I" {
		assert.False(t, strings.ContainsRune(codeCharset, banned))
	}
}

func TestRandomCodeUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := randomCode(8)
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
