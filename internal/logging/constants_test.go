package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldKeysAreDistinct(t *testing.T) {
	keys := []string{
		FieldFile, FieldProfile, FieldBank, FieldPage, FieldCategory,
		FieldDuration, FieldCount, FieldWarnings, FieldOutputFile,
	}

	seen := map[string]bool{}
	for _, k := range keys {
		assert.NotEmpty(t, k)
		assert.False(t, seen[k], "duplicate field key %q", k)
		seen[k] = true
	}
}
