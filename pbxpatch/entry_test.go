package pbxpatch

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upperHex24 = regexp.MustCompile(`^[0-9A-F]{24}$`)

func TestNewEntriesIdentifierShape(t *testing.T) {
	entries := NewEntries(DEFAULT_FILES)
	require.Len(t, entries, len(DEFAULT_FILES))

	seen := make(map[string]struct{})
	for i, entry := range entries {
		assert.Equal(t, DEFAULT_FILES[i], entry.Name)
		assert.Regexp(t, upperHex24, entry.FileRef)
		_, duplicate := seen[entry.FileRef]
		assert.False(t, duplicate, "identifier %s assigned twice", entry.FileRef)
		seen[entry.FileRef] = struct{}{}
	}
}

func TestNewEntriesFreshPerInvocation(t *testing.T) {
	first := NewEntries(DEFAULT_FILES)
	second := NewEntries(DEFAULT_FILES)
	for i := range first {
		assert.NotEqual(t, first[i].FileRef, second[i].FileRef)
	}
}

func TestIdGeneratorNoRepeats(t *testing.T) {
	gen := newIdGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := gen.next()
		require.Regexp(t, upperHex24, id)
		_, duplicate := seen[id]
		require.False(t, duplicate)
		seen[id] = struct{}{}
	}
}
