package pbxpatch

import (
	"strings"

	"github.com/gofrs/uuid"
)

// Entry is one file to splice into the project document. FileRef is the
// 24-character identifier shared by the PBXFileReference declaration and the
// PBXGroup children entry; the PBXBuildFile identifier is generated separately
// when the edits are applied.
type Entry struct {
	Name    string
	FileRef string
}

type idGenerator struct {
	seen map[string]struct{}
}

func newIdGenerator() *idGenerator {
	return &idGenerator{
		seen: make(map[string]struct{}),
	}
}

func (g *idGenerator) next() string {
	u, _ := uuid.NewV4()
	id := strings.ToUpper(strings.ReplaceAll(u.String(), "-", ""))[0:24]

	_, found := g.seen[id]
	if found {
		return g.next()
	}
	g.seen[id] = struct{}{}
	return id
}

// NewEntries assigns a fresh identifier to every file name. Identifiers are
// random per invocation and never persisted, so patching a document twice
// inserts a second, independent set of entries.
func NewEntries(names []string) []Entry {
	gen := newIdGenerator()
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{
			Name:    name,
			FileRef: gen.next(),
		}
	}
	return entries
}
