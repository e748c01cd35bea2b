package pbxpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineFormats(t *testing.T) {
	entry := Entry{Name: "TermsOfService.swift", FileRef: "AAAAAAAAAAAAAAAAAAAAAAA1"}

	assert.Equal(t,
		"\t\tAAAAAAAAAAAAAAAAAAAAAAA1 /* TermsOfService.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = TermsOfService.swift; sourceTree = \"<group>\"; };",
		pbxFileReferenceLine(entry))

	assert.Equal(t,
		"\t\t\t\tAAAAAAAAAAAAAAAAAAAAAAA1 /* TermsOfService.swift */,",
		pbxGroupChildLine(entry))

	assert.Equal(t,
		"\t\tBBBBBBBBBBBBBBBBBBBBBBB2 /* TermsOfService.swift in Sources */ = {isa = PBXBuildFile; fileRef = AAAAAAAAAAAAAAAAAAAAAAA1 /* TermsOfService.swift */; };",
		pbxBuildFileLine("BBBBBBBBBBBBBBBBBBBBBBB2", entry))

	assert.Equal(t,
		"\t\t\t\tBBBBBBBBBBBBBBBBBBBBBBB2 /* TermsOfService.swift in Sources */,",
		pbxSourcesPhaseLine("BBBBBBBBBBBBBBBBBBBBBBB2", entry))
}

func TestDetectType(t *testing.T) {
	cases := map[string]string{
		"BlockedUsersView.swift": "sourcecode.swift",
		"AppDelegate.m":          "sourcecode.c.objc",
		"Bridging-Header.h":      "sourcecode.c.h",
		"Main.xib":               "file.xib",
		"Info.plist":             "text.plist.xml",
		"README":                 DEFAULT_FILETYPE,
		"strange.zzz":            DEFAULT_FILETYPE,
	}
	for name, want := range cases {
		assert.Equal(t, want, detectType(name), "file %s", name)
	}
}
