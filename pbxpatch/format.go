package pbxpatch

import "fmt"

// Line shapes mirror what Xcode itself writes: PBXFileReference and
// PBXBuildFile entries as inline one-line objects, list memberships as
// `value /* comment */,` lines.

func pbxFileReferenceLine(entry Entry) string {
	return fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = %s; sourceTree = %s; };",
		entry.FileRef, entry.Name, detectType(entry.Name), entry.Name, DEFAULT_SOURCETREE)
}

func pbxGroupChildLine(entry Entry) string {
	return fmt.Sprintf("\t\t\t\t%s /* %s */,", entry.FileRef, entry.Name)
}

func pbxBuildFileLine(buildRef string, entry Entry) string {
	return fmt.Sprintf("\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };",
		buildRef, entry.Name, entry.FileRef, entry.Name)
}

func pbxSourcesPhaseLine(buildRef string, entry Entry) string {
	return fmt.Sprintf("\t\t\t\t%s /* %s in Sources */,", buildRef, entry.Name)
}
