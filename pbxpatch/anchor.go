package pbxpatch

import "regexp"

// Anchors are the fixed patterns locating the four insertion points. Each new
// block is spliced in immediately after the end of its anchor's match; an
// anchor that does not match leaves that section of the document untouched.
type Anchors struct {
	// FileReference matches an existing PBXFileReference declaration up to and
	// including its sourceTree attribute, spanning line breaks.
	FileReference *regexp.Regexp
	// GroupChildren matches an existing child line of the target PBXGroup.
	GroupChildren *regexp.Regexp
	// SourcesPhase matches an existing file line of the Sources build phase.
	SourcesPhase *regexp.Regexp
	// BuildFileSection matches the PBXBuildFile section header.
	BuildFileSection *regexp.Regexp
}

var (
	defaultFileReferenceAnchor    = regexp.MustCompile(`(?s)FF1A4CE429A1A2D000000123 /\* ProfileView\.swift \*/.*?sourceTree = "<group>";`)
	defaultGroupChildrenAnchor    = regexp.MustCompile(`B6A2F53817229565D50548F7 /\* EventPhotosViewModel\.swift \*/,`)
	defaultSourcesPhaseAnchor     = regexp.MustCompile(`FF1A4CE429A1A2D000000224 /\* ProfileView\.swift in Sources \*/,`)
	defaultBuildFileSectionAnchor = regexp.MustCompile(`/\* Begin PBXBuildFile section \*/`)
)

// DefaultAnchors targets the StepOut project layout this tool was written for.
func DefaultAnchors() Anchors {
	return Anchors{
		FileReference:    defaultFileReferenceAnchor,
		GroupChildren:    defaultGroupChildrenAnchor,
		SourcesPhase:     defaultSourcesPhaseAnchor,
		BuildFileSection: defaultBuildFileSectionAnchor,
	}
}
