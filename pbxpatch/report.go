package pbxpatch

type SectionStatus string

const (
	SectionApplied       SectionStatus = "applied"
	SectionAnchorMissing SectionStatus = "anchor missing"
)

type SectionResult struct {
	Status   SectionStatus `json:"status"`
	Inserted int           `json:"inserted"`
}

// Report records the outcome of every insertion step. A missing anchor is not
// an error; callers that care inspect the report.
type Report struct {
	FileReferences SectionResult `json:"fileReferences"`
	GroupChildren  SectionResult `json:"groupChildren"`
	BuildFiles     SectionResult `json:"buildFiles"`
	SourcesPhase   SectionResult `json:"sourcesPhase"`
}

func (r Report) FullyApplied() bool {
	return len(r.AnchorsMissing()) == 0
}

// AnchorsMissing lists the sections that were skipped, in document order.
func (r Report) AnchorsMissing() []string {
	var missing []string
	if r.BuildFiles.Status == SectionAnchorMissing {
		missing = append(missing, "PBXBuildFile")
	}
	if r.FileReferences.Status == SectionAnchorMissing {
		missing = append(missing, "PBXFileReference")
	}
	if r.GroupChildren.Status == SectionAnchorMissing {
		missing = append(missing, "PBXGroup")
	}
	if r.SourcesPhase.Status == SectionAnchorMissing {
		missing = append(missing, "PBXSourcesBuildPhase")
	}
	return missing
}
