/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package pbxpatch

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

type PatcherOption func(p *Patcher)

func WithAnchors(anchors Anchors) PatcherOption {
	return func(p *Patcher) {
		p.anchors = anchors
	}
}

// Patcher splices file entries into a pbxproj document at fixed anchors. It
// never parses the pbxproj grammar and never validates the result; each
// section is best effort and skipped when its anchor is absent.
type Patcher struct {
	anchors Anchors
	ids     *idGenerator
}

func NewPatcher(options ...PatcherOption) *Patcher {
	p := &Patcher{
		anchors: DefaultAnchors(),
		ids:     newIdGenerator(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

type edit struct {
	offset int
	text   string
}

// ApplyEdits inserts one PBXFileReference declaration, one PBXGroup child, one
// PBXBuildFile declaration and one Sources build-phase membership per entry.
// All offsets are located against the input document and the collected edits
// are spliced in a single back-to-front pass, so no insertion can shift the
// position of another. The input is returned unchanged for every section whose
// anchor does not match.
func (p *Patcher) ApplyEdits(document string, entries []Entry) (string, Report) {
	var report Report
	var edits []edit

	if loc := p.anchors.FileReference.FindStringIndex(document); loc != nil {
		lines := make([]string, len(entries))
		for i, entry := range entries {
			lines[i] = pbxFileReferenceLine(entry)
		}
		edits = append(edits, edit{loc[1], joinBlock(lines)})
		report.FileReferences = SectionResult{SectionApplied, len(lines)}
	} else {
		report.FileReferences.Status = SectionAnchorMissing
	}

	if loc := p.anchors.GroupChildren.FindStringIndex(document); loc != nil {
		lines := make([]string, len(entries))
		for i, entry := range entries {
			lines[i] = pbxGroupChildLine(entry)
		}
		edits = append(edits, edit{loc[1], joinBlock(lines)})
		report.GroupChildren = SectionResult{SectionApplied, len(lines)}
	} else {
		report.GroupChildren.Status = SectionAnchorMissing
	}

	if loc := p.anchors.SourcesPhase.FindStringIndex(document); loc != nil {
		headerLoc := p.anchors.BuildFileSection.FindStringIndex(document)
		var buildLines, phaseLines []string
		for _, entry := range entries {
			buildRef := p.ids.next()
			if headerLoc != nil {
				buildLines = append(buildLines, pbxBuildFileLine(buildRef, entry))
			}
			phaseLines = append(phaseLines, pbxSourcesPhaseLine(buildRef, entry))
		}

		if headerLoc != nil {
			edits = append(edits, edit{headerLoc[1], joinBlock(buildLines)})
			report.BuildFiles = SectionResult{SectionApplied, len(buildLines)}
		} else {
			report.BuildFiles.Status = SectionAnchorMissing
		}

		edits = append(edits, edit{loc[1], joinBlock(phaseLines)})
		report.SourcesPhase = SectionResult{SectionApplied, len(phaseLines)}
	} else {
		report.BuildFiles.Status = SectionAnchorMissing
		report.SourcesPhase.Status = SectionAnchorMissing
	}

	return splice(document, edits), report
}

// PatchFile reads path in full, applies the edits and writes the result back
// to the same path. The write happens once at the very end; a failure before
// it leaves the file untouched. There is no locking, so concurrent
// invocations against one path race.
func (p *Patcher) PatchFile(path string, entries []Entry) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read project file: %w", err)
	}

	patched, report := p.ApplyEdits(string(data), entries)

	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return report, fmt.Errorf("write project file: %w", err)
	}
	return report, nil
}

func joinBlock(lines []string) string {
	return "\n" + strings.Join(lines, "\n")
}

func splice(document string, edits []edit) string {
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].offset < edits[j].offset
	})
	for i := len(edits) - 1; i >= 0; i-- {
		document = document[:edits[i].offset] + edits[i].text + document[edits[i].offset:]
	}
	return document
}
