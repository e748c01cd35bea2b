package main

import (
	"fmt"
	"log"

	"github.com/soapywu/pbxpatch/pbxpatch"
)

func main() {
	projectPath := "project.pbxproj"
	entries := pbxpatch.NewEntries([]string{"Foo.swift", "Bar.swift"})

	patcher := pbxpatch.NewPatcher()
	report, err := patcher.PatchFile(projectPath, entries)
	if err != nil {
		log.Fatal(err)
	}

	if !report.FullyApplied() {
		log.Printf("skipped sections: %v", report.AnchorsMissing())
	}

	fmt.Println("Successfully added files to Xcode project:")
	for _, entry := range entries {
		fmt.Printf("  - %s (%s)\n", entry.Name, entry.FileRef)
	}
}
