package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalProject = `FF1A4CE429A1A2D000000123 /* ProfileView.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = ProfileView.swift; sourceTree = "<group>"; };
B6A2F53817229565D50548F7 /* EventPhotosViewModel.swift */,
FF1A4CE429A1A2D000000224 /* ProfileView.swift in Sources */,
/* Begin PBXBuildFile section */
`

func TestRunPatchEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	require.NoError(t, os.WriteFile(path, []byte(minimalProject), 0644))

	rootCmd.SetArgs([]string{"--project", path, "--quiet"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	patched := string(data)

	require.Greater(t, len(patched), len(minimalProject))
	for _, name := range []string{"BlockedUsersManager.swift", "BlockedUsersView.swift", "TermsOfService.swift"} {
		assert.GreaterOrEqual(t, strings.Count(patched, name), 2, "expected %s at least twice", name)
	}
}

func TestRunPatchMissingProject(t *testing.T) {
	rootCmd.SetArgs([]string{"--project", filepath.Join(t.TempDir(), "nope.pbxproj"), "--quiet"})
	require.Error(t, rootCmd.Execute())
}
