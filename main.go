package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soapywu/pbxpatch/pbxpatch"
)

var (
	flagProject string
	flagFiles   []string
	flagConfig  string
	flagReport  bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "pbxpatch",
	Short: "Insert source file entries into an Xcode project.pbxproj",
	Long: `pbxpatch splices new PBXFileReference, PBXGroup, PBXBuildFile and
Sources build-phase entries into a project.pbxproj by anchored text insertion.
Sections whose anchor is not found are skipped; the per-section outcome is
available via --report.`,
	SilenceUsage: true,
	RunE:         runPatch,
}

func init() {
	rootCmd.Flags().StringVar(&flagProject, "project", "", "path to project.pbxproj (default "+pbxpatch.DEFAULT_PROJECT_PATH+")")
	rootCmd.Flags().StringArrayVar(&flagFiles, "file", nil, "file name to add (repeatable)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config with project path and file list")
	rootCmd.Flags().BoolVar(&flagReport, "report", false, "print the per-section patch report as JSON")
	rootCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "suppress the confirmation listing")
}

func runPatch(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	config := pbxpatch.DefaultConfig()
	if flagConfig != "" {
		config, err = pbxpatch.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
	}
	if flagProject != "" {
		config.Project = flagProject
	}
	if len(flagFiles) > 0 {
		config.Files = flagFiles
	}

	entries := pbxpatch.NewEntries(config.Files)
	report, err := pbxpatch.NewPatcher().PatchFile(config.Project, entries)
	if err != nil {
		logger.Error("patch failed", zap.String("project", config.Project), zap.Error(err))
		return err
	}

	if missing := report.AnchorsMissing(); len(missing) > 0 {
		logger.Warn("sections skipped, anchor not found",
			zap.String("project", config.Project),
			zap.Strings("sections", missing))
	} else {
		logger.Info("all sections patched",
			zap.String("project", config.Project),
			zap.Int("files", len(entries)))
	}

	if !flagQuiet {
		fmt.Println("Successfully added files to Xcode project:")
		for _, entry := range entries {
			fmt.Printf("  - %s (%s)\n", entry.Name, entry.FileRef)
		}
	}

	if flagReport {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableStacktrace = true
	return config.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
