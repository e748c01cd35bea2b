package pbxpatch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DEFAULT_PROJECT_PATH = "StepOut/StepOut.xcodeproj/project.pbxproj"

var DEFAULT_FILES = []string{
	"BlockedUsersManager.swift",
	"BlockedUsersView.swift",
	"TermsOfService.swift",
}

// Config selects the target project file and the files to add. Fields left
// empty in a config file fall back to the built-in defaults.
type Config struct {
	Project string   `yaml:"project"`
	Files   []string `yaml:"files"`
}

func DefaultConfig() Config {
	return Config{
		Project: DEFAULT_PROJECT_PATH,
		Files:   append([]string{}, DEFAULT_FILES...),
	}
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	config := Config{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if config.Project == "" {
		config.Project = DEFAULT_PROJECT_PATH
	}
	if len(config.Files) == 0 {
		config.Files = append([]string{}, DEFAULT_FILES...)
	}
	return config, nil
}
