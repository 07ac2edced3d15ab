package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

var successMark = color.GreenString("✓")

// resolveProjectDir returns the absolute project directory for the
// incremental commands: the --project-dir value when given, the current
// working directory otherwise.
func resolveProjectDir(projectDir string) (string, error) {
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return cwd, nil
	}

	if filepath.IsAbs(projectDir) {
		return projectDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return filepath.Join(cwd, projectDir), nil
}
