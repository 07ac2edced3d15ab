package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var (
	// These variables should be set during build time using -ldflags
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(_ *cobra.Command, _ []string) error {
		versionInfo := map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
		}
		return json.NewEncoder(os.Stdout).Encode(versionInfo)
	},
}
