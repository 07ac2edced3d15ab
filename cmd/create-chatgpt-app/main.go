package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/cli"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "create-chatgpt-app",
		Short:         "Scaffold ChatGPT apps with ease",
		Long:          `create-chatgpt-app scaffolds ChatGPT app projects: MCP servers that expose widgets and tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output-format", "o", "table", "Output format (table|json)")

	rootCmd.AddCommand(cli.InitCmd, cli.AddWidgetCmd, cli.AddToolCmd, cli.ListTemplatesCmd, cli.VersionCmd)

	// Initialize config
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output-format")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
		os.Exit(1)
	}
}
