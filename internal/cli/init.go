package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/config"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/prompt"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/generator"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/manifests"
)

var InitCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Initialize a new ChatGPT app project",
	Long: `Initialize a new ChatGPT app project.

This command renders the project templates into a new directory: an MCP
server entry file (main.py), requirements.txt, README, ignore files, an
optional Dockerfile and an optional tests directory. Options omitted on
the command line are collected through interactive prompts.

Examples:
  create-chatgpt-app init my-app
  create-chatgpt-app init --name "My App" --description "My awesome app"
  create-chatgpt-app init my-app --template multi-widget --no-docker`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var (
	initName           string
	initDescription    string
	initPort           int
	initHost           string
	initTemplate       string
	initNoDocker       bool
	initNoTests        bool
	initNoGit          bool
	initNonInteractive bool
)

func init() {
	InitCmd.Flags().StringVarP(&initName, "name", "n", "", "App name (for the MCP server)")
	InitCmd.Flags().StringVarP(&initDescription, "description", "d", "", "Project description")
	InitCmd.Flags().IntVarP(&initPort, "port", "p", 8000, "Server port")
	InitCmd.Flags().StringVar(&initHost, "host", "0.0.0.0", "Server host")
	InitCmd.Flags().StringVarP(&initTemplate, "template", "t", "basic", "Project template (see list-templates)")
	InitCmd.Flags().BoolVar(&initNoDocker, "no-docker", false, "Skip Dockerfile generation")
	InitCmd.Flags().BoolVar(&initNoTests, "no-tests", false, "Skip test file generation")
	InitCmd.Flags().BoolVar(&initNoGit, "no-git", false, "Skip git initialization")
	InitCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "Run in non-interactive mode")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	var projectName string
	if len(args) > 0 {
		projectName = args[0]
	}

	// Interactive prompts for anything not provided on the command line.
	if projectName == "" && initName == "" {
		if initNonInteractive {
			return fmt.Errorf("project name is required in non-interactive mode")
		}
		projectName, err = prompt.WithDefault("Project directory name", "my-chatgpt-app")
		if err != nil {
			return err
		}
	}

	appName := initName
	if appName == "" {
		if initNonInteractive {
			appName = projectName
		} else {
			appName, err = prompt.WithDefault("App name (for MCP server)", projectName)
			if err != nil {
				return err
			}
		}
	}
	if projectName == "" {
		projectName = appName
	}

	if err := scaffold.ValidateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name: %w", err)
	}

	description := initDescription
	if description == "" {
		defaultDescription := fmt.Sprintf("%s - A ChatGPT app", appName)
		if initNonInteractive {
			description = defaultDescription
		} else {
			description, err = prompt.WithDefault("App description", defaultDescription)
			if err != nil {
				return err
			}
		}
	}

	projectTemplate, err := scaffold.GetTemplate(initTemplate)
	if err != nil {
		return err
	}

	widgetConfigs := projectTemplate.Widgets
	if !initNonInteractive && initTemplate == "basic" {
		widgetConfigs, err = promptForInitialWidget()
		if err != nil {
			return err
		}
	}

	host := initHost
	if !cmd.Flags().Changed("host") && cfg.DefaultHost != "" {
		host = cfg.DefaultHost
	}
	port := initPort
	if !cmd.Flags().Changed("port") && cfg.DefaultPort != 0 {
		port = cfg.DefaultPort
	}

	projectPath, err := filepath.Abs(projectName)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for project: %w", err)
	}

	projectConfig := scaffold.ProjectConfig{
		ProjectName:   projectName,
		AppName:       appName,
		Description:   description,
		Host:          host,
		Port:          port,
		Template:      projectTemplate.Name,
		PythonVersion: scaffold.DefaultPythonVersion,
		IncludeDocker: !initNoDocker,
		IncludeTests:  !initNoTests,
		NoGit:         initNoGit,
		Verbose:       cfg.Verbose,
		Directory:     projectPath,
		Widgets:       widgetConfigs,
		Tools:         projectTemplate.Tools,
	}

	if err := projectConfig.Validate(); err != nil {
		return fmt.Errorf("invalid project configuration: %w", err)
	}

	s := spinner.New(spinner.CharSets[35], 100*time.Millisecond)
	s.Suffix = " Generating project files..."
	s.Start()
	err = generator.New().GenerateProject(projectConfig)
	s.Stop()
	if err != nil {
		return fmt.Errorf("failed to generate project: %w", err)
	}

	if err := manifests.NewManager(projectPath).Save(manifests.GetDefault(projectConfig)); err != nil {
		return fmt.Errorf("failed to save project manifest: %w", err)
	}

	fmt.Printf("\n%s Project created successfully at: %s\n", successMark, projectPath)
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  1. cd %s\n", projectName)
	fmt.Printf("  2. python -m venv .venv\n")
	fmt.Printf("  3. source .venv/bin/activate\n")
	fmt.Printf("  4. pip install -r requirements.txt\n")
	fmt.Printf("  5. python main.py\n")
	fmt.Printf("\nYour server will be running at http://%s:%d\n", host, port)

	return nil
}

// promptForInitialWidget reproduces the interactive widget setup of init:
// an optional single widget seeded with defaults derived from its
// identifier and title.
func promptForInitialWidget() ([]scaffold.WidgetConfig, error) {
	createWidget, err := prompt.ForConfirmation("Create an initial widget?", true)
	if err != nil {
		return nil, err
	}
	if !createWidget {
		return nil, nil
	}

	identifier, err := prompt.WithDefault("Widget identifier (e.g., 'my-widget')", "example-widget")
	if err != nil {
		return nil, err
	}
	if err := scaffold.ValidateIdentifier(identifier); err != nil {
		return nil, fmt.Errorf("invalid widget identifier: %w", err)
	}

	title, err := prompt.WithDefault("Widget title", scaffold.TitleFromIdentifier(identifier))
	if err != nil {
		return nil, err
	}

	widgetType, err := prompt.ForChoice("Widget type", scaffold.WidgetTypes, scaffold.WidgetTypeInline)
	if err != nil {
		return nil, err
	}

	return []scaffold.WidgetConfig{scaffold.NewWidgetConfig(identifier, title, widgetType)}, nil
}
