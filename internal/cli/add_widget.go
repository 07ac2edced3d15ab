package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/prompt"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/editor"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/manifests"
)

var AddWidgetCmd = &cobra.Command{
	Use:   "add-widget",
	Short: "Add a new widget to the current project",
	Long: `Add a new widget to the current project.

The widget definition is appended to the widgets list in main.py without
touching the rest of the file, and recorded in chatgpt-app.yaml.

Examples:
  create-chatgpt-app add-widget --identifier my-widget --title "My Widget"
  create-chatgpt-app add-widget --identifier chart --type cdn
  create-chatgpt-app add-widget  # Interactive mode`,
	RunE: runAddWidget,
}

var (
	addWidgetIdentifier     string
	addWidgetTitle          string
	addWidgetType           string
	addWidgetDir            string
	addWidgetNonInteractive bool
)

func init() {
	AddWidgetCmd.Flags().StringVarP(&addWidgetIdentifier, "identifier", "i", "", "Widget identifier")
	AddWidgetCmd.Flags().StringVarP(&addWidgetTitle, "title", "t", "", "Widget title")
	AddWidgetCmd.Flags().StringVar(&addWidgetType, "type", "", "Widget type (cdn|inline|local)")
	AddWidgetCmd.Flags().StringVar(&addWidgetDir, "project-dir", "", "Project directory (default: current directory)")
	AddWidgetCmd.Flags().BoolVar(&addWidgetNonInteractive, "non-interactive", false, "Run in non-interactive mode")
}

func runAddWidget(_ *cobra.Command, _ []string) error {
	projectDir, err := resolveProjectDir(addWidgetDir)
	if err != nil {
		return err
	}

	manifestManager := manifests.NewManager(projectDir)
	if !manifestManager.Exists() {
		return notAProjectError(projectDir)
	}
	manifest, err := manifestManager.Load()
	if err != nil {
		return err
	}

	ed := editor.New(projectDir)
	if !ed.Exists() {
		return fmt.Errorf("%s not found in %s", editor.MainFileName, projectDir)
	}

	identifier := addWidgetIdentifier
	if identifier == "" {
		if addWidgetNonInteractive {
			return fmt.Errorf("widget identifier is required in non-interactive mode")
		}
		identifier, err = prompt.ForInput("Widget identifier (e.g., 'my-widget'): ")
		if err != nil {
			return err
		}
		if identifier == "" {
			return fmt.Errorf("widget identifier is required")
		}
	}
	if err := scaffold.ValidateIdentifier(identifier); err != nil {
		return fmt.Errorf("invalid widget identifier: %w", err)
	}

	title := addWidgetTitle
	if title == "" && !addWidgetNonInteractive {
		title, err = prompt.WithDefault("Widget title", scaffold.TitleFromIdentifier(identifier))
		if err != nil {
			return err
		}
	}

	widgetType := addWidgetType
	if widgetType == "" {
		if addWidgetNonInteractive {
			widgetType = scaffold.WidgetTypeInline
		} else {
			widgetType, err = prompt.ForChoice("Widget type", scaffold.WidgetTypes, scaffold.WidgetTypeInline)
			if err != nil {
				return err
			}
		}
	}
	if err := scaffold.ValidateWidgetType(widgetType); err != nil {
		return err
	}

	widget := scaffold.NewWidgetConfig(identifier, title, widgetType)

	if err := manifestManager.AddWidget(manifest, widget.Identifier, manifests.WidgetEntry{
		Title:       widget.Title,
		Type:        widget.Type,
		TemplateURI: widget.TemplateURI,
	}); err != nil {
		return err
	}

	if err := ed.AddWidget(widget); err != nil {
		return err
	}

	if err := manifestManager.Save(manifest); err != nil {
		return err
	}

	fmt.Printf("\n%s Widget %q added successfully!\n", successMark, widget.Identifier)
	fmt.Println("Don't forget to restart your server to see the changes.")

	return nil
}

func notAProjectError(projectDir string) error {
	return fmt.Errorf("%s not found in %s: not a ChatGPT app project directory (run 'create-chatgpt-app init' first or use --project-dir)",
		manifests.ManifestFileName, projectDir)
}
