package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/prompt"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/editor"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/generator"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/manifests"
)

var AddToolCmd = &cobra.Command{
	Use:   "add-tool",
	Short: "Add a new tool to the current project",
	Long: `Add a new tool to the current project.

The tool function is inserted into main.py before the __main__ guard and
recorded in chatgpt-app.yaml. Unless --no-widget is given the tool is
paired with a widget that renders its result.

Examples:
  create-chatgpt-app add-tool --identifier my-tool --title "My Tool"
  create-chatgpt-app add-tool --identifier lookup --no-widget
  create-chatgpt-app add-tool  # Interactive mode`,
	RunE: runAddTool,
}

var (
	addToolIdentifier     string
	addToolTitle          string
	addToolDescription    string
	addToolNoWidget       bool
	addToolWidgetType     string
	addToolDir            string
	addToolNonInteractive bool
)

func init() {
	AddToolCmd.Flags().StringVarP(&addToolIdentifier, "identifier", "i", "", "Tool identifier")
	AddToolCmd.Flags().StringVarP(&addToolTitle, "title", "t", "", "Tool title")
	AddToolCmd.Flags().StringVarP(&addToolDescription, "description", "d", "", "Tool description")
	AddToolCmd.Flags().BoolVar(&addToolNoWidget, "no-widget", false, "Create tool without a widget")
	AddToolCmd.Flags().StringVar(&addToolWidgetType, "type", "", "Widget type when the tool renders one (cdn|inline|local)")
	AddToolCmd.Flags().StringVar(&addToolDir, "project-dir", "", "Project directory (default: current directory)")
	AddToolCmd.Flags().BoolVar(&addToolNonInteractive, "non-interactive", false, "Run in non-interactive mode")
}

func runAddTool(cmd *cobra.Command, _ []string) error {
	projectDir, err := resolveProjectDir(addToolDir)
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

	identifier := addToolIdentifier
	if identifier == "" {
		if addToolNonInteractive {
			return fmt.Errorf("tool identifier is required in non-interactive mode")
		}
		identifier, err = prompt.ForInput("Tool identifier (e.g., 'my-tool'): ")
		if err != nil {
			return err
		}
		if identifier == "" {
			return fmt.Errorf("tool identifier is required")
		}
	}
	if err := scaffold.ValidateIdentifier(identifier); err != nil {
		return fmt.Errorf("invalid tool identifier: %w", err)
	}

	title := addToolTitle
	if title == "" {
		if addToolNonInteractive {
			title = scaffold.TitleFromIdentifier(identifier)
		} else {
			title, err = prompt.WithDefault("Tool title", scaffold.TitleFromIdentifier(identifier))
			if err != nil {
				return err
			}
		}
	}

	description := addToolDescription
	if description == "" && !addToolNonInteractive {
		description, err = prompt.WithDefault("Tool description", title)
		if err != nil {
			return err
		}
	}

	hasWidget := !addToolNoWidget
	if hasWidget && !addToolNonInteractive && !cmd.Flags().Changed("no-widget") {
		hasWidget, err = prompt.ForConfirmation("Does this tool render a widget?", true)
		if err != nil {
			return err
		}
	}

	tool := scaffold.ToolConfig{
		Identifier:  identifier,
		Title:       title,
		Description: description,
		HasWidget:   hasWidget,
		Params:      []scaffold.ToolParam{{Name: "query", Type: "str"}},
	}

	if hasWidget {
		widgetType := addToolWidgetType
		if widgetType == "" {
			if addToolNonInteractive {
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
		tool.Widget = scaffold.NewToolWidgetConfig(identifier, title, widgetType)
	}

	if err := manifestManager.AddTool(manifest, tool.Identifier, manifests.ToolEntry{
		Title:       tool.Title,
		Description: tool.Description,
		Widget:      tool.HasWidget,
	}); err != nil {
		return err
	}

	block, err := generator.New().RenderTool(tool)
	if err != nil {
		return err
	}

	if err := ed.AddTool(tool, block); err != nil {
		return err
	}

	if err := manifestManager.Save(manifest); err != nil {
		return err
	}

	fmt.Printf("\n%s Tool %q added successfully!\n", successMark, tool.Identifier)
	fmt.Printf("Edit %s to implement your tool's business logic.\n", editor.MainFileName)
	fmt.Println("Don't forget to restart your server to see the changes.")

	return nil
}
