package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
)

var ListTemplatesCmd = &cobra.Command{
	Use:   "list-templates",
	Short: "List available project templates and widget types",
	RunE:  runListTemplates,
}

// templateListing is the JSON shape of the list-templates output.
type templateListing struct {
	Templates   []templateInfo `json:"templates"`
	WidgetTypes []widgetType   `json:"widget_types"`
}

type templateInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type widgetType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var widgetTypeDescriptions = map[string]string{
	scaffold.WidgetTypeCDN:    "Root div plus external stylesheet and script tags",
	scaffold.WidgetTypeInline: "Literal HTML embedded in the server source",
	scaffold.WidgetTypeLocal:  "Root div plus /static asset references",
}

func runListTemplates(_ *cobra.Command, _ []string) error {
	listing := templateListing{}
	for _, t := range scaffold.Templates() {
		listing.Templates = append(listing.Templates, templateInfo{Name: t.Name, Description: t.Description})
	}
	for _, name := range scaffold.WidgetTypes {
		listing.WidgetTypes = append(listing.WidgetTypes, widgetType{Name: name, Description: widgetTypeDescriptions[name]})
	}

	rows := make([][]string, 0, len(listing.Templates)+len(listing.WidgetTypes))
	for _, t := range listing.Templates {
		rows = append(rows, []string{"template", t.Name, t.Description})
	}
	for _, w := range listing.WidgetTypes {
		rows = append(rows, []string{"widget type", w.Name, w.Description})
	}

	if err := printOutput(listing, []string{"KIND", "NAME", "DESCRIPTION"}, rows); err != nil {
		return err
	}

	if OutputFormat(viper.GetString("output_format")) == OutputFormatTable {
		fmt.Println("\nUse --template with 'init' to select a project template.")
	}
	return nil
}
