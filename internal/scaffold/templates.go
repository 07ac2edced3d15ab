package scaffold

import "fmt"

// ProjectTemplate describes a project template variant selectable with
// 'init --template'.
type ProjectTemplate struct {
	Name        string
	Description string

	// Widgets and Tools seed the generated main.py.
	Widgets []WidgetConfig
	Tools   []ToolConfig

	// ExtraRequirements are appended to the generated requirements.txt.
	ExtraRequirements []string
}

// Templates returns the supported project templates in stable order.
func Templates() []ProjectTemplate {
	return []ProjectTemplate{
		{
			Name:        "basic",
			Description: "Basic MCP server with one widget",
			Widgets: []WidgetConfig{
				NewWidgetConfig("example-widget", "Example Widget", WidgetTypeInline),
			},
		},
		{
			Name:        "multi-widget",
			Description: "Server with multiple widget examples",
			Widgets: []WidgetConfig{
				NewWidgetConfig("inline-widget", "Inline Widget", WidgetTypeInline),
				NewWidgetConfig("cdn-widget", "CDN Widget", WidgetTypeCDN),
				NewWidgetConfig("local-widget", "Local Widget", WidgetTypeLocal),
			},
		},
		{
			Name:        "database",
			Description: "Server with database integration example",
			Widgets: []WidgetConfig{
				NewWidgetConfig("notes-widget", "Notes Widget", WidgetTypeInline),
			},
			Tools: []ToolConfig{
				{
					Identifier:  "save-note",
					Title:       "Save Note",
					Description: "Persist a note in the local SQLite database",
					Params:      []ToolParam{{Name: "text", Type: "str"}},
					Body: `    import sqlite3

    conn = sqlite3.connect("app.db")
    try:
        conn.execute(
            "CREATE TABLE IF NOT EXISTS notes (id INTEGER PRIMARY KEY, body TEXT)"
        )
        conn.execute("INSERT INTO notes (body) VALUES (?)", (text,))
        conn.commit()
    finally:
        conn.close()
    return "Note saved."`,
				},
			},
		},
		{
			Name:        "api",
			Description: "Server with external API integration",
			Widgets: []WidgetConfig{
				NewWidgetConfig("api-widget", "API Widget", WidgetTypeInline),
			},
			Tools: []ToolConfig{
				{
					Identifier:  "fetch-data",
					Title:       "Fetch Data",
					Description: "Fetch data from an external HTTP API",
					Params:      []ToolParam{{Name: "url", Type: "str"}},
					Body: `    import httpx

    response = httpx.get(url, timeout=10.0)
    response.raise_for_status()
    return response.text`,
				},
			},
			ExtraRequirements: []string{"httpx>=0.27.0"},
		},
	}
}

// GetTemplate looks up a project template by name.
func GetTemplate(name string) (ProjectTemplate, error) {
	for _, t := range Templates() {
		if t.Name == name {
			return t, nil
		}
	}
	return ProjectTemplate{}, fmt.Errorf("template %q not found", name)
}
