package manifests

import (
	"time"
)

// ProjectManifest is the chatgpt-app.yaml configuration written at the
// root of every generated project. The add-widget and add-tool commands
// use it to detect a project directory and to reject duplicates.
type ProjectManifest struct {
	// Project metadata
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Template    string `yaml:"template"`

	// Server configuration
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// Registered widgets and tools, keyed by identifier
	Widgets map[string]WidgetEntry `yaml:"widgets,omitempty"`
	Tools   map[string]ToolEntry   `yaml:"tools,omitempty"`

	// Metadata
	CreatedAt time.Time `yaml:"created_at,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}

// WidgetEntry records a widget registered in the project.
type WidgetEntry struct {
	Title       string `yaml:"title"`
	Type        string `yaml:"type"`
	TemplateURI string `yaml:"template_uri"`
}

// ToolEntry records a tool registered in the project.
type ToolEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Widget      bool   `yaml:"widget"`
}
