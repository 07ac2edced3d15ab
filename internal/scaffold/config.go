package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Widget types supported by the generated app.
const (
	WidgetTypeCDN    = "cdn"
	WidgetTypeInline = "inline"
	WidgetTypeLocal  = "local"
)

// WidgetTypes lists the supported widget types in stable order.
var WidgetTypes = []string{WidgetTypeCDN, WidgetTypeInline, WidgetTypeLocal}

// DefaultPythonVersion is the Python base image version used in the
// generated Dockerfile.
const DefaultPythonVersion = "3.11"

// ProjectConfig contains all the information needed to generate a project.
type ProjectConfig struct {
	ProjectName   string
	AppName       string
	Description   string
	Host          string
	Port          int
	Template      string
	PythonVersion string
	IncludeDocker bool
	IncludeTests  bool
	NoGit         bool
	Verbose       bool
	Directory     string
	Widgets       []WidgetConfig
	Tools         []ToolConfig
}

// WidgetConfig describes a widget exposed by the generated app as an
// HTML UI resource.
type WidgetConfig struct {
	Identifier   string
	Title        string
	Type         string
	TemplateURI  string
	Invoking     string
	Invoked      string
	ResponseText string
	CDNCSS       string
	CDNJS        string
	HTMLContent  string
}

// ToolConfig describes a callable tool exposed by the generated app,
// optionally paired with a widget.
type ToolConfig struct {
	Identifier  string
	Title       string
	Description string
	HasWidget   bool
	Widget      WidgetConfig

	// Params become the generated tool function's signature. Tools
	// without explicit params default to a single query string.
	Params []ToolParam

	// Body is an optional pre-indented Python function body. When empty
	// the generated tool carries a stub implementation.
	Body string
}

// ToolParam is one input schema field of a generated tool.
type ToolParam struct {
	Name string
	Type string
}

var identifierRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Identifiers that would shadow names the generated main.py relies on.
var reservedIdentifiers = []string{"main", "server", "test", "tool", "widget", "widgets", "mcp"}

// ValidateIdentifier checks a widget or tool identifier.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	if !identifierRegex.MatchString(name) {
		return fmt.Errorf("identifier %q must start with a lowercase letter and contain only lowercase letters, digits, '-' or '_'", name)
	}

	for _, reserved := range reservedIdentifiers {
		if name == reserved {
			return fmt.Errorf("%q is a reserved name", name)
		}
	}

	return nil
}

// ValidateProjectName checks a project directory name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if strings.ContainsAny(name, " \t\n\r/\\:*?\"<>|") {
		return fmt.Errorf("project name contains invalid characters")
	}

	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("project name cannot start with a dot")
	}

	return nil
}

// ValidateWidgetType checks that t is one of the supported widget types.
func ValidateWidgetType(t string) error {
	for _, valid := range WidgetTypes {
		if t == valid {
			return nil
		}
	}
	return fmt.Errorf("unsupported widget type %q (expected one of: %s)", t, strings.Join(WidgetTypes, ", "))
}

// Validate checks the project configuration, collecting all field errors.
func (c *ProjectConfig) Validate() error {
	var result *multierror.Error

	if err := ValidateProjectName(c.ProjectName); err != nil {
		result = multierror.Append(result, err)
	}
	if c.AppName == "" {
		result = multierror.Append(result, fmt.Errorf("app name cannot be empty"))
	}
	if c.Port < 1 || c.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %d is out of range (1-65535)", c.Port))
	}
	if c.Host == "" {
		result = multierror.Append(result, fmt.Errorf("host cannot be empty"))
	}

	for _, w := range c.Widgets {
		if err := w.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	for _, t := range c.Tools {
		if err := ValidateIdentifier(t.Identifier); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// Validate checks the widget configuration, collecting all field errors.
func (w *WidgetConfig) Validate() error {
	var result *multierror.Error

	if err := ValidateIdentifier(w.Identifier); err != nil {
		result = multierror.Append(result, err)
	}
	if w.Title == "" {
		result = multierror.Append(result, fmt.Errorf("widget title cannot be empty"))
	}
	if err := ValidateWidgetType(w.Type); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// TitleFromIdentifier derives a human readable title from an identifier,
// e.g. "kanban-board" becomes "Kanban Board".
func TitleFromIdentifier(identifier string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(identifier)
	return cases.Title(language.English).String(words)
}

// NewWidgetConfig returns a widget seeded with the default status strings
// and template URI derived from its identifier and title.
func NewWidgetConfig(identifier, title, widgetType string) WidgetConfig {
	if title == "" {
		title = TitleFromIdentifier(identifier)
	}
	return WidgetConfig{
		Identifier:   identifier,
		Title:        title,
		Type:         widgetType,
		TemplateURI:  fmt.Sprintf("ui://widget/%s.html", identifier),
		Invoking:     fmt.Sprintf("Loading %s", title),
		Invoked:      fmt.Sprintf("%s loaded", title),
		ResponseText: fmt.Sprintf("%s rendered successfully!", title),
	}
}

// NewToolWidgetConfig returns the widget paired with a tool. Tool widgets
// use execution-flavored status strings.
func NewToolWidgetConfig(identifier, title, widgetType string) WidgetConfig {
	w := NewWidgetConfig(identifier, title, widgetType)
	w.Invoking = fmt.Sprintf("Executing %s", w.Title)
	w.Invoked = fmt.Sprintf("%s completed", w.Title)
	w.ResponseText = fmt.Sprintf("%s executed successfully!", w.Title)
	return w
}
