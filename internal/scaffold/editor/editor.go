// Package editor performs text-level edits of a generated main.py,
// inserting widget and tool definitions without disturbing user code.
package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/widgets"
)

// MainFileName is the generated server entry file edited by add-widget
// and add-tool.
const MainFileName = "main.py"

var (
	// widgetsListRegex locates the module-level widgets list. The closing
	// bracket sits at column 0 in generated code.
	widgetsListRegex = regexp.MustCompile(`(?s)(widgets:\s*List\[[^\]]+\]\s*=\s*\[)(.*?)(\n\])`)

	// widgetClassRegex detects the widget dataclass name.
	widgetClassRegex = regexp.MustCompile(`@dataclass\(frozen=True\)\s*class\s+(\w+Widget):`)

	// mainGuardRegex locates the insertion point for new tool functions.
	mainGuardRegex = regexp.MustCompile(`(?m)^if __name__ == "__main__":`)
)

// Editor edits the main source file of a generated project.
type Editor struct {
	projectRoot string
}

// New creates an editor rooted at the project directory.
func New(projectRoot string) *Editor {
	return &Editor{projectRoot: projectRoot}
}

// MainPath returns the path of the edited source file.
func (e *Editor) MainPath() string {
	return filepath.Join(e.projectRoot, MainFileName)
}

// Exists reports whether the project's main source file is present.
func (e *Editor) Exists() bool {
	_, err := os.Stat(e.MainPath())
	return err == nil
}

// AddWidget appends a widget definition to the widgets list in main.py.
// A duplicate identifier fails before anything is written.
func (e *Editor) AddWidget(w scaffold.WidgetConfig) error {
	content, err := e.read()
	if err != nil {
		return err
	}

	content, err = insertWidget(content, w)
	if err != nil {
		return err
	}

	return e.write(content)
}

// AddTool inserts a rendered tool function into main.py, together with
// the tool's widget definition when it has one. All duplicate checks run
// before any edit, so a failure leaves the file untouched.
func (e *Editor) AddTool(tool scaffold.ToolConfig, block string) error {
	content, err := e.read()
	if err != nil {
		return err
	}

	toolName := strcase.SnakeCase(tool.Identifier)
	if err := checkToolMissing(content, toolName); err != nil {
		return err
	}
	if tool.HasWidget {
		if err := checkWidgetMissing(content, tool.Widget.Identifier); err != nil {
			return err
		}
	}

	if tool.HasWidget {
		content, err = insertWidget(content, tool.Widget)
		if err != nil {
			return err
		}
	}

	content, err = insertTool(content, block)
	if err != nil {
		return err
	}

	return e.write(content)
}

func (e *Editor) read() (string, error) {
	data, err := os.ReadFile(e.MainPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s not found in %s", MainFileName, e.projectRoot)
		}
		return "", fmt.Errorf("failed to read %s: %w", MainFileName, err)
	}
	return string(data), nil
}

func (e *Editor) write(content string) error {
	if err := os.WriteFile(e.MainPath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", MainFileName, err)
	}
	return nil
}

// WidgetClassName detects the widget dataclass name used by the generated
// source, falling back to "Widget" when none is found.
func WidgetClassName(content string) string {
	if m := widgetClassRegex.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return "Widget"
}

func checkWidgetMissing(content, identifier string) error {
	if strings.Contains(content, fmt.Sprintf("identifier=%q", identifier)) {
		return fmt.Errorf("widget %q already exists in %s", identifier, MainFileName)
	}
	return nil
}

func checkToolMissing(content, toolName string) error {
	defRegex := regexp.MustCompile(`(?m)^def ` + regexp.QuoteMeta(toolName) + `\(`)
	if defRegex.MatchString(content) || strings.Contains(content, fmt.Sprintf("name=%q,", toolName)) {
		return fmt.Errorf("tool %q already exists in %s", toolName, MainFileName)
	}
	return nil
}

// insertWidget appends the widget literal to the widgets list.
func insertWidget(content string, w scaffold.WidgetConfig) (string, error) {
	if err := checkWidgetMissing(content, w.Identifier); err != nil {
		return "", err
	}

	m := widgetsListRegex.FindStringSubmatchIndex(content)
	if m == nil {
		return "", fmt.Errorf("could not find widgets list in %s", MainFileName)
	}

	code := widgets.Literal(w, WidgetClassName(content))

	existing := content[m[4]:m[5]]
	separator := ""
	if strings.TrimSpace(existing) != "" {
		separator = ","
	}

	return content[:m[5]] + separator + "\n" + code + content[m[5]:], nil
}

// insertTool places the rendered tool block before the __main__ guard.
func insertTool(content, block string) (string, error) {
	loc := mainGuardRegex.FindStringIndex(content)
	if loc == nil {
		return "", fmt.Errorf(`could not find 'if __name__ == "__main__":' in %s`, MainFileName)
	}

	return content[:loc[0]] + block + "\n\n\n" + content[loc[0]:], nil
}
