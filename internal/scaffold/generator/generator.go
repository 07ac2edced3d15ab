// Package generator renders the embedded project templates into a new
// ChatGPT app project directory.
package generator

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/stoewer/go-strcase"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/widgets"
)

//go:embed all:templates
var templateFiles embed.FS

// toolTemplateName is the snippet rendered for individual tools. It is
// skipped during project generation and inserted into main.py by the
// incremental editor instead.
const toolTemplateName = "tool.py.tmpl"

// templateFuncs are available to all project templates. pystr quotes a
// value as a Python string literal.
var templateFuncs = template.FuncMap{
	"pystr": func(s string) string { return fmt.Sprintf("%q", s) },
}

// Generator renders the embedded template set.
type Generator struct {
	templateFiles fs.FS
}

// New creates a generator backed by the embedded templates.
func New() *Generator {
	return &Generator{templateFiles: templateFiles}
}

// renderContext is the data passed to the project templates.
type renderContext struct {
	scaffold.ProjectConfig
	WidgetList        string
	ToolBlocks        []string
	ExtraRequirements []string
}

// GenerateProject renders the project templates into config.Directory.
// The directory must not already exist.
func (g *Generator) GenerateProject(config scaffold.ProjectConfig) error {
	if _, err := os.Stat(config.Directory); err == nil {
		return fmt.Errorf("directory %q already exists", config.ProjectName)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check project directory: %w", err)
	}

	projectTemplate, err := scaffold.GetTemplate(config.Template)
	if err != nil {
		return err
	}

	ctx, err := g.buildContext(config, projectTemplate)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.Directory, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	templateRoot, err := fs.Sub(g.templateFiles, "templates")
	if err != nil {
		return fmt.Errorf("failed to get templates subdirectory: %w", err)
	}

	err = fs.WalkDir(templateRoot, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// The tool snippet is rendered separately by RenderTool.
		if path == toolTemplateName {
			return nil
		}

		if skipPath(path, config) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		destPath := filepath.Join(config.Directory, strings.TrimSuffix(path, ".tmpl"))

		if d.IsDir() {
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", destPath, err)
			}
			return nil
		}

		templateContent, err := fs.ReadFile(templateRoot, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		renderedContent, err := renderTemplate(string(templateContent), ctx)
		if err != nil {
			return fmt.Errorf("failed to render template for %s: %w", path, err)
		}

		if err := os.WriteFile(destPath, []byte(renderedContent), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", destPath, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk templates: %w", err)
	}

	if !config.NoGit {
		if err := g.initGitRepo(config.Directory, config.Verbose); err != nil {
			// Git is optional tooling on the host, so a failed init must
			// not fail the whole generation.
			if config.Verbose {
				fmt.Printf("Warning: failed to initialize git repository: %v\n", err)
			}
		}
	}

	return nil
}

// skipPath reports whether a template path is excluded by the project flags.
func skipPath(path string, config scaffold.ProjectConfig) bool {
	if !config.IncludeDocker && (path == "Dockerfile.tmpl" || path == ".dockerignore.tmpl") {
		return true
	}
	if !config.IncludeTests && (path == "tests" || strings.HasPrefix(path, "tests/")) {
		return true
	}
	return false
}

func (g *Generator) buildContext(config scaffold.ProjectConfig, projectTemplate scaffold.ProjectTemplate) (renderContext, error) {
	literals := make([]string, 0, len(config.Widgets)+len(config.Tools))
	for _, w := range config.Widgets {
		literals = append(literals, widgets.Literal(w, widgets.DefaultClassName))
	}

	blocks := make([]string, 0, len(config.Tools))
	for _, t := range config.Tools {
		if t.HasWidget {
			literals = append(literals, widgets.Literal(t.Widget, widgets.DefaultClassName))
		}
		block, err := g.RenderTool(t)
		if err != nil {
			return renderContext{}, err
		}
		blocks = append(blocks, block)
	}

	return renderContext{
		ProjectConfig:     config,
		WidgetList:        strings.Join(literals, ",\n"),
		ToolBlocks:        blocks,
		ExtraRequirements: projectTemplate.ExtraRequirements,
	}, nil
}

// RenderTool renders the Python source block for a single tool. The block
// carries no trailing newline so it can be spliced into main.py.
func (g *Generator) RenderTool(tool scaffold.ToolConfig) (string, error) {
	templateContent, err := fs.ReadFile(g.templateFiles, filepath.Join("templates", toolTemplateName))
	if err != nil {
		return "", fmt.Errorf("failed to read tool template: %w", err)
	}

	description := tool.Description
	if description == "" {
		description = tool.Title
	}

	params := make([]string, 0, len(tool.Params))
	for _, p := range tool.Params {
		params = append(params, fmt.Sprintf("%s: %s", p.Name, p.Type))
	}

	data := map[string]interface{}{
		"Name":         strcase.SnakeCase(tool.Identifier),
		"Description":  description,
		"Params":       strings.Join(params, ", "),
		"Body":         tool.Body,
		"HasWidget":    tool.HasWidget,
		"TemplateURI":  tool.Widget.TemplateURI,
		"Invoking":     tool.Widget.Invoking,
		"Invoked":      tool.Widget.Invoked,
		"ResponseText": fmt.Sprintf("%s executed successfully!", tool.Title),
	}

	rendered, err := renderTemplate(string(templateContent), data)
	if err != nil {
		return "", fmt.Errorf("failed to render tool template: %w", err)
	}

	return strings.TrimRight(rendered, "\n"), nil
}

func (g *Generator) initGitRepo(dir string, verbose bool) error {
	cmd := exec.Command("git", "init")
	cmd.Dir = dir

	if verbose {
		fmt.Printf("  Initializing git repository...\n")
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run git init: %w", err)
	}

	return nil
}

// renderTemplate renders a template string with the provided data.
func renderTemplate(tmplContent string, data interface{}) (string, error) {
	tmpl, err := template.New("template").Funcs(templateFuncs).Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return result.String(), nil
}
