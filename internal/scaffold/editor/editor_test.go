package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/generator"
)

func generateProject(t *testing.T, template string) string {
	t.Helper()

	projectTemplate, err := scaffold.GetTemplate(template)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "test-app")
	config := scaffold.ProjectConfig{
		ProjectName:   "test-app",
		AppName:       "test-app",
		Description:   "Test ChatGPT app",
		Host:          "127.0.0.1",
		Port:          9000,
		Template:      template,
		PythonVersion: scaffold.DefaultPythonVersion,
		IncludeDocker: false,
		IncludeTests:  false,
		NoGit:         true,
		Directory:     dir,
		Widgets:       projectTemplate.Widgets,
		Tools:         projectTemplate.Tools,
	}
	require.NoError(t, generator.New().GenerateProject(config))
	return dir
}

func readMain(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, MainFileName))
	require.NoError(t, err)
	return string(data)
}

func TestAddWidget(t *testing.T) {
	dir := generateProject(t, "basic")
	e := New(dir)

	w := scaffold.NewWidgetConfig("kanban-board", "Kanban Board", scaffold.WidgetTypeCDN)
	require.NoError(t, e.AddWidget(w))

	content := readMain(t, dir)
	assert.Contains(t, content, `identifier="example-widget",`, "existing widget preserved")
	assert.Contains(t, content, `identifier="kanban-board",`)
	assert.Contains(t, content, "https://example.com/kanban-board.js")

	// The new entry lands inside the list, separated by a comma.
	listStart := strings.Index(content, "widgets: List[AppWidget] = [")
	listEnd := strings.Index(content, "\n]")
	require.GreaterOrEqual(t, listEnd, listStart)
	list := content[listStart:listEnd]
	assert.Contains(t, list, "    ),\n    AppWidget(")
}

func TestAddWidgetDuplicateLeavesFileUntouched(t *testing.T) {
	dir := generateProject(t, "basic")
	e := New(dir)

	before := readMain(t, dir)

	w := scaffold.NewWidgetConfig("example-widget", "Example Widget", scaffold.WidgetTypeInline)
	err := e.AddWidget(w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.Equal(t, before, readMain(t, dir))
}

func TestAddWidgetNoMainFile(t *testing.T) {
	e := New(t.TempDir())

	err := e.AddWidget(scaffold.NewWidgetConfig("x-widget", "X", scaffold.WidgetTypeInline))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "main.py not found")
}

func TestAddWidgetPreservesUserEdits(t *testing.T) {
	dir := generateProject(t, "basic")
	e := New(dir)

	// Simulate a user edit outside the widgets list.
	mainPath := filepath.Join(dir, MainFileName)
	content := readMain(t, dir)
	edited := strings.Replace(content, `if __name__ == "__main__":`,
		"GREETING = \"hello\"  # user edit\n\n\nif __name__ == \"__main__\":", 1)
	require.NoError(t, os.WriteFile(mainPath, []byte(edited), 0644))

	require.NoError(t, e.AddWidget(scaffold.NewWidgetConfig("extra-widget", "Extra", scaffold.WidgetTypeLocal)))

	after := readMain(t, dir)
	assert.Contains(t, after, "GREETING = \"hello\"  # user edit")
	assert.Contains(t, after, `identifier="extra-widget",`)
}

func TestAddTool(t *testing.T) {
	dir := generateProject(t, "basic")
	e := New(dir)

	tool := scaffold.ToolConfig{
		Identifier: "lookup",
		Title:      "Lookup",
		HasWidget:  false,
		Params:     []scaffold.ToolParam{{Name: "query", Type: "str"}},
	}
	block, err := generator.New().RenderTool(tool)
	require.NoError(t, err)

	require.NoError(t, e.AddTool(tool, block))

	content := readMain(t, dir)
	assert.Contains(t, content, "def lookup(query: str) -> str:")

	// The tool lands before the __main__ guard.
	toolIdx := strings.Index(content, "def lookup(")
	guardIdx := strings.Index(content, `if __name__ == "__main__":`)
	assert.Less(t, toolIdx, guardIdx)
}

func TestAddToolWithWidget(t *testing.T) {
	dir := generateProject(t, "basic")
	e := New(dir)

	tool := scaffold.ToolConfig{
		Identifier: "report",
		Title:      "Report",
		HasWidget:  true,
		Widget:     scaffold.NewToolWidgetConfig("report-widget", "Report", scaffold.WidgetTypeInline),
		Params:     []scaffold.ToolParam{{Name: "query", Type: "str"}},
	}
	block, err := generator.New().RenderTool(tool)
	require.NoError(t, err)

	require.NoError(t, e.AddTool(tool, block))

	content := readMain(t, dir)
	assert.Contains(t, content, "def report(query: str) -> str:")
	assert.Contains(t, content, `identifier="report-widget",`)
	assert.Contains(t, content, `"openai/outputTemplate": "ui://widget/report-widget.html",`)
}

func TestAddToolDuplicateLeavesFileUntouched(t *testing.T) {
	dir := generateProject(t, "basic")
	e := New(dir)

	tool := scaffold.ToolConfig{
		Identifier: "lookup",
		Title:      "Lookup",
		Params:     []scaffold.ToolParam{{Name: "query", Type: "str"}},
	}
	block, err := generator.New().RenderTool(tool)
	require.NoError(t, err)
	require.NoError(t, e.AddTool(tool, block))

	before := readMain(t, dir)

	err = e.AddTool(tool, block)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.Equal(t, before, readMain(t, dir))
}

func TestAddToolDuplicateWidgetLeavesFileUntouched(t *testing.T) {
	dir := generateProject(t, "basic")
	e := New(dir)

	tool := scaffold.ToolConfig{
		Identifier: "fancy",
		Title:      "Fancy",
		HasWidget:  true,
		Widget:     scaffold.NewToolWidgetConfig("example-widget", "Example Widget", scaffold.WidgetTypeInline),
		Params:     []scaffold.ToolParam{{Name: "query", Type: "str"}},
	}
	block, err := generator.New().RenderTool(tool)
	require.NoError(t, err)

	before := readMain(t, dir)

	err = e.AddTool(tool, block)
	require.Error(t, err)
	assert.Equal(t, before, readMain(t, dir))
}

func TestWidgetClassName(t *testing.T) {
	content := "@dataclass(frozen=True)\nclass FancyWidget:\n    pass\n"
	assert.Equal(t, "FancyWidget", WidgetClassName(content))

	assert.Equal(t, "Widget", WidgetClassName("no dataclass here"))
}
