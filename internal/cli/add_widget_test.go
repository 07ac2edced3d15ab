package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/manifests"
)

func TestRunAddWidgetNonInteractiveRequiresIdentifier(t *testing.T) {
	dir := newTestProject(t)
	resetFlags(t, AddWidgetCmd)
	setFlag(t, AddWidgetCmd, "project-dir", dir)
	setFlag(t, AddWidgetCmd, "non-interactive", "true")

	err := runAddWidget(AddWidgetCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "widget identifier is required") {
		t.Fatalf("runAddWidget() error = %v, want identifier error", err)
	}
}

func TestRunAddWidgetOutsideProject(t *testing.T) {
	resetFlags(t, AddWidgetCmd)
	setFlag(t, AddWidgetCmd, "project-dir", t.TempDir())
	setFlag(t, AddWidgetCmd, "non-interactive", "true")
	setFlag(t, AddWidgetCmd, "identifier", "board")

	err := runAddWidget(AddWidgetCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "not a ChatGPT app project") {
		t.Fatalf("runAddWidget() error = %v, want project detection error", err)
	}
}

func TestRunAddWidgetMissingMainFile(t *testing.T) {
	dir := newTestProject(t)
	if err := os.Remove(filepath.Join(dir, "main.py")); err != nil {
		t.Fatal(err)
	}
	resetFlags(t, AddWidgetCmd)
	setFlag(t, AddWidgetCmd, "project-dir", dir)
	setFlag(t, AddWidgetCmd, "non-interactive", "true")
	setFlag(t, AddWidgetCmd, "identifier", "board")

	err := runAddWidget(AddWidgetCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "main.py not found") {
		t.Fatalf("runAddWidget() error = %v, want missing main.py error", err)
	}
}

func TestRunAddWidgetNonInteractive(t *testing.T) {
	dir := newTestProject(t)
	resetFlags(t, AddWidgetCmd)
	setFlag(t, AddWidgetCmd, "project-dir", dir)
	setFlag(t, AddWidgetCmd, "non-interactive", "true")
	setFlag(t, AddWidgetCmd, "identifier", "kanban-board")

	if err := runAddWidget(AddWidgetCmd, nil); err != nil {
		t.Fatalf("runAddWidget() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "main.py"))
	if err != nil {
		t.Fatalf("failed to read main.py: %v", err)
	}
	if !strings.Contains(string(data), `identifier="kanban-board"`) {
		t.Errorf("main.py missing widget definition for kanban-board")
	}

	manifest, err := manifests.NewManager(dir).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entry, ok := manifest.Widgets["kanban-board"]
	if !ok {
		t.Fatalf("manifest missing widget kanban-board")
	}
	if entry.Title != "Kanban Board" {
		t.Errorf("widget title = %q, want %q", entry.Title, "Kanban Board")
	}
}
