package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold/manifests"
)

func TestRunAddToolNonInteractiveRequiresIdentifier(t *testing.T) {
	dir := newTestProject(t)
	resetFlags(t, AddToolCmd)
	setFlag(t, AddToolCmd, "project-dir", dir)
	setFlag(t, AddToolCmd, "non-interactive", "true")

	err := runAddTool(AddToolCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "tool identifier is required") {
		t.Fatalf("runAddTool() error = %v, want identifier error", err)
	}
}

func TestRunAddToolMissingMainFile(t *testing.T) {
	dir := newTestProject(t)
	if err := os.Remove(filepath.Join(dir, "main.py")); err != nil {
		t.Fatal(err)
	}
	resetFlags(t, AddToolCmd)
	setFlag(t, AddToolCmd, "project-dir", dir)
	setFlag(t, AddToolCmd, "non-interactive", "true")
	setFlag(t, AddToolCmd, "identifier", "lookup")

	err := runAddTool(AddToolCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "main.py not found") {
		t.Fatalf("runAddTool() error = %v, want missing main.py error", err)
	}
}

func TestRunAddToolNonInteractive(t *testing.T) {
	dir := newTestProject(t)
	resetFlags(t, AddToolCmd)
	setFlag(t, AddToolCmd, "project-dir", dir)
	setFlag(t, AddToolCmd, "non-interactive", "true")
	setFlag(t, AddToolCmd, "identifier", "lookup")
	setFlag(t, AddToolCmd, "no-widget", "true")

	if err := runAddTool(AddToolCmd, nil); err != nil {
		t.Fatalf("runAddTool() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "main.py"))
	if err != nil {
		t.Fatalf("failed to read main.py: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "def lookup(query: str) -> str:") {
		t.Errorf("main.py missing generated tool function")
	}
	if !strings.Contains(content, `name="lookup",`) {
		t.Errorf("main.py missing tool registration")
	}

	manifest, err := manifests.NewManager(dir).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entry, ok := manifest.Tools["lookup"]
	if !ok {
		t.Fatalf("manifest missing tool lookup")
	}
	if entry.Widget {
		t.Errorf("tool widget flag = true, want false")
	}
}
