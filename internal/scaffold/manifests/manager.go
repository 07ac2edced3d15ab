// Package manifests reads and writes the chatgpt-app.yaml project manifest.
package manifests

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
)

const ManifestFileName = "chatgpt-app.yaml"

// Manager handles project manifest operations.
type Manager struct {
	projectRoot string
}

// NewManager creates a new manifest manager.
func NewManager(projectRoot string) *Manager {
	return &Manager{
		projectRoot: projectRoot,
	}
}

// Load reads and parses the chatgpt-app.yaml file.
func (m *Manager) Load() (*ProjectManifest, error) {
	manifestPath := filepath.Join(m.projectRoot, ManifestFileName)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found in %s", ManifestFileName, m.projectRoot)
		}
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFileName, err)
	}

	var manifest ProjectManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFileName, err)
	}

	if err := m.Validate(&manifest); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ManifestFileName, err)
	}

	return &manifest, nil
}

// Save writes the manifest to chatgpt-app.yaml.
func (m *Manager) Save(manifest *ProjectManifest) error {
	manifest.UpdatedAt = time.Now()

	if err := m.Validate(manifest); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	manifestPath := filepath.Join(m.projectRoot, ManifestFileName)
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestFileName, err)
	}

	return nil
}

// Exists checks if a chatgpt-app.yaml file exists in the project root.
func (m *Manager) Exists() bool {
	manifestPath := filepath.Join(m.projectRoot, ManifestFileName)
	_, err := os.Stat(manifestPath)
	return err == nil
}

// GetDefault builds a manifest from a freshly generated project config.
func GetDefault(config scaffold.ProjectConfig) *ProjectManifest {
	manifest := &ProjectManifest{
		Name:        config.AppName,
		Description: config.Description,
		Template:    config.Template,
		Host:        config.Host,
		Port:        config.Port,
		Widgets:     make(map[string]WidgetEntry),
		Tools:       make(map[string]ToolEntry),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for _, w := range config.Widgets {
		manifest.Widgets[w.Identifier] = WidgetEntry{
			Title:       w.Title,
			Type:        w.Type,
			TemplateURI: w.TemplateURI,
		}
	}
	for _, t := range config.Tools {
		manifest.Tools[t.Identifier] = ToolEntry{
			Title:       t.Title,
			Description: t.Description,
			Widget:      t.HasWidget,
		}
	}

	return manifest
}

// Validate checks if the manifest is valid.
func (m *Manager) Validate(manifest *ProjectManifest) error {
	if manifest.Name == "" {
		return fmt.Errorf("project name is required")
	}

	if manifest.Template != "" {
		if _, err := scaffold.GetTemplate(manifest.Template); err != nil {
			return err
		}
	}

	for identifier, widget := range manifest.Widgets {
		if widget.Type != "" {
			if err := scaffold.ValidateWidgetType(widget.Type); err != nil {
				return fmt.Errorf("invalid widget %s: %w", identifier, err)
			}
		}
	}

	return nil
}

// AddWidget records a new widget in the manifest. Duplicates are rejected.
func (m *Manager) AddWidget(manifest *ProjectManifest, identifier string, entry WidgetEntry) error {
	if identifier == "" {
		return fmt.Errorf("widget identifier is required")
	}

	if manifest.Widgets == nil {
		manifest.Widgets = make(map[string]WidgetEntry)
	}

	if _, exists := manifest.Widgets[identifier]; exists {
		return fmt.Errorf("widget %q already exists", identifier)
	}

	manifest.Widgets[identifier] = entry
	return nil
}

// AddTool records a new tool in the manifest. Duplicates are rejected.
func (m *Manager) AddTool(manifest *ProjectManifest, identifier string, entry ToolEntry) error {
	if identifier == "" {
		return fmt.Errorf("tool identifier is required")
	}

	if manifest.Tools == nil {
		manifest.Tools = make(map[string]ToolEntry)
	}

	if _, exists := manifest.Tools[identifier]; exists {
		return fmt.Errorf("tool %q already exists", identifier)
	}

	manifest.Tools[identifier] = entry
	return nil
}
