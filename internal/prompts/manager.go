package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder into the binary at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// PromptProvider lets handlers and clients depend on prompt building without
// the concrete manager.
type PromptProvider interface {
	BuildPrompt(mode string, data map[string]string) (system string, user string, err error)
	Modes() []string
}

// loaded prompt template
type PromptTemplate struct {
	SystemPrompt string `yaml:"system_prompt"`
	UserPrompt   string `yaml:"user_prompt"`
}

type PromptManager struct {
	templates map[string]PromptTemplate // mode -> template
}

// creates a new prompt manager and loads templates
func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{
		templates: make(map[string]PromptTemplate),
	}
	if err := pm.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	return pm, nil
}

// BuildPrompt resolves the template for the given mode and substitutes the
// provided placeholders.
func (pm *PromptManager) BuildPrompt(mode string, data map[string]string) (string, string, error) {
	tmpl, exists := pm.templates[mode]
	if !exists {
		return "", "", fmt.Errorf("template not found for mode: %s", mode)
	}

	// Simple string replacement instead of template execution
	system := tmpl.SystemPrompt
	user := tmpl.UserPrompt
	for key, value := range data {
		placeholder := "{{." + key + "}}"
		system = strings.ReplaceAll(system, placeholder, value)
		user = strings.ReplaceAll(user, placeholder, value)
	}
	return system, user, nil
}

// Modes lists the loaded template modes.
func (pm *PromptManager) Modes() []string {
	modes := make([]string, 0, len(pm.templates))
	for mode := range pm.templates {
		modes = append(modes, mode)
	}
	return modes
}

// loadPrompts loads all YAML prompt files from the embedded filesystem
func (pm *PromptManager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		raw, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}

		var tmpl PromptTemplate
		if err := yaml.Unmarshal(raw, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		if tmpl.SystemPrompt == "" {
			return fmt.Errorf("template %s has no system_prompt", entry.Name())
		}

		mode := strings.TrimSuffix(entry.Name(), ".yaml")
		pm.templates[mode] = tmpl
	}

	if len(pm.templates) == 0 {
		return fmt.Errorf("no prompt templates found")
	}
	return nil
}
