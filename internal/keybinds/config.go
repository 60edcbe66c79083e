package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config represents the user's keybinding configuration.
// Each section maps a key to an action name; "noop" unbinds a default.
type Config struct {
	Version   string                       `json:"version"`
	Global    map[string]string            `json:"global,omitempty"`
	Response  map[string]string            `json:"response,omitempty"`
	Templates map[string]string            `json:"templates,omitempty"`
	Select    map[string]string            `json:"select,omitempty"`
	List      map[string]string            `json:"list,omitempty"`
	TextInput map[string]string            `json:"text_input,omitempty"`
	Confirm   map[string]string            `json:"confirm,omitempty"`
	Help      map[string]string            `json:"help,omitempty"`
	Custom    map[string]map[string]string `json:"custom,omitempty"`
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) sections() map[Context]map[string]string {
	sections := map[Context]map[string]string{
		ContextGlobal:    c.Global,
		ContextResponse:  c.Response,
		ContextTemplates: c.Templates,
		ContextSelect:    c.Select,
		ContextList:      c.List,
		ContextTextInput: c.TextInput,
		ContextConfirm:   c.Confirm,
		ContextHelp:      c.Help,
	}
	for name, bindings := range c.Custom {
		sections[Context(name)] = bindings
	}
	return sections
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			key = strings.TrimSpace(key)
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("%s: %w", context, err)
			}
			action := Action(strings.TrimSpace(actionStr))
			if err := ValidateAction(action); err != nil {
				return fmt.Errorf("%s.%s: %w", context, key, err)
			}
			if action == ActionNoOp {
				registry.Unregister(context, key)
				continue
			}
			registry.Register(context, key, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}

		if result := NewValidator().ValidateRegistry(registry); result.HasErrors() {
			return nil, fmt.Errorf("invalid keybinds.json:\n%s", result.String())
		}
	}

	return registry, nil
}

// ExampleConfig shows the shape of an override file
func ExampleConfig() *Config {
	return &Config{
		Version: "1.0",
		Global: map[string]string{
			"ctrl+q": "quit",
			"f1":     "open_help",
		},
		Response: map[string]string{
			"ctrl+g": "generate",
			"ctrl+r": "modify",
			"ctrl+y": "copy_response",
		},
		Templates: map[string]string{
			"ctrl+s": "save_template",
			"ctrl+n": "clear_form",
		},
		List: map[string]string{
			"x": "delete_template",
			"d": "noop",
		},
	}
}
