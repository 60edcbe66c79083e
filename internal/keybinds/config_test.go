package keybinds

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	r, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action, ok := r.Match(ContextResponse, "ctrl+g"); !ok || action != ActionGenerate {
		t.Errorf("default ctrl+g = %q, %v", action, ok)
	}
}

func TestLoadOrDefaultOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"version": "1.0",
		"response": {"ctrl+e": "generate"},
		"list": {"x": "delete_template", "d": "noop"}
	}`)

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if action, _ := r.Match(ContextResponse, "ctrl+e"); action != ActionGenerate {
		t.Errorf("ctrl+e = %q, want generate", action)
	}
	if action, _ := r.Match(ContextResponse, "ctrl+g"); action != ActionGenerate {
		t.Errorf("default ctrl+g should survive, got %q", action)
	}
	if action, _ := r.Match(ContextList, "x"); action != ActionDeleteTemplate {
		t.Errorf("x = %q, want delete_template", action)
	}
	if r.HasBinding(ContextList, "d") {
		t.Error("d should be unbound by noop")
	}
}

func TestLoadOrDefaultRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad json", `{`, "failed to load"},
		{"unknown action", `{"global": {"ctrl+x": "explode"}}`, "unknown action"},
		{"empty key", `{"global": {"": "quit"}}`, "key cannot be empty"},
		{"bare modifier", `{"global": {"ctrl+": "quit"}}`, "modifier without key"},
		{"reserved key", `{"list": {"ctrl+c": "refresh"}}`, "reserved"},
		{"no quit", `{"global": {"ctrl+c": "noop", "ctrl+q": "noop"}}`, "no key quits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOrDefault(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExampleConfigApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := SaveConfig(ExampleConfig(), path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := LoadOrDefault(path); err != nil {
		t.Errorf("example config should load: %v", err)
	}
}

func TestValidatorWarnsOnShadowing(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextList, "tab", ActionRefresh)

	result := NewValidator().ValidateRegistry(r)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %s", result.String())
	}
	if !result.HasWarnings() {
		t.Error("expected shadowing warning")
	}
}
