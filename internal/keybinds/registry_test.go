package keybinds

import (
	"testing"
)

func TestResolveOrder(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name     string
		key      string
		contexts []Context
		want     Action
		wantOK   bool
	}{
		{"focused context wins", "enter", []Context{ContextList, ContextTemplates}, ActionEditTemplate, true},
		{"tab context", "ctrl+s", []Context{ContextList, ContextTemplates}, ActionSaveTemplate, true},
		{"global fallback", "ctrl+c", []Context{ContextSelect, ContextResponse}, ActionQuitForce, true},
		{"tab action not visible from other tab", "ctrl+s", []Context{ContextResponse}, "", false},
		{"unbound", "z", []Context{ContextList}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.key, tt.contexts...)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatchMultiKey(t *testing.T) {
	r := NewDefaultRegistry()

	action, complete, partial := r.MatchMultiKey(ContextList, "g")
	if complete || !partial || action != "" {
		t.Fatalf("first g: got %q complete=%v partial=%v", action, complete, partial)
	}

	action, complete, partial = r.MatchMultiKey(ContextList, "g")
	if !complete || partial || action != ActionGoToTop {
		t.Fatalf("second g: got %q complete=%v partial=%v", action, complete, partial)
	}

	action, complete, _ = r.MatchMultiKey(ContextList, "j")
	if !complete || action != ActionNavigateDown {
		t.Errorf("j: got %q complete=%v", action, complete)
	}

	// Named keys never start a sequence
	action, complete, partial = r.MatchMultiKey(ContextList, "end")
	if !complete || partial || action != ActionGoToBottom {
		t.Errorf("end: got %q complete=%v partial=%v", action, complete, partial)
	}
}

func TestMatchMultiKeyBrokenSequence(t *testing.T) {
	r := NewDefaultRegistry()

	r.MatchMultiKey(ContextList, "g")
	action, complete, partial := r.MatchMultiKey(ContextList, "x")
	if complete || partial || action != "" {
		t.Errorf("g then x: got %q complete=%v partial=%v", action, complete, partial)
	}

	// State is cleared afterwards
	action, complete, _ = r.MatchMultiKey(ContextList, "k")
	if !complete || action != ActionNavigateUp {
		t.Errorf("k after broken sequence: got %q complete=%v", action, complete)
	}
}

func TestGetBindingString(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBindingString(ContextList, ActionDeleteTemplate); got != "d/delete" {
		t.Errorf("delete_template = %q", got)
	}
	if got := r.GetBindingString(ContextResponse, ActionOpenHelp); got != "f1" {
		t.Errorf("open_help via global fallback = %q", got)
	}
	if got := r.GetBindingString(ContextResponse, ActionSaveTemplate); got != "unbound" {
		t.Errorf("save_template in response = %q", got)
	}
}

func TestListBindingsSorted(t *testing.T) {
	r := NewDefaultRegistry()
	bindings := r.ListBindings(ContextConfirm)

	if len(bindings) != 5 {
		t.Fatalf("expected 5 confirm bindings, got %d", len(bindings))
	}
	if bindings[0].Action != ActionCancel || bindings[0].Key != "N" {
		t.Errorf("first binding = %+v", bindings[0])
	}
	if bindings[len(bindings)-1].Action != ActionConfirm || bindings[len(bindings)-1].Key != "y" {
		t.Errorf("last binding = %+v", bindings[len(bindings)-1])
	}
}
