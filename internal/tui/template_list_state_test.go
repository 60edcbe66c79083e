package tui

import (
	"testing"

	"github.com/studiowebux/replydesk/internal/types"
)

func TestTemplateListState_RowsBeforeLoad(t *testing.T) {
	s := NewTemplateListState()

	if rows := s.Rows(); rows != nil {
		t.Errorf("Expected no rows before a fetch, got %v", rows)
	}
}

func TestTemplateListState_Rows(t *testing.T) {
	s := NewTemplateListState()
	s.SetTemplates([]types.Template{
		{ID: "1", Title: "Welcome", Tags: []string{"greeting", "intro"}},
		{ID: "2", Title: "Plain"},
	})

	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Cells[1] != "[greeting] [intro]" {
		t.Errorf("Expected tag chips, got %q", rows[0].Cells[1])
	}
	if rows[1].Cells[1] != "No tags" {
		t.Errorf("Expected No tags, got %q", rows[1].Cells[1])
	}
	if rows[0].Template == nil || rows[0].Template.ID != "1" {
		t.Error("Expected row to carry its template")
	}
}

func TestTemplateListState_ClearThenEmpty(t *testing.T) {
	s := NewTemplateListState()
	s.SetTemplates([]types.Template{{ID: "1", Title: "A"}})
	s.Clear()
	s.SetTemplates(nil)

	rows := s.Rows()
	if len(rows) != 1 {
		t.Fatalf("Expected exactly one placeholder row, got %d", len(rows))
	}
	if rows[0].Span != 3 || rows[0].Template != nil {
		t.Errorf("Expected placeholder spanning 3 columns, got %+v", rows[0])
	}
}

func TestTemplateListState_CursorAndScroll(t *testing.T) {
	s := NewTemplateListState()
	var templates []types.Template
	for _, id := range []types.ID{"1", "2", "3", "4", "5", "6"} {
		templates = append(templates, types.Template{ID: id, Title: "T" + id.String()})
	}
	s.SetTemplates(templates)

	s.MoveCursor(4)
	start, end := s.VisibleRange(3)
	if start != 2 || end != 5 {
		t.Errorf("Expected range [2,5), got [%d,%d)", start, end)
	}

	s.SetCursor(100)
	if s.Cursor() != 5 {
		t.Errorf("Expected cursor clamped to 5, got %d", s.Cursor())
	}
	if tpl, ok := s.Selected(); !ok || tpl.ID != "6" {
		t.Errorf("Expected template 6 selected, got %+v", tpl)
	}

	s.SetTemplates(templates[:2])
	if s.Cursor() != 1 {
		t.Errorf("Expected cursor pulled back to 1, got %d", s.Cursor())
	}
}

func TestTemplateListState_Filter(t *testing.T) {
	s := NewTemplateListState()
	s.Search.SetValue("refund")
	s.TagFilter.SetOptions([]Option{{Value: "billing", Label: "billing"}})
	s.TagFilter.SelectValue("billing")

	f := s.Filter()
	if f.Search != "refund" || f.Tag != "billing" {
		t.Errorf("Unexpected filter %+v", f)
	}
}
