package tui

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/replydesk/internal/types"
)

// cmdTimeout bounds how long a test waits for one command. Commands that
// sleep longer (cursor blink) are dropped.
const cmdTimeout = 100 * time.Millisecond

// fakeAPI is an in-memory backend that counts calls per method
type fakeAPI struct {
	mu sync.Mutex

	calls     map[string]int
	templates []types.Template
	tags      []types.Tag
	nextID    int

	generated   string
	generateErr error
	listErr     error
	getErr      error
	saveErr     error
	deleteErr   error

	lastGenerate types.GenerateRequest
	lastFilter   types.TemplateFilter
	lastSaveID   types.ID
	lastSave     types.TemplateInput
	deleted      []types.ID
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:     make(map[string]int),
		generated: "Dear customer, thanks.",
		nextID:    100,
	}
}

func (f *fakeAPI) count(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

// Calls returns how often method was called
func (f *fakeAPI) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// ResetCalls zeroes every counter
func (f *fakeAPI) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = make(map[string]int)
}

func (f *fakeAPI) GenerateResponse(ctx context.Context, req types.GenerateRequest) (string, error) {
	f.count("GenerateResponse")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastGenerate = req
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.generated, nil
}

func (f *fakeAPI) ListTemplates(ctx context.Context, filter types.TemplateFilter) ([]types.Template, error) {
	f.count("ListTemplates")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]types.Template(nil), f.templates...), nil
}

func (f *fakeAPI) GetTemplate(ctx context.Context, id types.ID) (*types.Template, error) {
	f.count("GetTemplate")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, t := range f.templates {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, &types.APIError{Status: 404, Message: "Template not found"}
}

func (f *fakeAPI) SaveTemplate(ctx context.Context, id types.ID, in types.TemplateInput) (*types.Template, error) {
	f.count("SaveTemplate")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSaveID = id
	f.lastSave = in
	if f.saveErr != nil {
		return nil, f.saveErr
	}

	if id.IsZero() {
		f.nextID++
		id = types.ID(strconv.Itoa(f.nextID))
	}
	t := types.Template{ID: id, Title: in.Title, Content: in.Content, Tags: in.Tags}
	for i := range f.templates {
		if f.templates[i].ID == id {
			f.templates[i] = t
			return &t, nil
		}
	}
	f.templates = append(f.templates, t)
	return &t, nil
}

func (f *fakeAPI) DeleteTemplate(ctx context.Context, id types.ID) error {
	f.count("DeleteTemplate")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.templates {
		if f.templates[i].ID == id {
			f.templates = append(f.templates[:i], f.templates[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) ListTags(ctx context.Context) ([]types.Tag, error) {
	f.count("ListTags")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Tag(nil), f.tags...), nil
}

// CreateTestModel creates a Model backed by a fakeAPI.
// Spinner ticks are disabled and status messages never expire.
func CreateTestModel(t *testing.T) (*Model, *fakeAPI) {
	t.Helper()

	api := newFakeAPI()
	m, err := New(api, Options{BaseURL: "http://localhost:5000"})
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	m.animate = false
	t.Cleanup(m.Cleanup)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &m, api
}

// runCmd executes cmd and feeds every resulting message back into the
// model until no commands remain.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("runCmd: too many commands, is something looping?")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := execCmd(next)
		if !ok || msg == nil {
			continue
		}
		if batch, isBatch := msg.(tea.BatchMsg); isBatch {
			queue = append(queue, batch...)
			continue
		}
		if _, isQuit := msg.(tea.QuitMsg); isQuit {
			continue
		}
		_, follow := m.Update(msg)
		queue = append(queue, follow)
	}
}

func execCmd(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// press sends one key and runs what it triggers
func press(t *testing.T, m *Model, key string) {
	t.Helper()
	_, cmd := m.Update(keyMsg(key))
	runCmd(t, m, cmd)
}

// keyMsg builds the key message whose String() is key
func keyMsg(key string) tea.KeyMsg {
	named := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"home":      tea.KeyHome,
		"end":       tea.KeyEnd,
		"pgup":      tea.KeyPgUp,
		"pgdown":    tea.KeyPgDown,
		"delete":    tea.KeyDelete,
		"backspace": tea.KeyBackspace,
		"f1":        tea.KeyF1,
		"f2":        tea.KeyF2,
		"f3":        tea.KeyF3,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+g":    tea.KeyCtrlG,
		"ctrl+n":    tea.KeyCtrlN,
		"ctrl+q":    tea.KeyCtrlQ,
		"ctrl+r":    tea.KeyCtrlR,
		"ctrl+s":    tea.KeyCtrlS,
		"ctrl+t":    tea.KeyCtrlT,
		"ctrl+y":    tea.KeyCtrlY,
	}
	if kt, ok := named[key]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
