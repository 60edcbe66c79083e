package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/replydesk/internal/keybinds"
	"github.com/studiowebux/replydesk/internal/types"
)

// API is the subset of the backend client the UI uses
type API interface {
	GenerateResponse(ctx context.Context, req types.GenerateRequest) (string, error)
	ListTemplates(ctx context.Context, filter types.TemplateFilter) ([]types.Template, error)
	GetTemplate(ctx context.Context, id types.ID) (*types.Template, error)
	SaveTemplate(ctx context.Context, id types.ID, in types.TemplateInput) (*types.Template, error)
	DeleteTemplate(ctx context.Context, id types.ID) error
	ListTags(ctx context.Context) ([]types.Tag, error)
}

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirmDelete
	ModeHelp
)

// Tab is one of the two screens
type Tab int

const (
	TabResponse Tab = iota
	TabTemplates
)

func (t Tab) String() string {
	if t == TabTemplates {
		return "Templates"
	}
	return "Response"
}

// Focus identifies the widget receiving keys
type Focus int

const (
	FocusCustomerEmail Focus = iota
	FocusSelectorSearch
	FocusSelectorTag
	FocusSelector
	FocusResponse
	FocusModification
	FocusTitle
	FocusContent
	FocusTags
	FocusListSearch
	FocusListTag
	FocusList
)

var focusOrder = map[Tab][]Focus{
	TabResponse: {
		FocusCustomerEmail,
		FocusSelectorSearch,
		FocusSelectorTag,
		FocusSelector,
		FocusResponse,
		FocusModification,
	},
	TabTemplates: {
		FocusTitle,
		FocusContent,
		FocusTags,
		FocusListSearch,
		FocusListTag,
		FocusList,
	},
}

// tagTarget names the dropdowns a tags reload refreshes
type tagTarget int

const (
	tagTargetBoth tagTarget = iota
	tagTargetSelector
	tagTargetList
)

// panel identifies a status area
type panel int

const (
	panelGeneration panel = iota
	panelTemplates
)

// Model represents the TUI state
type Model struct {
	api      API
	keybinds *keybinds.Registry
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc

	baseURL        string
	messageTimeout time.Duration
	animate        bool

	mode  Mode
	tab   Tab
	focus Focus

	response  *ResponseState
	selector  *SelectorState
	form      *TemplateFormState
	list      *TemplateListState
	genStatus *StatusState
	tplStatus *StatusState

	// pendingDelete is the template awaiting confirmation
	pendingDelete *types.Template

	spinner  spinner.Model
	helpView viewport.Model

	width  int
	height int
}

// Custom message types
type generationDoneMsg struct {
	modification bool
	response     string
	err          error
}

type selectorTemplatesLoadedMsg struct {
	templates []types.Template
	err       error
}

type previewLoadedMsg struct {
	id       types.ID
	template *types.Template
	err      error
}

type templateSavedMsg struct {
	template *types.Template
	err      error
}

type templateListLoadedMsg struct {
	templates []types.Template
	err       error
}

type templateLoadedForEditMsg struct {
	template *types.Template
	err      error
}

type templateDeletedMsg struct {
	title string
	err   error
}

type tagsLoadedMsg struct {
	target tagTarget
	tags   []types.Tag
	err    error
}

type clipboardMsg struct {
	err error
}

type clearStatusMsg struct {
	panel panel
	seq   int
}

type errorMsg string

// Init loads what the response tab shows
func (m *Model) Init() tea.Cmd {
	return m.loadTabData(TabResponse)
}

// Cleanup cancels in-flight requests
func (m *Model) Cleanup() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case spinner.TickMsg:
		if m.response.busy {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case generationDoneMsg:
		cmd = m.handleGenerationDone(msg)

	case selectorTemplatesLoadedMsg:
		cmd = m.handleSelectorTemplatesLoaded(msg)

	case previewLoadedMsg:
		m.handlePreviewLoaded(msg)

	case templateSavedMsg:
		cmd = m.handleTemplateSaved(msg)

	case templateListLoadedMsg:
		cmd = m.handleTemplateListLoaded(msg)

	case templateLoadedForEditMsg:
		cmd = m.handleTemplateLoadedForEdit(msg)

	case templateDeletedMsg:
		cmd = m.handleTemplateDeleted(msg)

	case tagsLoadedMsg:
		m.handleTagsLoaded(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", zap.Error(msg.err))
			cmd = m.setStatus(panelGeneration, "Error: could not copy to clipboard", SeverityError)
		} else {
			cmd = m.setStatus(panelGeneration, "Response copied to clipboard", SeveritySuccess)
		}

	case clearStatusMsg:
		m.statusOf(msg.panel).ClearIfCurrent(msg.seq)

	case errorMsg:
		cmd = m.setStatus(m.activePanel(), string(msg), SeverityError)

	default:
		cmd = m.updateFocused(msg)
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeConfirmDelete:
		return m.renderDeleteModal()
	default:
		return m.renderMain()
	}
}

func (m *Model) statusOf(p panel) *StatusState {
	if p == panelTemplates {
		return m.tplStatus
	}
	return m.genStatus
}

func (m *Model) activePanel() panel {
	if m.tab == TabTemplates {
		return panelTemplates
	}
	return panelGeneration
}

// setStatus replaces a panel's message. Finished messages clear after the
// configured timeout; loading messages stay until replaced.
func (m *Model) setStatus(p panel, msg string, severity Severity) tea.Cmd {
	seq := m.statusOf(p).Set(msg, severity)

	if m.messageTimeout <= 0 || severity == SeverityLoading {
		return nil
	}
	return tea.Tick(m.messageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{panel: p, seq: seq}
	})
}
