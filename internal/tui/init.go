package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/replydesk/internal/keybinds"
)

// Options configures a Model
type Options struct {
	Context        context.Context
	Keybinds       *keybinds.Registry
	Logger         *zap.Logger
	BaseURL        string        // shown in the header
	MessageTimeout time.Duration // 0 keeps status messages until replaced
}

// New creates a new TUI model
func New(api API, opts Options) (Model, error) {
	if api == nil {
		return Model{}, errors.New("tui: nil API")
	}

	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		api:            api,
		keybinds:       registry,
		logger:         logger.Named("tui"),
		ctx:            ctx,
		cancel:         cancel,
		baseURL:        opts.BaseURL,
		messageTimeout: opts.MessageTimeout,
		animate:        true,
		mode:           ModeNormal,
		tab:            TabResponse,
		response:       NewResponseState(),
		selector:       NewSelectorState(),
		form:           NewTemplateFormState(),
		list:           NewTemplateListState(),
		genStatus:      NewStatusState(),
		tplStatus:      NewStatusState(),
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		helpView:       viewport.New(80, 20),
	}
	m.spinner.Style = styleWarning
	m.setFocus(FocusCustomerEmail)

	return m, nil
}

// Run starts the TUI and blocks until the user quits
func Run(api API, opts Options) error {
	m, err := New(api, opts)
	if err != nil {
		return err
	}
	defer m.Cleanup()

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
