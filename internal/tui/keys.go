package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/replydesk/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeConfirmDelete:
		return m.handleConfirmKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm:
		return m.confirmDelete()
	case keybinds.ActionCancel:
		m.cancelDelete()
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit()
	}
	return nil
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal, keybinds.ActionOpenHelp:
		m.mode = ModeNormal
	case keybinds.ActionNavigateUp:
		m.helpView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.LineDown(1)
	case keybinds.ActionPageUp:
		m.helpView.ViewUp()
	case keybinds.ActionPageDown:
		m.helpView.ViewDown()
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit()
	}
	return nil
}

// handleNormalKeys resolves a key against the focused widget, the active tab
// and the global bindings, in that order. Unbound keys go to the widget.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	focusCtx, hasFocusCtx := m.focusContext()

	var (
		action keybinds.Action
		ok     bool
	)
	if focusCtx == keybinds.ContextList {
		var partial bool
		action, ok, partial = m.keybinds.MatchMultiKey(keybinds.ContextList, key)
		if partial {
			return nil
		}
		if !ok {
			action, ok = m.keybinds.Resolve(key, m.tabContext())
		}
	} else if hasFocusCtx {
		action, ok = m.keybinds.Resolve(key, focusCtx, m.tabContext())
	} else {
		action, ok = m.keybinds.Resolve(key, m.tabContext())
	}

	if ok {
		if cmd, handled := m.handleAction(action); handled {
			return cmd
		}
	}

	return m.forwardKey(msg)
}

// handleAction runs a resolved action; handled is false when the action does
// not apply to the current focus and the key should reach the widget.
func (m *Model) handleAction(action keybinds.Action) (tea.Cmd, bool) {
	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return m.quit(), true
	case keybinds.ActionOpenHelp:
		m.openHelp()
		return nil, true
	case keybinds.ActionToggleTab:
		if m.tab == TabResponse {
			return m.switchTab(TabTemplates), true
		}
		return m.switchTab(TabResponse), true
	case keybinds.ActionShowResponseTab:
		return m.switchTab(TabResponse), true
	case keybinds.ActionShowTemplatesTab:
		return m.switchTab(TabTemplates), true
	case keybinds.ActionFocusNext:
		return m.cycleFocus(1), true
	case keybinds.ActionFocusPrev:
		return m.cycleFocus(-1), true

	case keybinds.ActionGenerate:
		return m.generateResponse(), true
	case keybinds.ActionModify:
		return m.modifyResponse(), true
	case keybinds.ActionCopyResponse:
		return m.copyResponse(), true

	case keybinds.ActionSaveTemplate:
		return m.saveTemplate(), true
	case keybinds.ActionClearForm:
		m.clearTemplateForm()
		return nil, true

	case keybinds.ActionTextSubmit:
		return m.submitFocused()
	case keybinds.ActionClearFilter:
		return m.selectOption(func(s *SelectState) bool { return s.SelectIndex(0) }), true
	}

	switch m.focus {
	case FocusSelectorTag, FocusSelector, FocusListTag:
		return m.handleSelectAction(action)
	case FocusList:
		return m.handleListAction(action)
	}
	return nil, false
}

// submitFocused is Enter on a single-line input or dropdown
func (m *Model) submitFocused() (tea.Cmd, bool) {
	switch m.focus {
	case FocusSelectorSearch, FocusSelectorTag, FocusSelector:
		return m.loadSelectorTemplates(), true
	case FocusListSearch, FocusListTag:
		return m.loadTemplateList(), true
	case FocusModification:
		return m.modifyResponse(), true
	}
	// Title and tags inputs ignore Enter
	return nil, true
}

func (m *Model) handleSelectAction(action keybinds.Action) (tea.Cmd, bool) {
	switch action {
	case keybinds.ActionNavigateUp:
		return m.selectOption((*SelectState).Prev), true
	case keybinds.ActionNavigateDown:
		return m.selectOption((*SelectState).Next), true
	case keybinds.ActionGoToTop:
		return m.selectOption(func(s *SelectState) bool { return s.SelectIndex(0) }), true
	case keybinds.ActionGoToBottom:
		return m.selectOption(func(s *SelectState) bool { return s.SelectIndex(s.Len() - 1) }), true
	}
	return nil, false
}

func (m *Model) handleListAction(action keybinds.Action) (tea.Cmd, bool) {
	page := max(1, m.listHeight())

	switch action {
	case keybinds.ActionNavigateUp:
		m.list.MoveCursor(-1)
	case keybinds.ActionNavigateDown:
		m.list.MoveCursor(1)
	case keybinds.ActionPageUp:
		m.list.MoveCursor(-page)
	case keybinds.ActionPageDown:
		m.list.MoveCursor(page)
	case keybinds.ActionGoToTop:
		m.list.SetCursor(0)
	case keybinds.ActionGoToBottom:
		m.list.SetCursor(m.list.Len() - 1)
	case keybinds.ActionEditTemplate:
		if t, ok := m.list.Selected(); ok {
			return m.editTemplate(t.ID), true
		}
	case keybinds.ActionDeleteTemplate:
		if t, ok := m.list.Selected(); ok {
			m.requestDelete(t)
		}
	case keybinds.ActionRefresh:
		return m.loadTemplateList(), true
	default:
		return nil, false
	}
	return nil, true
}

// selectOption applies change to the focused dropdown. A change of the
// template selector refreshes the preview.
func (m *Model) selectOption(change func(*SelectState) bool) tea.Cmd {
	s := m.focusedSelect()
	if s == nil {
		return nil
	}
	if change(s) && m.focus == FocusSelector {
		return m.previewTemplate()
	}
	return nil
}

func (m *Model) focusedSelect() *SelectState {
	switch m.focus {
	case FocusSelectorTag:
		return m.selector.TagFilter
	case FocusSelector:
		return m.selector.Templates
	case FocusListTag:
		return m.list.TagFilter
	}
	return nil
}

// forwardKey hands an unbound key to the focused widget. Edits of the
// generation inputs clear the generation status; edits of the form clear
// the template status.
func (m *Model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	if s := m.focusedSelect(); s != nil {
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
			return m.selectOption(func(s *SelectState) bool {
				changed := false
				for _, r := range msg.Runes {
					changed = s.TypeAhead(r) || changed
				}
				return changed
			})
		}
		return nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusCustomerEmail:
		before := m.response.CustomerEmail.Value()
		m.response.CustomerEmail, cmd = m.response.CustomerEmail.Update(msg)
		if m.response.CustomerEmail.Value() != before {
			m.genStatus.Clear()
		}
	case FocusResponse:
		m.response.Response, cmd = m.response.Response.Update(msg)
	case FocusModification:
		before := m.response.Modification.Value()
		m.response.Modification, cmd = m.response.Modification.Update(msg)
		if m.response.Modification.Value() != before {
			m.genStatus.Clear()
		}
	case FocusSelectorSearch:
		m.selector.Search, cmd = m.selector.Search.Update(msg)
	case FocusTitle:
		before := m.form.Title.Value()
		m.form.Title, cmd = m.form.Title.Update(msg)
		if m.form.Title.Value() != before {
			m.tplStatus.Clear()
		}
	case FocusContent:
		before := m.form.Content.Value()
		m.form.Content, cmd = m.form.Content.Update(msg)
		if m.form.Content.Value() != before {
			m.tplStatus.Clear()
		}
	case FocusTags:
		before := m.form.Tags.Value()
		m.form.Tags, cmd = m.form.Tags.Update(msg)
		if m.form.Tags.Value() != before {
			m.tplStatus.Clear()
		}
	case FocusListSearch:
		m.list.Search, cmd = m.list.Search.Update(msg)
	}
	return cmd
}

// updateFocused passes non-key messages (cursor blink) to the focused widget
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusCustomerEmail:
		m.response.CustomerEmail, cmd = m.response.CustomerEmail.Update(msg)
	case FocusResponse:
		m.response.Response, cmd = m.response.Response.Update(msg)
	case FocusModification:
		m.response.Modification, cmd = m.response.Modification.Update(msg)
	case FocusSelectorSearch:
		m.selector.Search, cmd = m.selector.Search.Update(msg)
	case FocusTitle:
		m.form.Title, cmd = m.form.Title.Update(msg)
	case FocusContent:
		m.form.Content, cmd = m.form.Content.Update(msg)
	case FocusTags:
		m.form.Tags, cmd = m.form.Tags.Update(msg)
	case FocusListSearch:
		m.list.Search, cmd = m.list.Search.Update(msg)
	}
	return cmd
}

// focusContext returns the keybinding context of the focused widget.
// Multi-line text areas have none so every key reaches them.
func (m *Model) focusContext() (keybinds.Context, bool) {
	switch m.focus {
	case FocusSelectorTag, FocusSelector, FocusListTag:
		return keybinds.ContextSelect, true
	case FocusList:
		return keybinds.ContextList, true
	case FocusSelectorSearch, FocusListSearch, FocusModification, FocusTitle, FocusTags:
		return keybinds.ContextTextInput, true
	}
	return "", false
}

func (m *Model) tabContext() keybinds.Context {
	if m.tab == TabTemplates {
		return keybinds.ContextTemplates
	}
	return keybinds.ContextResponse
}

// cycleFocus moves focus through the active tab's widgets
func (m *Model) cycleFocus(delta int) tea.Cmd {
	order := focusOrder[m.tab]
	current := 0
	for i, f := range order {
		if f == m.focus {
			current = i
			break
		}
	}
	next := (current + delta + len(order)) % len(order)
	return m.setFocus(order[next])
}

// setFocus focuses one widget and blurs the others
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.keybinds.ClearMultiKeyState(keybinds.ContextList)

	m.response.CustomerEmail.Blur()
	m.response.Response.Blur()
	m.response.Modification.Blur()
	m.selector.Search.Blur()
	m.form.Title.Blur()
	m.form.Content.Blur()
	m.form.Tags.Blur()
	m.list.Search.Blur()

	switch f {
	case FocusCustomerEmail:
		return m.response.CustomerEmail.Focus()
	case FocusResponse:
		return m.response.Response.Focus()
	case FocusModification:
		return m.response.Modification.Focus()
	case FocusSelectorSearch:
		return m.selector.Search.Focus()
	case FocusTitle:
		return m.form.Title.Focus()
	case FocusContent:
		return m.form.Content.Focus()
	case FocusTags:
		return m.form.Tags.Focus()
	case FocusListSearch:
		return m.list.Search.Focus()
	}
	return nil
}

func (m *Model) openHelp() {
	m.mode = ModeHelp
	m.helpView.SetContent(m.helpContent())
	m.helpView.GotoTop()
}

func (m *Model) quit() tea.Cmd {
	m.Cleanup()
	return tea.Quit
}
