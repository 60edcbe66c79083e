package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/replydesk/internal/types"
)

// Generation panel messages
const (
	msgNeedEmail        = "Please paste the customer email first."
	msgNeedResponse     = "No response to modify. Please generate a response first."
	msgNeedModification = "Please enter a modification request."
	msgGenerating       = "Generating response..."
	msgModifying        = "Modifying response..."
	msgGenerated        = "Response generated successfully!"
	msgModified         = "Response modified successfully!"
	msgUnknownError     = "Unknown error occurred"
	msgLoadFailed       = "Failed to load templates"
)

// Template panel messages
const (
	msgTitleRequired   = "Title is required"
	msgContentRequired = "Content is required"
	msgSaving          = "Saving template..."
	msgSaveFailed      = "Failed to save template"
	msgLoadOneFailed   = "Failed to load template"
	msgDeleteFailed    = "Failed to delete template"
)

// generateResponse drafts a reply for the customer email
func (m *Model) generateResponse() tea.Cmd {
	if m.response.busy {
		return nil
	}

	email := m.response.EmailText()
	if email == "" {
		return m.setStatus(panelGeneration, msgNeedEmail, SeverityError)
	}

	req := types.GenerateRequest{
		CustomerEmail: email,
		TemplateID:    m.selector.SelectedTemplateID(),
	}
	return m.startGeneration(req, msgGenerating)
}

// modifyResponse reworks the current response following the modification request
func (m *Model) modifyResponse() tea.Cmd {
	if m.response.busy {
		return nil
	}

	email := m.response.EmailText()
	previous := m.response.ResponseText()
	modification := m.response.ModificationText()

	switch {
	case email == "":
		return m.setStatus(panelGeneration, msgNeedEmail, SeverityError)
	case previous == "":
		return m.setStatus(panelGeneration, msgNeedResponse, SeverityError)
	case modification == "":
		return m.setStatus(panelGeneration, msgNeedModification, SeverityError)
	}

	req := types.GenerateRequest{
		CustomerEmail:       email,
		PreviousResponse:    previous,
		ModificationRequest: modification,
	}
	return m.startGeneration(req, msgModifying)
}

func (m *Model) startGeneration(req types.GenerateRequest, status string) tea.Cmd {
	m.response.busy = true
	statusCmd := m.setStatus(panelGeneration, status, SeverityLoading)

	api, ctx := m.api, m.ctx
	request := func() tea.Msg {
		resp, err := api.GenerateResponse(ctx, req)
		return generationDoneMsg{modification: req.IsModification(), response: resp, err: err}
	}

	if m.animate {
		return tea.Batch(statusCmd, request, m.spinner.Tick)
	}
	return tea.Batch(statusCmd, request)
}

func (m *Model) handleGenerationDone(msg generationDoneMsg) tea.Cmd {
	m.response.busy = false

	if msg.err != nil {
		m.logger.Warn("generation failed", zap.Bool("modification", msg.modification), zap.Error(msg.err))
		return m.setStatus(panelGeneration, "Error: "+failureText(msg.err, msgUnknownError), SeverityError)
	}

	m.response.Response.SetValue(msg.response)
	if msg.modification {
		m.response.Modification.Reset()
		return m.setStatus(panelGeneration, msgModified, SeveritySuccess)
	}
	return m.setStatus(panelGeneration, msgGenerated, SeveritySuccess)
}

// loadSelectorTemplates refreshes the template picker with its own filters
func (m *Model) loadSelectorTemplates() tea.Cmd {
	m.selector.Templates.Reset()

	api, ctx, filter := m.api, m.ctx, m.selector.Filter()
	return func() tea.Msg {
		templates, err := api.ListTemplates(ctx, filter)
		return selectorTemplatesLoadedMsg{templates: templates, err: err}
	}
}

func (m *Model) handleSelectorTemplatesLoaded(msg selectorTemplatesLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("loading selector templates failed", zap.Error(msg.err))
		return m.setStatus(panelGeneration, msgLoadFailed, SeverityError)
	}

	m.selector.Templates.SetOptions(templateOptions(msg.templates))

	// The previewed template may have been filtered out or deleted
	if _, muted := m.selector.Preview(); !muted && m.selector.Templates.Value() == "" {
		m.selector.SetPreviewPlaceholder()
	}
	return nil
}

// previewTemplate shows the content of the selected template
func (m *Model) previewTemplate() tea.Cmd {
	id := m.selector.SelectedTemplateID()
	if id == nil {
		m.selector.SetPreviewPlaceholder()
		return nil
	}

	api, ctx, want := m.api, m.ctx, *id
	return func() tea.Msg {
		t, err := api.GetTemplate(ctx, want)
		return previewLoadedMsg{id: want, template: t, err: err}
	}
}

func (m *Model) handlePreviewLoaded(msg previewLoadedMsg) {
	// A newer selection owns the preview
	if current := m.selector.SelectedTemplateID(); current == nil || *current != msg.id {
		return
	}
	if msg.err != nil {
		m.logger.Warn("loading preview failed", zap.String("id", msg.id.String()), zap.Error(msg.err))
		m.selector.SetPreviewError()
		return
	}
	m.selector.SetPreview(msg.template.Content)
}

// saveTemplate creates or updates the template in the form
func (m *Model) saveTemplate() tea.Cmd {
	in := m.form.Input()
	if in.Title == "" {
		return m.setStatus(panelTemplates, msgTitleRequired, SeverityError)
	}
	if in.Content == "" {
		return m.setStatus(panelTemplates, msgContentRequired, SeverityError)
	}

	statusCmd := m.setStatus(panelTemplates, msgSaving, SeverityLoading)

	api, ctx, id := m.api, m.ctx, m.form.TemplateID()
	return tea.Batch(statusCmd, func() tea.Msg {
		t, err := api.SaveTemplate(ctx, id, in)
		return templateSavedMsg{template: t, err: err}
	})
}

func (m *Model) handleTemplateSaved(msg templateSavedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("saving template failed", zap.Error(msg.err))
		return m.setStatus(panelTemplates, "Error: "+failureText(msg.err, msgSaveFailed), SeverityError)
	}

	m.logger.Info("template saved", zap.String("id", msg.template.ID.String()))
	statusCmd := m.setStatus(panelTemplates,
		fmt.Sprintf("Template %q saved successfully", msg.template.Title), SeveritySuccess)
	m.clearTemplateForm()

	return tea.Batch(statusCmd, m.loadTemplateList(), m.loadSelectorTemplates())
}

// clearTemplateForm resets the form to create mode
func (m *Model) clearTemplateForm() {
	m.form.Clear()
}

// loadTemplateList refreshes the management table with its own filters
func (m *Model) loadTemplateList() tea.Cmd {
	m.list.Clear()

	api, ctx, filter := m.api, m.ctx, m.list.Filter()
	return func() tea.Msg {
		templates, err := api.ListTemplates(ctx, filter)
		return templateListLoadedMsg{templates: templates, err: err}
	}
}

func (m *Model) handleTemplateListLoaded(msg templateListLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("loading template list failed", zap.Error(msg.err))
		return m.setStatus(panelTemplates, msgLoadFailed, SeverityError)
	}
	m.list.SetTemplates(msg.templates)
	return nil
}

// editTemplate loads a template into the form
func (m *Model) editTemplate(id types.ID) tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		t, err := api.GetTemplate(ctx, id)
		return templateLoadedForEditMsg{template: t, err: err}
	}
}

func (m *Model) handleTemplateLoadedForEdit(msg templateLoadedForEditMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("loading template for edit failed", zap.Error(msg.err))
		return m.setStatus(panelTemplates, "Error: "+msgLoadOneFailed, SeverityError)
	}

	m.form.Fill(msg.template)
	// Activating the tab reloads its data and focuses the title input
	return m.switchTab(TabTemplates)
}

// requestDelete asks for confirmation before deleting
func (m *Model) requestDelete(t types.Template) {
	m.pendingDelete = &t
	m.mode = ModeConfirmDelete
}

// cancelDelete closes the confirmation without a request
func (m *Model) cancelDelete() {
	m.pendingDelete = nil
	m.mode = ModeNormal
}

// confirmDelete deletes the template awaiting confirmation
func (m *Model) confirmDelete() tea.Cmd {
	t := m.pendingDelete
	m.cancelDelete()
	if t == nil {
		return nil
	}

	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		err := api.DeleteTemplate(ctx, t.ID)
		return templateDeletedMsg{title: t.Title, err: err}
	}
}

func (m *Model) handleTemplateDeleted(msg templateDeletedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("deleting template failed", zap.String("title", msg.title), zap.Error(msg.err))
		return m.setStatus(panelTemplates, "Error: "+msgDeleteFailed, SeverityError)
	}

	statusCmd := m.setStatus(panelTemplates,
		fmt.Sprintf("Template %q deleted successfully", msg.title), SeveritySuccess)
	return tea.Batch(statusCmd, m.loadTemplateList(), m.loadSelectorTemplates())
}

// loadTags refreshes the tag dropdowns named by target
func (m *Model) loadTags(target tagTarget) tea.Cmd {
	api, ctx := m.api, m.ctx
	return func() tea.Msg {
		tagList, err := api.ListTags(ctx)
		return tagsLoadedMsg{target: target, tags: tagList, err: err}
	}
}

func (m *Model) handleTagsLoaded(msg tagsLoadedMsg) {
	if msg.err != nil {
		m.logger.Warn("loading tags failed", zap.Error(msg.err))
		return
	}

	options := tagOptions(msg.tags)
	if msg.target == tagTargetBoth || msg.target == tagTargetSelector {
		m.selector.TagFilter.SetOptions(options)
	}
	if msg.target == tagTargetBoth || msg.target == tagTargetList {
		m.list.TagFilter.SetOptions(options)
	}
}

// switchTab activates a tab and reloads what it shows
func (m *Model) switchTab(tab Tab) tea.Cmd {
	m.tab = tab
	focusCmd := m.setFocus(focusOrder[tab][0])
	return tea.Batch(focusCmd, m.loadTabData(tab))
}

// loadTabData issues the two reloads of a tab
func (m *Model) loadTabData(tab Tab) tea.Cmd {
	if tab == TabTemplates {
		return tea.Batch(m.loadTags(tagTargetBoth), m.loadTemplateList())
	}
	return tea.Batch(m.loadTags(tagTargetSelector), m.loadSelectorTemplates())
}

// copyResponse puts the drafted response on the system clipboard
func (m *Model) copyResponse() tea.Cmd {
	text := m.response.Response.Value()
	if text == "" {
		return m.setStatus(panelGeneration, "No response to copy.", SeverityError)
	}
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(text)}
	}
}
