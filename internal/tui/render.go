package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/replydesk/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorGreen)

	styleTitleUnfocused = lipgloss.NewStyle().
				Foreground(colorGray)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorCyan)

	styleChip = lipgloss.NewStyle().
			Foreground(colorCyan)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the active tab between the tab bar and the key hints
func (m *Model) renderMain() string {
	bodyHeight := max(1, m.height-HeaderHeight-FooterHeight)

	var body string
	if m.tab == TabTemplates {
		body = m.renderTemplatesTab(m.width, bodyHeight)
	} else {
		body = m.renderResponseTab(m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabBar(),
		body,
		m.renderFooter(),
	)
}

func (m *Model) renderTabBar() string {
	var tabs []string
	for _, t := range []Tab{TabResponse, TabTemplates} {
		label := " " + t.String() + " "
		if t == m.tab {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleSubtle.Render(label))
		}
	}
	bar := styleTitle.Render("replydesk") + "  " + strings.Join(tabs, "|")
	if m.baseURL != "" {
		bar += "  " + styleSubtle.Render(m.baseURL)
	}
	return bar
}

// columns splits the body into two side-by-side panels, or stacks them on
// narrow terminals.
func (m *Model) columns(left, right string, width int) string {
	if width < NarrowLayoutWidth {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) columnWidth() int {
	if m.width < NarrowLayoutWidth {
		return max(MinColumnWidth, m.width-PanelBorderWidth)
	}
	return max(MinColumnWidth, m.width/2-PanelBorderWidth)
}

func panelBox(content string, width int, focused bool) string {
	border := colorGray
	if focused {
		border = colorGreen
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Padding(0, 1).
		Render(content)
}

func (m *Model) label(text string, f Focus) string {
	if m.focus == f {
		return styleTitleFocused.Render("▸ " + text)
	}
	return styleTitleUnfocused.Render("  " + text)
}

func (m *Model) renderResponseTab(width, height int) string {
	colWidth := m.columnWidth()

	var left strings.Builder
	left.WriteString(m.label("Customer Email", FocusCustomerEmail) + "\n")
	left.WriteString(m.response.CustomerEmail.View() + "\n\n")
	left.WriteString(styleTitle.Render("Template") + "\n")
	left.WriteString(m.label("Search", FocusSelectorSearch) + " " + m.selector.Search.View() + "\n")
	left.WriteString(m.renderDropdown("Tag", m.selector.TagFilter, FocusSelectorTag) + "\n")
	left.WriteString(m.renderDropdown("Template", m.selector.Templates, FocusSelector) + "\n")
	left.WriteString(m.renderPreview(colWidth - PanelPaddingHoriz))

	var right strings.Builder
	right.WriteString(m.label("AI Response", FocusResponse) + "\n")
	right.WriteString(m.response.Response.View() + "\n\n")
	right.WriteString(m.label("Modification request", FocusModification) + "\n")
	right.WriteString(m.response.Modification.View() + "\n\n")
	right.WriteString(m.renderGenerationButtons() + "\n")
	right.WriteString(m.renderStatus(m.genStatus))

	leftFocused := m.focus != FocusResponse && m.focus != FocusModification
	return m.columns(
		panelBox(left.String(), colWidth, leftFocused),
		panelBox(right.String(), colWidth, !leftFocused),
		width,
	)
}

func (m *Model) renderGenerationButtons() string {
	ctx := keybinds.ContextResponse
	buttons := fmt.Sprintf("[%s] Generate  [%s] Modify  [%s] Copy",
		m.keybinds.GetBindingString(ctx, keybinds.ActionGenerate),
		m.keybinds.GetBindingString(ctx, keybinds.ActionModify),
		m.keybinds.GetBindingString(ctx, keybinds.ActionCopyResponse))
	if m.response.busy {
		return m.spinner.View() + " " + styleSubtle.Render(buttons)
	}
	return buttons
}

func (m *Model) renderPreview(width int) string {
	text, muted := m.selector.Preview()
	lines := strings.Split(text, "\n")
	if len(lines) > PreviewMaxLines {
		lines = append(lines[:PreviewMaxLines], "...")
	}
	text = strings.Join(lines, "\n")

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorGray).
		Width(max(10, width-PanelBorderWidth))
	if muted {
		style = style.Foreground(colorGray).Italic(true)
	}
	return style.Render(text)
}

func (m *Model) renderDropdown(name string, s *SelectState, f Focus) string {
	value := "‹ " + s.Selected().Label + " ›"
	if m.focus == f {
		value = styleSelected.Render(value)
		if q := s.Query(); q != "" {
			value += " " + styleSubtle.Render("find: "+q)
		}
	}
	return m.label(name, f) + " " + value + styleSubtle.Render(fmt.Sprintf(" (%d/%d)", s.Index()+1, s.Len()))
}

func (m *Model) renderTemplatesTab(width, height int) string {
	colWidth := m.columnWidth()

	var left strings.Builder
	left.WriteString(styleTitle.Render(m.form.Heading()) + "\n\n")
	left.WriteString(m.label("Title", FocusTitle) + "\n" + m.form.Title.View() + "\n\n")
	left.WriteString(m.label("Content", FocusContent) + "\n" + m.form.Content.View() + "\n\n")
	left.WriteString(m.label("Tags", FocusTags) + "\n" + m.form.Tags.View() + "\n\n")

	ctx := keybinds.ContextTemplates
	left.WriteString(fmt.Sprintf("[%s] Save  [%s] Clear\n",
		m.keybinds.GetBindingString(ctx, keybinds.ActionSaveTemplate),
		m.keybinds.GetBindingString(ctx, keybinds.ActionClearForm)))
	left.WriteString(m.renderStatus(m.tplStatus))

	var right strings.Builder
	right.WriteString(styleTitle.Render("Templates") + "\n")
	right.WriteString(m.label("Search", FocusListSearch) + " " + m.list.Search.View() + "\n")
	right.WriteString(m.renderDropdown("Tag", m.list.TagFilter, FocusListTag) + "\n\n")
	right.WriteString(m.renderTable(colWidth - PanelPaddingHoriz))

	listFocused := m.focus == FocusList || m.focus == FocusListSearch || m.focus == FocusListTag
	return m.columns(
		panelBox(left.String(), colWidth, !listFocused),
		panelBox(right.String(), colWidth, listFocused),
		width,
	)
}

// listHeight is the number of table rows that fit on screen
func (m *Model) listHeight() int {
	// tab bar, footer, borders, title, search, tag, gap, table header
	return max(1, m.height-HeaderHeight-FooterHeight-PanelBorderWidth-6)
}

func (m *Model) renderTable(width int) string {
	titleWidth := int(float64(width) * ListTitleRatio)
	tagsWidth := int(float64(width) * ListTagsRatio)
	actionsWidth := max(1, width-titleWidth-tagsWidth)

	cell := func(text string, w int) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).Inline(true).Render(text)
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(cell("Title", titleWidth)+cell("Tags", tagsWidth)+cell("Actions", actionsWidth)) + "\n")

	rows := m.list.Rows()
	if len(rows) == 1 && rows[0].Span == listColumns {
		placeholder := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Padding(1, 0).
			Foreground(colorGray).
			Render(rows[0].Cells[0])
		b.WriteString(placeholder)
		return b.String()
	}

	start, end := m.list.VisibleRange(m.listHeight())
	cursor := m.list.Cursor()
	for i := start; i < end && i < len(rows); i++ {
		row := rows[i]
		tagCell := row.Cells[1]
		if tagCell != listNoTags {
			tagCell = styleChip.Render(tagCell)
		} else {
			tagCell = styleSubtle.Render(tagCell)
		}
		line := cell(row.Cells[0], titleWidth) + cell(tagCell, tagsWidth) + cell(row.Cells[2], actionsWidth)
		if i == cursor && m.focus == FocusList {
			line = styleSelected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStatus renders a panel's message, truncated for display
func (m *Model) renderStatus(s *StatusState) string {
	text, severity := s.Get()
	if len(text) > StatusMaxLength {
		text = text[:StatusMaxLength-3] + "..."
	}

	switch severity {
	case SeverityLoading:
		return styleWarning.Render(text)
	case SeveritySuccess:
		return styleSuccess.Render(text)
	case SeverityError:
		return styleError.Render(text)
	default:
		return ""
	}
}

func (m *Model) renderFooter() string {
	g := keybinds.ContextGlobal
	hints := fmt.Sprintf("%s: next field | %s: switch tab | %s: help | %s: quit",
		m.keybinds.GetBindingString(g, keybinds.ActionFocusNext),
		m.keybinds.GetBindingString(g, keybinds.ActionToggleTab),
		m.keybinds.GetBindingString(g, keybinds.ActionOpenHelp),
		m.keybinds.GetBindingString(g, keybinds.ActionQuit))
	if m.focus == FocusList {
		l := keybinds.ContextList
		hints = fmt.Sprintf("%s: edit | %s: delete | ",
			m.keybinds.GetBindingString(l, keybinds.ActionEditTemplate),
			m.keybinds.GetBindingString(l, keybinds.ActionDeleteTemplate)) + hints
	}
	return styleSubtle.Render(hints)
}

// renderDeleteModal renders the delete confirmation
func (m *Model) renderDeleteModal() string {
	title := ""
	if m.pendingDelete != nil {
		title = m.pendingDelete.Title
	}

	width := min(max(ModalMinWidth, len(title)+50), m.width-ModalWidthMargin)
	return renderModal(ModalConfig{
		Width:           width,
		Height:          ConfirmModalHeight,
		LeftTitle:       "Delete Template",
		LeftContent:     "\n" + deleteConfirmText(title),
		LeftBorderColor: colorRed,
		Footer:          "y: delete | n/esc: cancel",
	}, m.width, m.height)
}

func deleteConfirmText(title string) string {
	return fmt.Sprintf("Are you sure you want to delete the template %q?", title)
}

// renderHelp renders the key reference
func (m *Model) renderHelp() string {
	width := max(ModalMinWidth, m.width-ModalWidthMargin)
	height := max(ModalMinHeight, m.height-ModalHeightMargin)

	m.helpView.Width = width - PanelBorderWidth - PanelPaddingHoriz
	m.helpView.Height = max(1, height-6)

	return renderModal(ModalConfig{
		Width:           width,
		Height:          height,
		LeftTitle:       "Keys",
		LeftContent:     m.helpView.View(),
		LeftBorderColor: colorCyan,
		Footer:          "esc/q: close | up/down: scroll",
	}, m.width, m.height)
}

var helpSections = []struct {
	title   string
	context keybinds.Context
}{
	{"Everywhere", keybinds.ContextGlobal},
	{"Response tab", keybinds.ContextResponse},
	{"Templates tab", keybinds.ContextTemplates},
	{"Template table", keybinds.ContextList},
	{"Dropdowns (type to jump)", keybinds.ContextSelect},
	{"Search inputs", keybinds.ContextTextInput},
	{"Confirmation", keybinds.ContextConfirm},
}

// helpContent lists the live bindings, including user overrides
func (m *Model) helpContent() string {
	var b strings.Builder
	for _, section := range helpSections {
		bindings := m.keybinds.ListBindings(section.context)
		if len(bindings) == 0 {
			continue
		}
		b.WriteString(styleTitle.Render(section.title) + "\n")

		// Group keys per action, keeping action order
		var order []keybinds.Action
		keys := make(map[keybinds.Action][]string)
		for _, binding := range bindings {
			if _, seen := keys[binding.Action]; !seen {
				order = append(order, binding.Action)
			}
			keys[binding.Action] = append(keys[binding.Action], binding.Key)
		}
		for _, action := range order {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", strings.Join(keys[action], ", "), keybinds.Describe(action)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// resize fits the widgets to the terminal
func (m *Model) resize() {
	inner := max(10, m.columnWidth()-PanelPaddingHoriz)
	body := max(1, m.height-HeaderHeight-FooterHeight-PanelBorderWidth)

	m.response.CustomerEmail.SetWidth(inner)
	m.response.CustomerEmail.SetHeight(max(EmailAreaMinHeight, body/3))
	m.response.Response.SetWidth(inner)
	m.response.Response.SetHeight(max(ResponseAreaMinHeight, body/2))
	m.response.Modification.Width = inner - 2

	m.selector.Search.Width = inner - 10
	m.list.Search.Width = inner - 10

	m.form.Title.Width = inner
	m.form.Tags.Width = inner
	m.form.Content.SetWidth(inner)
	m.form.Content.SetHeight(max(ContentAreaMinHeight, body/3))
}
