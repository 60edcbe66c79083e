package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/replydesk/internal/tags"
	"github.com/studiowebux/replydesk/internal/types"
)

// ErrNoTemplates is returned when the picker has nothing to offer
var ErrNoTemplates = errors.New("no templates found")

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	tagStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).MarginLeft(2)
)

type item struct {
	template types.Template
}

func (i item) FilterValue() string {
	return i.template.Title + " " + strings.Join(i.template.Tags, " ")
}

func (i item) Title() string {
	return i.template.Title
}

func (i item) Description() string { return "" }

// pickerModel chooses a template; "n" drafts without one
type pickerModel struct {
	list     list.Model
	choice   *types.ID
	none     bool
	quitting bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// Let the list own keys while its filter input is open
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			m.choice = nil
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				id := i.template.ID
				m.choice = &id
			}
			m.quitting = true
			return m, tea.Quit

		case "n", "N":
			m.none = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("↑/↓: navigate • /: filter • enter: select • n: no template • q/ctrl+c: cancel")
	return fmt.Sprintf("%s\n\n%s", m.list.View(), help)
}

func newPickerModel(templates []types.Template) pickerModel {
	items := make([]list.Item, 0, len(templates))
	for _, t := range templates {
		items = append(items, item{template: t})
	}

	const defaultWidth = 80
	const listHeight = 14

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = "Select a template for the reply"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return pickerModel{list: l}
}

// pickTemplate shows an interactive list of the templates matching filter.
// Returns nil when the user chooses to draft without a template.
func (r *Runner) pickTemplate(ctx context.Context, filter types.TemplateFilter) (*types.ID, error) {
	templates, err := r.API.ListTemplates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}

	p := tea.NewProgram(newPickerModel(templates), tea.WithInput(r.In), tea.WithOutput(r.Out))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(pickerModel)
	if result.none {
		return nil, nil
	}
	if result.choice == nil {
		return nil, ErrCancelled
	}
	return result.choice, nil
}

// itemDelegate is a custom list item delegate
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.Title())
	if len(i.template.Tags) > 0 {
		str += " " + tagStyle.Render("("+tags.Join(i.template.Tags)+")")
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}
