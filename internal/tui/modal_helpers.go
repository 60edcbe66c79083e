package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ModalConfig defines a centered modal with one or two panes
type ModalConfig struct {
	Width  int
	Height int

	// IsSplitView shows the right pane next to the left one
	IsSplitView bool

	LeftTitle       string
	LeftContent     string
	LeftBorderColor lipgloss.AdaptiveColor

	RightTitle       string
	RightContent     string
	RightBorderColor lipgloss.AdaptiveColor

	Footer string

	// LeftWidthRatio is the left pane's share in split view (default 0.5)
	LeftWidthRatio float64
}

// renderModal renders a modal centered in the terminal
func renderModal(cfg ModalConfig, totalWidth, totalHeight int) string {
	paneHeight := max(1, cfg.Height-4) // borders and footer

	var mainView string
	if cfg.IsSplitView {
		ratio := cfg.LeftWidthRatio
		if ratio <= 0 || ratio >= 1 {
			ratio = SplitViewEqual
		}

		leftWidth := int(float64(cfg.Width-3) * ratio)
		rightWidth := cfg.Width - leftWidth - 3

		left := paneStyle(cfg.LeftBorderColor, leftWidth, paneHeight).
			Render(styleTitleFocused.Render(cfg.LeftTitle) + "\n" + cfg.LeftContent)
		right := paneStyle(cfg.RightBorderColor, rightWidth, paneHeight).
			Render(styleTitleFocused.Render(cfg.RightTitle) + "\n" + cfg.RightContent)

		mainView = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		mainView = paneStyle(cfg.LeftBorderColor, cfg.Width, paneHeight).
			Render(styleTitleFocused.Render(cfg.LeftTitle) + "\n" + cfg.LeftContent)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		styleSubtle.Render(cfg.Footer),
	)

	return lipgloss.Place(
		totalWidth,
		totalHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

func paneStyle(border lipgloss.AdaptiveColor, width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Height(height).
		Padding(0, 1)
}
