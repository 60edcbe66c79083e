package tui

// Layout constants
const (
	HeaderHeight = 1 // tab bar
	FooterHeight = 1 // key hints

	// Panel borders and padding
	PanelBorderWidth   = 2
	PanelPaddingHoriz  = 2
	SectionGapLines    = 1
	MinColumnWidth     = 30
	NarrowLayoutWidth  = 90 // below this the two columns stack
	ModalWidthMargin   = 10
	ModalHeightMargin  = 4
	ModalMinWidth      = 40
	ModalMinHeight     = 8
	ConfirmModalHeight = 9

	// Widget heights
	EmailAreaMinHeight    = 4
	ResponseAreaMinHeight = 6
	ContentAreaMinHeight  = 5
	PreviewMaxLines       = 6

	// Table column ratios (title, tags); actions take the rest
	ListTitleRatio = 0.4
	ListTagsRatio  = 0.4

	// Status text is truncated to this many characters
	StatusMaxLength = 100

	// Split view ratio for the help modal
	SplitViewEqual = 0.5
)
