package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal    Context = "global"     // Available everywhere
	ContextResponse  Context = "response"   // Response tab
	ContextTemplates Context = "templates"  // Templates tab
	ContextSelect    Context = "select"     // A focused dropdown
	ContextList      Context = "list"       // The template management table
	ContextTextInput Context = "text_input" // Single-line inputs (search fields)
	ContextConfirm   Context = "confirm"    // Confirmation dialogs
	ContextHelp      Context = "help"       // Help viewer
)

// AllContexts lists the built-in contexts, global first
func AllContexts() []Context {
	return []Context{
		ContextGlobal,
		ContextResponse,
		ContextTemplates,
		ContextSelect,
		ContextList,
		ContextTextInput,
		ContextConfirm,
		ContextHelp,
	}
}

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionQuitForce Action = "quit_force"
	ActionOpenHelp  Action = "open_help"

	// Tabs and focus
	ActionToggleTab        Action = "toggle_tab"
	ActionShowResponseTab  Action = "show_response_tab"
	ActionShowTemplatesTab Action = "show_templates_tab"
	ActionFocusNext        Action = "focus_next"
	ActionFocusPrev        Action = "focus_prev"

	// Navigation
	ActionNavigateUp     Action = "navigate_up"
	ActionNavigateDown   Action = "navigate_down"
	ActionGoToTop        Action = "go_to_top"
	ActionGoToBottom     Action = "go_to_bottom"
	ActionGoToTopPrepare Action = "go_to_top_prepare" // First 'g' in 'gg' sequence
	ActionPageUp         Action = "page_up"
	ActionPageDown       Action = "page_down"

	// Response tab
	ActionGenerate     Action = "generate"
	ActionModify       Action = "modify"
	ActionCopyResponse Action = "copy_response"

	// Templates tab
	ActionSaveTemplate   Action = "save_template"
	ActionClearForm      Action = "clear_form"
	ActionEditTemplate   Action = "edit_template"
	ActionDeleteTemplate Action = "delete_template"
	ActionRefresh        Action = "refresh"

	// Inputs and dropdowns
	ActionTextSubmit  Action = "text_submit"
	ActionClearFilter Action = "clear_filter"

	// Modals
	ActionCloseModal Action = "close_modal"
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"

	ActionNoOp Action = "noop"
)

// knownActions lists every action a user config may reference
var knownActions = map[Action]string{
	ActionQuit:             "Quit",
	ActionQuitForce:        "Force quit",
	ActionOpenHelp:         "Show help",
	ActionToggleTab:        "Switch tab",
	ActionShowResponseTab:  "Response tab",
	ActionShowTemplatesTab: "Templates tab",
	ActionFocusNext:        "Next field",
	ActionFocusPrev:        "Previous field",
	ActionNavigateUp:       "Up",
	ActionNavigateDown:     "Down",
	ActionGoToTop:          "Top",
	ActionGoToBottom:       "Bottom",
	ActionGoToTopPrepare:   "Top (first key)",
	ActionPageUp:           "Page up",
	ActionPageDown:         "Page down",
	ActionGenerate:         "Generate response",
	ActionModify:           "Modify response",
	ActionCopyResponse:     "Copy response",
	ActionSaveTemplate:     "Save template",
	ActionClearForm:        "Clear form",
	ActionEditTemplate:     "Edit template",
	ActionDeleteTemplate:   "Delete template",
	ActionRefresh:          "Reload list",
	ActionTextSubmit:       "Search",
	ActionClearFilter:      "Clear selection",
	ActionCloseModal:       "Close",
	ActionConfirm:          "Yes",
	ActionCancel:           "No",
	ActionNoOp:             "Nothing",
}

// Describe returns a short human label for an action
func Describe(action Action) string {
	if label, ok := knownActions[action]; ok {
		return label
	}
	return string(action)
}

// IsKnown reports whether action is defined
func IsKnown(action Action) bool {
	_, ok := knownActions[action]
	return ok
}
