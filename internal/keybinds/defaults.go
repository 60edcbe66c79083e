package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerResponseBindings(r)
	registerTemplatesBindings(r)
	registerSelectBindings(r)
	registerListBindings(r)
	registerTextInputBindings(r)
	registerConfirmBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes.
// Most fields are free-text, so global bindings avoid plain letters.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "ctrl+q", ActionQuit)
	r.Register(ContextGlobal, "f1", ActionOpenHelp)
	r.Register(ContextGlobal, "f2", ActionShowResponseTab)
	r.Register(ContextGlobal, "f3", ActionShowTemplatesTab)
	r.Register(ContextGlobal, "ctrl+t", ActionToggleTab)
	r.Register(ContextGlobal, "tab", ActionFocusNext)
	r.Register(ContextGlobal, "shift+tab", ActionFocusPrev)
}

func registerResponseBindings(r *Registry) {
	r.Register(ContextResponse, "ctrl+g", ActionGenerate)
	r.Register(ContextResponse, "ctrl+r", ActionModify)
	r.Register(ContextResponse, "ctrl+y", ActionCopyResponse)
}

func registerTemplatesBindings(r *Registry) {
	r.Register(ContextTemplates, "ctrl+s", ActionSaveTemplate)
	r.Register(ContextTemplates, "ctrl+n", ActionClearForm)
}

// registerSelectBindings leaves letters free for type-ahead
func registerSelectBindings(r *Registry) {
	r.Register(ContextSelect, "up", ActionNavigateUp)
	r.Register(ContextSelect, "down", ActionNavigateDown)
	r.Register(ContextSelect, "home", ActionGoToTop)
	r.Register(ContextSelect, "end", ActionGoToBottom)
	r.Register(ContextSelect, "enter", ActionTextSubmit)
	r.RegisterMultiple(ContextSelect, []string{"esc", "delete"}, ActionClearFilter)
}

func registerListBindings(r *Registry) {
	r.RegisterMultiple(ContextList, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextList, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextList, "pgup", ActionPageUp)
	r.Register(ContextList, "pgdown", ActionPageDown)
	r.Register(ContextList, "home", ActionGoToTop)
	r.Register(ContextList, "end", ActionGoToBottom)
	r.Register(ContextList, "g", ActionGoToTopPrepare)
	r.Register(ContextList, "gg", ActionGoToTop)
	r.Register(ContextList, "G", ActionGoToBottom)
	r.RegisterMultiple(ContextList, []string{"enter", "e"}, ActionEditTemplate)
	r.RegisterMultiple(ContextList, []string{"d", "delete"}, ActionDeleteTemplate)
	r.Register(ContextList, "r", ActionRefresh)
	r.Register(ContextList, "?", ActionOpenHelp)
	r.Register(ContextList, "q", ActionQuit)
}

func registerTextInputBindings(r *Registry) {
	r.Register(ContextTextInput, "enter", ActionTextSubmit)
}

func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}

func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "q", "f1", "?"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHelp, "pgup", ActionPageUp)
	r.Register(ContextHelp, "pgdown", ActionPageDown)
}
