/*
Package tui implements the terminal interface of replydesk.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state, message types and the Update loop
  - keys.go: Keyboard input handling and keybind routing
  - render.go: View rendering for both tabs and the modals
  - actions.go: Backend calls and their result handlers

# Tabs

The Response tab holds the customer email, the template picker with its
search and tag filters, the preview, the drafted response and the
modification request. The Templates tab holds the create/edit form and
the management table with its own search and tag filters.

Activating a tab reloads what it shows: the tag list and the picker on
the Response tab, the tag list and the table on the Templates tab.

# State Management

The screen is decomposed into focused state objects:
  - ResponseState: Generation inputs and the busy flag
  - SelectorState: Template picker, filters and preview
  - TemplateFormState: Create/edit form
  - TemplateListState: Management table rows and cursor
  - StatusState: Transient message of one panel
  - SelectState: A dropdown with a placeholder first option

# Threading Model

The TUI runs in Bubble Tea's event loop. Every backend call is a tea.Cmd
that runs in its own goroutine and reports back with a message. Results
for a selection that changed meanwhile are dropped.

# Example Usage

	api := client.New(client.Options{BaseURL: "http://localhost:5000"})
	if err := tui.Run(api, tui.Options{Keybinds: registry}); err != nil {
		log.Fatal(err)
	}
*/
package tui
