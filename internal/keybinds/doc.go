/*
Package keybinds provides customizable keyboard binding management.

Bindings live in contexts. A key is resolved against the focused widget's
context first (select, list, text_input), then the active tab's context
(response, templates), then global. Modals (confirm, help) resolve only in
their own context plus global.

Users override defaults in ~/.replydesk/keybinds.json. Each section maps a
key to an action; the action "noop" removes a default binding:

	{
	  "version": "1.0",
	  "response": { "ctrl+g": "generate" },
	  "list": { "x": "delete_template", "d": "noop" }
	}

Unknown actions, empty keys and rebinding ctrl+c are rejected when the file
is loaded.

Multi-key sequences such as "gg" are supported through MatchMultiKey.
*/
package keybinds
