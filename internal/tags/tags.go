// Package tags converts between the comma-separated tag field users type and
// the tag lists the API expects.
package tags

import "strings"

// Separator is used when a tag list is rendered back into an editable field
const Separator = ", "

// Parse splits a comma-separated string into tags. Each tag is trimmed and
// empty entries are dropped. Order and duplicates are preserved; the server
// owns de-duplication.
func Parse(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			result = append(result, tag)
		}
	}
	return result
}

// Join renders tags for editing
func Join(tags []string) string {
	return strings.Join(tags, Separator)
}
