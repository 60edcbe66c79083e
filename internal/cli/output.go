package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/studiowebux/replydesk/internal/tags"
	"github.com/studiowebux/replydesk/internal/types"
)

// formatOutput renders v as json or yaml, or returns text for the text format
func formatOutput(v any, text, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "", "text":
		return text, nil

	default:
		return "", fmt.Errorf("unknown output format %q (use text, json or yaml)", format)
	}
}

func formatTemplateTable(templates []types.Template) string {
	if len(templates) == 0 {
		return "No templates found\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTAGS")
	for _, t := range templates {
		tagText := tags.Join(t.Tags)
		if tagText == "" {
			tagText = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Title, tagText)
	}
	w.Flush()
	return sb.String()
}

func formatTemplate(t *types.Template) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s%s%s (id %s)\n", colorBold, t.Title, colorReset, t.ID))
	if len(t.Tags) > 0 {
		sb.WriteString("Tags: " + tags.Join(t.Tags) + "\n")
	}
	sb.WriteString("\n" + t.Content + "\n")
	return sb.String()
}

// ANSI codes
const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)
