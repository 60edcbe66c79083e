// Package cli implements the one-shot commands: drafting replies and
// managing templates without the terminal UI.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/studiowebux/replydesk/internal/client"
	"github.com/studiowebux/replydesk/internal/tags"
	"github.com/studiowebux/replydesk/internal/types"
)

// API is the backend surface the commands use
type API interface {
	GenerateResponse(ctx context.Context, req types.GenerateRequest) (string, error)
	ListTemplates(ctx context.Context, filter types.TemplateFilter) ([]types.Template, error)
	GetTemplate(ctx context.Context, id types.ID) (*types.Template, error)
	SaveTemplate(ctx context.Context, id types.ID, in types.TemplateInput) (*types.Template, error)
	DeleteTemplate(ctx context.Context, id types.ID) error
	ListTags(ctx context.Context) ([]types.Tag, error)
}

// Validation errors, worded like the terminal UI
var (
	ErrEmailRequired        = errors.New("please paste the customer email first")
	ErrResponseRequired     = errors.New("no response to modify, generate a response first")
	ErrModificationRequired = errors.New("please enter a modification request")
	ErrTitleRequired        = errors.New("title is required")
	ErrContentRequired      = errors.New("content is required")
	ErrCancelled            = errors.New("cancelled")
)

// Runner executes commands against a backend and writes results to Out
type Runner struct {
	API    API
	Out    io.Writer
	In     io.Reader // confirmation answers and piped input
	Format string    // text, json or yaml
}

// NewRunner creates a runner on stdin/stdout
func NewRunner(api API, format string) *Runner {
	return &Runner{API: api, Out: os.Stdout, In: os.Stdin, Format: format}
}

// GenerateOptions are the inputs of a first draft
type GenerateOptions struct {
	Email      string
	TemplateID string // empty drafts without a template
	Pick       bool   // choose the template interactively
	Search     string // narrows the interactive picker
	Tag        string
}

// Generate drafts a reply and prints it
func (r *Runner) Generate(ctx context.Context, opts GenerateOptions) error {
	email := strings.TrimSpace(opts.Email)
	if email == "" {
		return ErrEmailRequired
	}

	req := types.GenerateRequest{CustomerEmail: email}
	switch {
	case opts.Pick:
		id, err := r.pickTemplate(ctx, types.TemplateFilter{Search: opts.Search, Tag: opts.Tag})
		if err != nil {
			return err
		}
		req.TemplateID = id
	case strings.TrimSpace(opts.TemplateID) != "":
		id := types.ID(strings.TrimSpace(opts.TemplateID))
		req.TemplateID = &id
	}

	resp, err := r.API.GenerateResponse(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate response: %w", err)
	}
	return r.write(types.GenerateResponse{Response: resp}, resp)
}

// ModifyOptions are the inputs of a revision
type ModifyOptions struct {
	Email        string
	Previous     string
	Modification string
}

// Modify reworks a previous draft and prints the result
func (r *Runner) Modify(ctx context.Context, opts ModifyOptions) error {
	req := types.GenerateRequest{
		CustomerEmail:       strings.TrimSpace(opts.Email),
		PreviousResponse:    strings.TrimSpace(opts.Previous),
		ModificationRequest: strings.TrimSpace(opts.Modification),
	}
	switch {
	case req.CustomerEmail == "":
		return ErrEmailRequired
	case req.PreviousResponse == "":
		return ErrResponseRequired
	case req.ModificationRequest == "":
		return ErrModificationRequired
	}

	resp, err := r.API.GenerateResponse(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to modify response: %w", err)
	}
	return r.write(types.GenerateResponse{Response: resp}, resp)
}

// ListTemplates prints the templates matching filter
func (r *Runner) ListTemplates(ctx context.Context, filter types.TemplateFilter) error {
	templates, err := r.API.ListTemplates(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	return r.write(templates, formatTemplateTable(templates))
}

// ShowTemplate prints one template
func (r *Runner) ShowTemplate(ctx context.Context, id string) error {
	t, err := r.API.GetTemplate(ctx, types.ID(strings.TrimSpace(id)))
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	return r.write(t, formatTemplate(t))
}

// SaveOptions are the fields of a create or update
type SaveOptions struct {
	ID      string // empty creates
	Title   string
	Content string
	Tags    string // comma-separated
}

// SaveTemplate creates or updates a template and prints it
func (r *Runner) SaveTemplate(ctx context.Context, opts SaveOptions) error {
	in := types.TemplateInput{
		Title:   strings.TrimSpace(opts.Title),
		Content: strings.TrimSpace(opts.Content),
		Tags:    tags.Parse(opts.Tags),
	}
	if in.Title == "" {
		return ErrTitleRequired
	}
	if in.Content == "" {
		return ErrContentRequired
	}

	t, err := r.API.SaveTemplate(ctx, types.ID(strings.TrimSpace(opts.ID)), in)
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return r.write(t, fmt.Sprintf("Template %q saved successfully (id %s)\n", t.Title, t.ID))
}

// DeleteTemplate deletes a template after confirmation unless force is set
func (r *Runner) DeleteTemplate(ctx context.Context, id string, force bool) error {
	tid := types.ID(strings.TrimSpace(id))
	t, err := r.API.GetTemplate(ctx, tid)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	if !force {
		ok, err := r.confirm(fmt.Sprintf("Are you sure you want to delete the template %q? [y/N]: ", t.Title))
		if err != nil {
			return err
		}
		if !ok {
			return ErrCancelled
		}
	}

	if err := r.API.DeleteTemplate(ctx, tid); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return r.write(types.DeleteResponse{Message: "Template deleted successfully"},
		fmt.Sprintf("Template %q deleted successfully\n", t.Title))
}

// ListTags prints every tag name
func (r *Runner) ListTags(ctx context.Context) error {
	tagList, err := r.API.ListTags(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	var sb strings.Builder
	for _, t := range tagList {
		sb.WriteString(t.Name + "\n")
	}
	return r.write(tagList, sb.String())
}

func (r *Runner) confirm(prompt string) (bool, error) {
	fmt.Fprint(r.Out, prompt)
	answer, err := bufio.NewReader(r.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func (r *Runner) write(v any, text string) error {
	out, err := formatOutput(v, text, r.Format)
	if err != nil {
		return err
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(r.Out, out)
	return err
}

// ReadInput resolves a text argument: "-" reads stdin, "@path" reads a
// file, anything else is used as is.
func ReadInput(arg string, stdin io.Reader) (string, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(arg, "@"):
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", arg[1:], err)
		}
		return string(data), nil
	default:
		return arg, nil
	}
}

// IsInteractive checks if stdin is a terminal (not piped)
func IsInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// Describe turns a command error into the line printed before exiting.
// Backend errors show their message; everything else keeps its chain.
func Describe(err error) string {
	if errors.Is(err, client.ErrUnauthorized) {
		return "not logged in or session expired: set auth.username and auth.password"
	}
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		return client.ErrorMessage(err, apiErr.Error())
	}
	return err.Error()
}
