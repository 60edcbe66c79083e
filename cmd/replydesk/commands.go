package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/replydesk/internal/cli"
	"github.com/studiowebux/replydesk/internal/types"
)

// Flags for generate/modify
var (
	flagGenEmail     string
	flagModEmail     string
	flagTemplateID   string
	flagPick         bool
	flagPrevious     string
	flagModification string
)

// Flags for templates
var (
	flagSearch  string
	flagTag     string
	flagTitle   string
	flagContent string
	flagTags    string
	flagID      string
	flagYes     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft a reply to a customer email",
	Long: `Draft a reply to a customer email, optionally starting from a template.

--email takes the text itself, @file to read a file, or - to read stdin.
--pick opens an interactive template list (filtered by --search/--tag).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := cli.ReadInput(flagGenEmail, os.Stdin)
		if err != nil {
			return err
		}

		runner, done, err := newRunner(cmd)
		if err != nil {
			return err
		}
		defer done()

		return runner.Generate(cmd.Context(), cli.GenerateOptions{
			Email:      email,
			TemplateID: flagTemplateID,
			Pick:       flagPick && cli.IsInteractive(),
			Search:     flagSearch,
			Tag:        flagTag,
		})
	},
}

var modifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "Rework a drafted reply",
	Long: `Rework a previous draft following a modification request.

--email and --previous accept text, @file, or - for stdin (one of them at most).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := cli.ReadInput(flagModEmail, os.Stdin)
		if err != nil {
			return err
		}
		previous, err := cli.ReadInput(flagPrevious, os.Stdin)
		if err != nil {
			return err
		}

		runner, done, err := newRunner(cmd)
		if err != nil {
			return err
		}
		defer done()

		return runner.Modify(cmd.Context(), cli.ModifyOptions{
			Email:        email,
			Previous:     previous,
			Modification: flagModification,
		})
	},
}

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"tpl"},
	Short:   "Manage reply templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, done, err := newRunner(cmd)
		if err != nil {
			return err
		}
		defer done()
		return runner.ListTemplates(cmd.Context(), types.TemplateFilter{Search: flagSearch, Tag: flagTag})
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, done, err := newRunner(cmd)
		if err != nil {
			return err
		}
		defer done()
		return runner.ShowTemplate(cmd.Context(), args[0])
	},
}

var templatesSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a template, or update it when --id is given",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := cli.ReadInput(flagContent, os.Stdin)
		if err != nil {
			return err
		}

		runner, done, err := newRunner(cmd)
		if err != nil {
			return err
		}
		defer done()
		return runner.SaveTemplate(cmd.Context(), cli.SaveOptions{
			ID:      flagID,
			Title:   flagTitle,
			Content: content,
			Tags:    flagTags,
		})
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, done, err := newRunner(cmd)
		if err != nil {
			return err
		}
		defer done()
		return runner.DeleteTemplate(cmd.Context(), args[0], flagYes || !cli.IsInteractive())
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, done, err := newRunner(cmd)
		if err != nil {
			return err
		}
		defer done()
		return runner.ListTags(cmd.Context())
	},
}

func init() {
	generateCmd.Flags().StringVarP(&flagGenEmail, "email", "e", "-", "Customer email (text, @file or - for stdin)")
	generateCmd.Flags().StringVarP(&flagTemplateID, "template", "t", "", "Template id to start from")
	generateCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the template interactively")
	generateCmd.Flags().StringVar(&flagSearch, "search", "", "Search filter for --pick")
	generateCmd.Flags().StringVar(&flagTag, "tag", "", "Tag filter for --pick")

	modifyCmd.Flags().StringVarP(&flagModEmail, "email", "e", "", "Customer email (text, @file or -)")
	modifyCmd.Flags().StringVarP(&flagPrevious, "previous", "p", "", "Previous response (text, @file or -)")
	modifyCmd.Flags().StringVarP(&flagModification, "modification", "m", "", "What to change")

	templatesListCmd.Flags().StringVar(&flagSearch, "search", "", "Search in title and content")
	templatesListCmd.Flags().StringVar(&flagTag, "tag", "", "Only templates with this tag")

	templatesSaveCmd.Flags().StringVar(&flagID, "id", "", "Template id to update (empty creates)")
	templatesSaveCmd.Flags().StringVar(&flagTitle, "title", "", "Template title")
	templatesSaveCmd.Flags().StringVar(&flagContent, "content", "", "Template content (text, @file or -)")
	templatesSaveCmd.Flags().StringVar(&flagTags, "tags", "", "Comma-separated tags")

	templatesDeleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation")

	templatesCmd.AddCommand(templatesListCmd, templatesShowCmd, templatesSaveCmd, templatesDeleteCmd)
}

// newRunner connects to the backend for a one-shot command
func newRunner(cmd *cobra.Command) (*cli.Runner, func(), error) {
	s, err := connect(cmd)
	if err != nil {
		return nil, nil, err
	}
	return cli.NewRunner(s.client, flagOutput), s.close, nil
}
