package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/replydesk/internal/config"
	"github.com/studiowebux/replydesk/internal/keybinds"
)

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Inspect or customize key bindings",
}

var keybindsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example keybinds.json to the config directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return err
		}
		if _, err := os.Stat(config.KeybindsFile); err == nil {
			return fmt.Errorf("%s already exists", config.KeybindsFile)
		}
		if err := keybinds.SaveConfig(keybinds.ExampleConfig(), config.KeybindsFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", config.KeybindsFile)
		return nil
	},
}

var keybindsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate keybinds.json and list the resulting bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return err
		}

		registry := keybinds.NewDefaultRegistry()
		if _, err := os.Stat(config.KeybindsFile); err == nil {
			userConfig, err := keybinds.LoadConfig(config.KeybindsFile)
			if err != nil {
				return err
			}
			if err := keybinds.ApplyConfig(registry, userConfig); err != nil {
				return err
			}
		}

		result := keybinds.NewValidator().ValidateRegistry(registry)
		fmt.Println(result.String())

		for _, ctx := range keybinds.AllContexts() {
			bindings := registry.ListBindings(ctx)
			if len(bindings) == 0 {
				continue
			}
			fmt.Printf("\n[%s]\n", ctx)
			for _, b := range bindings {
				fmt.Printf("  %-12s %s\n", b.Key, keybinds.Describe(b.Action))
			}
		}

		if result.HasErrors() {
			return fmt.Errorf("keybinds.json has errors")
		}
		return nil
	},
}

func init() {
	keybindsCmd.AddCommand(keybindsInitCmd, keybindsCheckCmd)
}
