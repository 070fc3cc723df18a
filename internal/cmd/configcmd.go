package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/launcher"
	"github.com/kanri-dev/kanri/internal/terminal"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configRecentClear bool

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.File())
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in your editor",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

var configRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show or clear the recent project",
	Args:  cobra.NoArgs,
	RunE:  runConfigRecent,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the configuration to platform defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configEditCmd, configRecentCmd, configResetCmd)

	configRecentCmd.Flags().BoolVar(&configRecentClear, "clear", false, "Forget the recent project")
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	profile, err := cfg.CurrentProfile()
	if err != nil {
		return err
	}
	if profile.Editor == "" {
		return errors.ErrEditorNotConfigured
	}

	return launcher.Launch(launcher.Options{
		Program: profile.Editor,
		Args:    append(append([]string{}, profile.EditorArgs...), config.File()),
		Fork:    profile.EditorForkMode,
	})
}

func runConfigRecent(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Recent.Enabled {
		return errors.ErrRecentDisabled
	}

	if configRecentClear {
		if cfg.Recent.RecentProject == "" {
			return errors.New("nothing to clear")
		}
		cfg.Recent.RecentProject = ""
		if err := cfg.Save(config.File()); err != nil {
			return err
		}
		terminal.PrintDone("Cleared.")
		return nil
	}

	if cfg.Recent.RecentProject == "" {
		return errors.New("no recent project found")
	}
	fmt.Println(cfg.Recent.RecentProject)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	if !terminal.Ask("Reset your current configuration?", false) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := config.Default().Save(config.File()); err != nil {
		return err
	}

	terminal.PrintDone("Configuration has been reset.")
	return nil
}
