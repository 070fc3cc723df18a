package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/terminal"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage editor and shell profiles",
	Long:  `Commands for creating, switching, and inspecting profiles.`,
}

var profilesNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a profile interactively",
	Args:  cobra.NoArgs,
	RunE:  runProfilesNew,
}

var profilesSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Switch the current profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesSet,
}

var profilesInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a profile's editor and shell",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesInfo,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfilesList,
}

var profilesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesRemove,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesNewCmd, profilesSetCmd, profilesInfoCmd,
		profilesListCmd, profilesRemoveCmd)
}

func runProfilesNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	name := terminal.AskString("Name for the new profile?", true)
	if name == "" {
		return errors.New("profile name is empty")
	}
	if _, exists := cfg.Profiles[name]; exists {
		return errors.New("profile with the same name already exists")
	}

	editor := terminal.AskString("Which editor do you want to assign (program name)?", true)
	if editor == "" {
		return errors.New("editor name is empty")
	}

	var (
		editorArgs []string
		editorFork bool
	)
	if config.IsGUIEditor(strings.TrimSuffix(editor, ".cmd")) {
		editorArgs = []string{"."}
		editorFork = true
	} else {
		editorFork = terminal.Ask("Do you want to run your editor forked?", false)
	}

	shell := terminal.AskString("Which shell do you want to assign (program name)?", true)
	if shell == "" {
		return errors.New("shell name is empty")
	}

	var shellArgs []string
	switch shell {
	case "powershell", "powershell.exe", "pwsh", "pwsh.exe":
		shellArgs = []string{"-NoLogo", "-Command"}
	case "cmd", "cmd.exe":
		shellArgs = []string{"/C"}
	default:
		shellArgs = []string{"-c"}
	}

	cfg.Profiles[name] = config.Profile{
		Editor:         editor,
		EditorArgs:     editorArgs,
		EditorForkMode: editorFork,
		Shell:          shell,
		ShellArgs:      shellArgs,
	}
	if err := cfg.Save(config.File()); err != nil {
		return err
	}

	terminal.PrintDone("Your profile has been saved. You can edit it in your configuration file.")
	return nil
}

func runProfilesSet(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, exists := cfg.Profiles[name]; !exists {
		return errors.ErrProfileNotFound
	}

	cfg.Options.CurrentProfile = name
	if err := cfg.Save(config.File()); err != nil {
		return err
	}

	terminal.PrintDone(fmt.Sprintf("Switched current profile to '%s'.", name))
	return nil
}

func runProfilesInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	profile, err := cfg.Profile(args[0])
	if err != nil {
		return err
	}

	terminal.PrintTitle("Profile")
	fmt.Printf(" %s: %s\n", terminal.Bold("Editor"), profile.Editor)
	fmt.Printf(" %s: %s\n", terminal.Bold("Shell"), profile.Shell)
	return nil
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	terminal.PrintTitle("Your profiles")
	for _, name := range cfg.ProfileNames() {
		if name == cfg.Options.CurrentProfile {
			fmt.Printf(" %s %s\n", name, terminal.Dim("(current)"))
		} else {
			fmt.Printf(" %s\n", name)
		}
	}
	return nil
}

func runProfilesRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, exists := cfg.Profiles[name]; !exists {
		return errors.ErrProfileNotFound
	}
	if name == cfg.Options.CurrentProfile {
		return errors.New("cannot remove the current profile, switch to another one first")
	}

	if !terminal.Ask("Do you want to delete this profile?", false) {
		fmt.Println("Aborted.")
		return nil
	}

	delete(cfg.Profiles, name)
	if err := cfg.Save(config.File()); err != nil {
		return err
	}

	terminal.PrintDone("Profile has been removed.")
	return nil
}
