package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/launcher"
	"github.com/kanri-dev/kanri/internal/template"
	"github.com/kanri-dev/kanri/internal/terminal"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage project templates",
	Long:  `Commands for creating, inspecting, and removing project templates.`,
}

var (
	templatesListPure bool
	templatesGetPure  bool
)

var templatesNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a template by editing its command list",
	Long: `Create a template. Your editor opens on a temporary file; every
non-comment line you save becomes one template command, in order.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplatesNew,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

var templatesGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show the commands of a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesGet,
}

var templatesEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the templates file in your editor",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesEdit,
}

var templatesPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the templates file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.TemplatesFile())
		return nil
	},
}

var templatesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesRemove,
}

var templatesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesClear,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesNewCmd, templatesListCmd, templatesGetCmd,
		templatesEditCmd, templatesPathCmd, templatesRemoveCmd, templatesClearCmd)

	templatesListCmd.Flags().BoolVar(&templatesListPure, "pure", false, "Print bare names only, for scripting")
	templatesGetCmd.Flags().BoolVar(&templatesGetPure, "pure", false, "Print bare commands only, for scripting")
}

func runTemplatesNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := template.Load(config.TemplatesFile())
	if err != nil {
		return err
	}
	if _, exists := store.Get(name); exists {
		return errors.ErrTemplateExists
	}

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

	file, err := os.CreateTemp("", "kanri-template-*.txt")
	if err != nil {
		return err
	}
	defer os.Remove(file.Name())

	header := "# Write your commands here. Each non-comment line becomes one template command.\n"
	if _, err := file.WriteString(header); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	fmt.Println("The editor will launch with an opened file.")
	err = launcher.Launch(launcher.Options{
		Program: profile.Editor,
		Args:    []string{file.Name()},
	})
	if err != nil {
		return err
	}

	content, err := os.ReadFile(file.Name())
	if err != nil {
		return err
	}
	commands := parseTemplateCommands(string(content))
	if len(commands) == 0 {
		return errors.New("no commands entered")
	}

	if err := store.Add(name, commands); err != nil {
		return err
	}
	if err := store.Save(config.TemplatesFile()); err != nil {
		return err
	}

	terminal.PrintDone("Template has been created.")
	return nil
}

// parseTemplateCommands extracts template commands from edited text:
// one command per line, comments and blank lines skipped.
func parseTemplateCommands(content string) []string {
	var commands []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		commands = append(commands, trimmed)
	}
	return commands
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	store, err := template.Load(config.TemplatesFile())
	if err != nil {
		return err
	}

	if store.IsEmpty() {
		fmt.Println("No templates found.")
		return nil
	}

	if !templatesListPure {
		terminal.PrintTitle("Templates")
	}
	for _, name := range store.Names() {
		if templatesListPure {
			fmt.Println(name)
		} else {
			fmt.Println(" " + name)
		}
	}
	return nil
}

func runTemplatesGet(cmd *cobra.Command, args []string) error {
	store, err := template.Load(config.TemplatesFile())
	if err != nil {
		return err
	}

	commands, ok := store.Get(args[0])
	if !ok {
		return errors.ErrTemplateNotFound
	}

	if !templatesGetPure {
		terminal.PrintTitle("Commands of this template")
	}
	for _, command := range commands {
		if templatesGetPure {
			fmt.Println(command)
		} else {
			fmt.Println(" " + command)
		}
	}
	return nil
}

func runTemplatesEdit(cmd *cobra.Command, args []string) error {
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
		Args:    append(append([]string{}, profile.EditorArgs...), config.TemplatesFile()),
	})
}

func runTemplatesRemove(cmd *cobra.Command, args []string) error {
	store, err := template.Load(config.TemplatesFile())
	if err != nil {
		return err
	}
	if err := store.Remove(args[0]); err != nil {
		return err
	}
	if err := store.Save(config.TemplatesFile()); err != nil {
		return err
	}

	terminal.PrintDone("Template has been removed.")
	return nil
}

func runTemplatesClear(cmd *cobra.Command, args []string) error {
	if !terminal.Ask("Clear all templates?", false) {
		fmt.Println("Aborted.")
		return nil
	}

	store, err := template.Load(config.TemplatesFile())
	if err != nil {
		return err
	}
	store.Clear()
	if err := store.Save(config.TemplatesFile()); err != nil {
		return err
	}

	terminal.PrintDone("Templates storage has been cleared.")
	return nil
}
