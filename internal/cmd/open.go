package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/launcher"
	"github.com/kanri-dev/kanri/internal/terminal"
)

// sessionEnvVar marks shells spawned by kanri open --shell.
const sessionEnvVar = "KANRI_SESSION"

var (
	openShell bool
	openPath  bool
)

var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a project in your editor or shell",
	Long: `Open a project in the active profile's editor.

The name is resolved against the known projects: '-' opens the most
recently opened project, and a unique prefix is completed after
confirmation. With --shell a shell session starts inside the project
instead; with --path the project path is printed and nothing is opened.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolVarP(&openShell, "shell", "s", false, "Start a shell session inside the project")
	openCmd.Flags().BoolVarP(&openPath, "path", "p", false, "Print the project path instead of opening it")
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lib, err := openLibrary(cfg)
	if err != nil {
		return err
	}

	name, ok := resolveProjectName(args[0], cfg, lib)
	if !ok {
		return errors.NewLibraryError("cannot open project", errors.ErrProjectNotFound).
			WithProject(args[0])
	}
	project, ok := lib.Get(name)
	if !ok {
		return errors.NewLibraryError("cannot open project", errors.ErrProjectNotFound).
			WithProject(name)
	}

	if openPath {
		fmt.Println(project.Path)
		return nil
	}

	profile, err := cfg.CurrentProfile()
	if err != nil {
		return err
	}

	if openShell {
		if profile.Shell == "" {
			return errors.ErrShellNotConfigured
		}

		terminal.PrintTitle("STARTING SHELL SESSION")
		err := launcher.Launch(launcher.Options{
			Program: profile.Shell,
			Dir:     project.Path,
			Env:     []launcher.EnvVar{{Name: sessionEnvVar, Value: "1"}},
		})
		terminal.PrintTitle("SHELL SESSION ENDED")
		if err != nil {
			return err
		}
		return rememberRecent(cfg, name)
	}

	if profile.Editor == "" {
		return errors.ErrEditorNotConfigured
	}
	err = launcher.Launch(launcher.Options{
		Program: profile.Editor,
		Args:    profile.EditorArgs,
		Dir:     project.Path,
		Fork:    profile.EditorForkMode,
	})
	if err != nil {
		return err
	}

	if err := rememberRecent(cfg, name); err != nil {
		return err
	}

	if profile.EditorForkMode {
		terminal.PrintDone("Editor launched.")
	}
	return nil
}
