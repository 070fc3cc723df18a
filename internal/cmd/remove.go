package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/terminal"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a project and all its contents",
	Long: `Remove a project directory and everything in it.

Removing a non-empty project asks for confirmation unless --force is
given. The emptiness check is live: it looks at the directory as it is
now, not as it was when the projects root was scanned.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "Skip the non-empty confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lib, err := openLibrary(cfg)
	if err != nil {
		return err
	}

	name, ok := resolveProjectName(args[0], cfg, lib)
	if !ok || !lib.Contains(name) {
		return errors.NewLibraryError("cannot remove project", errors.ErrProjectNotFound).
			WithProject(args[0])
	}

	empty, err := lib.IsProjectEmpty(name)
	if err != nil {
		return err
	}
	if !empty && !removeForce && !terminal.Ask("The project is not empty. Continue?", false) {
		fmt.Println("Canceled.")
		return nil
	}

	err = terminal.RunWithSpinner("Removing project...", func() error {
		return lib.Delete(name)
	})
	if err != nil {
		return err
	}

	terminal.PrintDone(fmt.Sprintf("Project '%s' has been removed.", name))
	return nil
}
