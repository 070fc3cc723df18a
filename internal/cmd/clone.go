package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/library"
	"github.com/kanri-dev/kanri/internal/terminal"
)

var cloneBranch string

var cloneCmd = &cobra.Command{
	Use:   "clone <remote> [name]",
	Short: "Clone a git repository into the projects root",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runClone,
}

func init() {
	rootCmd.AddCommand(cloneCmd)
	cloneCmd.Flags().StringVarP(&cloneBranch, "branch", "b", "", "Branch to check out")
}

func runClone(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lib, err := openLibrary(cfg)
	if err != nil {
		return err
	}

	opts := library.CloneOptions{Remote: args[0], Branch: cloneBranch}
	if len(args) == 2 {
		opts.Name = args[1]
	}

	if err := lib.Clone(opts); err != nil {
		return err
	}

	terminal.PrintDone("Repository has been cloned.")
	return nil
}
