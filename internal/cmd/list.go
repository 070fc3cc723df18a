package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/terminal"
)

var listPure bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listPure, "pure", false, "Print bare names only, for scripting")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lib, err := openLibrary(cfg)
	if err != nil {
		return err
	}

	if lib.IsEmpty() {
		fmt.Println("No projects found.")
		return nil
	}

	if listPure {
		for _, name := range lib.Names() {
			fmt.Println(name)
		}
		return nil
	}

	terminal.PrintTitle("Your projects")
	for _, project := range lib.All() {
		annotation := ""
		if project.Name == cfg.Recent.RecentProject {
			annotation = " " + terminal.Dim("(recent)")
		}
		fmt.Printf(" %s%s\n", project.Name, annotation)
	}
	return nil
}
