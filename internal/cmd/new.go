package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/provision"
	"github.com/kanri-dev/kanri/internal/template"
	"github.com/kanri-dev/kanri/internal/terminal"
)

var (
	newTemplateName string
	newQuiet        bool
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new project",
	Long: `Create a new project directory under the projects root.

With --template, the named template's commands run sequentially inside
the new directory. If any command fails, the directory is removed again.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTemplateName, "template", "t", "", "Template to scaffold the project with")
	newCmd.Flags().BoolVarP(&newQuiet, "quiet", "q", false, "Suppress output of template commands")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lib, err := openLibrary(cfg)
	if err != nil {
		return err
	}

	if newTemplateName == "" {
		if err := lib.Create(name); err != nil {
			return err
		}
		terminal.PrintDone("Created.")
		return nil
	}

	store, err := template.Load(config.TemplatesFile())
	if err != nil {
		return err
	}
	profile, err := cfg.CurrentProfile()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logger.Close()

	fmt.Printf("Generating project '%s' from '%s' template...\n", name, newTemplateName)

	pipeline := &provision.Pipeline{
		Library:  lib,
		Store:    store,
		Profile:  profile,
		Quiet:    newQuiet,
		Progress: terminal.Progress,
		Log:      logger,
	}
	result, err := pipeline.Run(name, newTemplateName)
	if err != nil {
		terminal.PrintError("failed to apply template.")
		return err
	}

	terminal.PrintDone(fmt.Sprintf("Generated '%s' in %d ms.", name, result.Elapsed.Milliseconds()))
	return nil
}
