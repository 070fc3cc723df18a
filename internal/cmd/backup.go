package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/backup"
	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/template"
	"github.com/kanri-dev/kanri/internal/terminal"
)

const defaultBackupFile = "kanri_backup.json"

var backupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Export configuration and templates to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBackup,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import configuration and templates from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(importCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, err := template.Load(config.TemplatesFile())
	if err != nil {
		return err
	}

	path := defaultBackupFile
	if len(args) == 1 {
		path = args[0]
	}

	if err := backup.Save(path, backup.Bundle{Config: cfg, Templates: store}); err != nil {
		return err
	}

	terminal.PrintDone(fmt.Sprintf("Backup saved to '%s'.", path))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	bundle, err := backup.Load(args[0])
	if err != nil {
		return err
	}
	if bundle.Config == nil || bundle.Templates == nil {
		return errors.New("backup file is incomplete")
	}

	if errs := bundle.Config.Validate(); len(errs) > 0 {
		return config.ValidationErrors(errs)
	}

	if err := bundle.Config.Save(config.File()); err != nil {
		return err
	}
	if err := bundle.Templates.Save(config.TemplatesFile()); err != nil {
		return err
	}

	terminal.PrintDone("Backup has been imported.")
	return nil
}
