// Package cmd implements the kanri command-line interface.
package cmd

import (
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/template"
)

// Version is the kanri version string, overridable at build time with
// -ldflags "-X github.com/kanri-dev/kanri/internal/cmd.Version=...".
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "kanri",
	Short: "Local project-directory manager",
	Long: `Kanri keeps your projects in one configured directory: it lists,
creates, renames, and removes project folders, opens them in your
editor or shell, and scaffolds new projects from command templates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := ensureEnv(); err != nil {
		return err
	}
	rootCmd.Version = Version
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/kanri/config.toml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
		viper.AddConfigPath(config.Dir())
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("KANRI")
	// Replace dots with underscores for nested keys in env vars,
	// e.g. KANRI_OPTIONS_DISPLAY_HIDDEN for options.display_hidden.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// ensureEnv creates the default config and templates files on first run.
func ensureEnv() error {
	if _, err := os.Stat(config.File()); errors.Is(err, fs.ErrNotExist) {
		if saveErr := config.Default().Save(config.File()); saveErr != nil {
			return saveErr
		}
	}
	if _, err := os.Stat(config.TemplatesFile()); errors.Is(err, fs.ErrNotExist) {
		if saveErr := template.New().Save(config.TemplatesFile()); saveErr != nil {
			return saveErr
		}
	}
	return nil
}
