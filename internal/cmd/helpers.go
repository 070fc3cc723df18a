package cmd

import (
	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/library"
	"github.com/kanri-dev/kanri/internal/logging"
	"github.com/kanri-dev/kanri/internal/resolver"
	"github.com/kanri-dev/kanri/internal/terminal"
)

// openLibrary constructs a fresh Library over the configured root. Every
// command reconstructs the library rather than assuming a previous scan
// is still fresh.
func openLibrary(cfg *config.Config) (*library.Library, error) {
	return library.New(cfg.Options.ProjectsDirectory, cfg.Options.DisplayHidden)
}

// resolveProjectName maps a typed token to a known project name using the
// configured recent and autocomplete behavior.
func resolveProjectName(typed string, cfg *config.Config, lib *library.Library) (string, bool) {
	return resolver.Resolve(typed, lib.Names(), resolver.Options{
		RecentEnabled:       cfg.Recent.Enabled,
		Recent:              cfg.Recent.RecentProject,
		AutocompleteEnabled: cfg.Autocomplete.Enabled,
		AlwaysAccept:        cfg.Autocomplete.AlwaysAccept,
		Confirm:             terminal.Ask,
	})
}

// newLogger builds the debug logger per configuration. Logging failures
// degrade to a no-op logger rather than failing the command.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.Nop()
	}
	logger, err := logging.New(config.Dir(), cfg.Logging.Level)
	if err != nil {
		return logging.Nop()
	}
	return logger
}

// rememberRecent records name as the most recently opened project when
// recent tracking is enabled.
func rememberRecent(cfg *config.Config, name string) error {
	if !cfg.Recent.Enabled || cfg.Recent.RecentProject == name {
		return nil
	}
	cfg.Recent.RecentProject = name
	return cfg.Save(config.File())
}
