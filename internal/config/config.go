// Package config defines the kanri configuration: the projects root,
// editor/shell profiles, recent-project tracking, and autocomplete
// behavior. Configuration is stored as TOML under the user's config
// directory and loaded through viper, with KANRI_* environment variables
// overriding file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/kanri-dev/kanri/internal/errors"
)

// Config represents the complete kanri configuration.
type Config struct {
	Options      GeneralOptions     `mapstructure:"options" toml:"options"`
	Profiles     map[string]Profile `mapstructure:"profiles" toml:"profiles"`
	Recent       RecentConfig       `mapstructure:"recent" toml:"recent"`
	Autocomplete AutocompleteConfig `mapstructure:"autocomplete" toml:"autocomplete"`
	Logging      LoggingConfig      `mapstructure:"logging" toml:"logging"`
}

// GeneralOptions holds top-level behavior switches.
type GeneralOptions struct {
	// ProjectsDirectory is the root under which all projects live.
	ProjectsDirectory string `mapstructure:"projects_directory" toml:"projects_directory"`
	// CurrentProfile names the active entry in Profiles.
	CurrentProfile string `mapstructure:"current_profile" toml:"current_profile"`
	// DisplayHidden includes dot-prefixed directories in scans.
	DisplayHidden bool `mapstructure:"display_hidden" toml:"display_hidden"`
}

// Profile bundles the editor and shell used to open and provision
// projects.
type Profile struct {
	Editor         string   `mapstructure:"editor" toml:"editor"`
	EditorArgs     []string `mapstructure:"editor_args" toml:"editor_args"`
	EditorForkMode bool     `mapstructure:"editor_fork_mode" toml:"editor_fork_mode"`
	Shell          string   `mapstructure:"shell" toml:"shell"`
	ShellArgs      []string `mapstructure:"shell_args" toml:"shell_args"`
}

// RecentConfig controls recent-project tracking.
type RecentConfig struct {
	Enabled       bool   `mapstructure:"enabled" toml:"enabled"`
	RecentProject string `mapstructure:"recent_project" toml:"recent_project"`
}

// AutocompleteConfig controls fuzzy name resolution.
type AutocompleteConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
	// AlwaysAccept takes the first prefix suggestion without prompting.
	AlwaysAccept bool `mapstructure:"always_accept" toml:"always_accept"`
}

// LoggingConfig controls debug logging.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Level   string `mapstructure:"level" toml:"level"`
}

// DefaultProfileName is the name of the profile created on first run.
const DefaultProfileName = "default"

// guiEditors are editors that open a window and return, so they are
// launched in fork mode with the project directory as the argument.
var guiEditors = map[string]bool{
	"code":          true,
	"code-insiders": true,
	"codium":        true,
	"code-oss":      true,
	"cursor":        true,
	"windsurf":      true,
	"zed":           true,
}

// IsGUIEditor reports whether the named editor opens its own window and
// should be launched in fork mode.
func IsGUIEditor(editor string) bool {
	return guiEditors[editor]
}

// Default returns a Config with platform-derived defaults: editor from
// $VISUAL/$EDITOR, shell from $SHELL, projects under ~/Projects.
func Default() *Config {
	editor := defaultEditor()
	editorArgs := []string{}
	editorFork := false
	if guiEditors[editor] {
		editorArgs = []string{"."}
		editorFork = true
	}

	shell := defaultShell()
	var shellArgs []string
	switch shell {
	case "powershell", "powershell.exe", "pwsh", "pwsh.exe":
		shellArgs = []string{"-NoLogo", "-Command"}
	case "cmd", "cmd.exe":
		shellArgs = []string{"/C"}
	default:
		shellArgs = []string{"-c"}
	}

	return &Config{
		Options: GeneralOptions{
			ProjectsDirectory: defaultProjectsDir(),
			CurrentProfile:    DefaultProfileName,
			DisplayHidden:     false,
		},
		Profiles: map[string]Profile{
			DefaultProfileName: {
				Editor:         editor,
				EditorArgs:     editorArgs,
				EditorForkMode: editorFork,
				Shell:          shell,
				ShellArgs:      shellArgs,
			},
		},
		Recent: RecentConfig{
			Enabled: true,
		},
		Autocomplete: AutocompleteConfig{
			Enabled:      true,
			AlwaysAccept: true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

func defaultEditor() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

func defaultShell() string {
	if v := os.Getenv("SHELL"); v != "" {
		return filepath.Base(v)
	}
	if runtime.GOOS == "windows" {
		return "powershell"
	}
	return "sh"
}

func defaultProjectsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Projects"
	}
	return filepath.Join(home, "Projects")
}

// SetDefaults registers default values with viper so a partial config
// file still yields a complete Config.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("options.projects_directory", defaults.Options.ProjectsDirectory)
	viper.SetDefault("options.current_profile", defaults.Options.CurrentProfile)
	viper.SetDefault("options.display_hidden", defaults.Options.DisplayHidden)

	viper.SetDefault("profiles", defaults.Profiles)

	viper.SetDefault("recent.enabled", defaults.Recent.Enabled)
	viper.SetDefault("recent.recent_project", defaults.Recent.RecentProject)

	viper.SetDefault("autocomplete.enabled", defaults.Autocomplete.Enabled)
	viper.SetDefault("autocomplete.always_accept", defaults.Autocomplete.AlwaysAccept)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot parse configuration: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Save writes the configuration as TOML to path, creating parent
// directories as needed. Viper's write support drops map-valued defaults,
// so the file is marshaled directly.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("cannot format configuration to TOML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write configuration file: %w", err)
	}
	return nil
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q: %w", name, errors.ErrProfileNotFound)
	}
	return p, nil
}

// CurrentProfile returns the active profile.
func (c *Config) CurrentProfile() (Profile, error) {
	return c.Profile(c.Options.CurrentProfile)
}

// ProfileNames returns all profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dir returns the path to the kanri config directory, honoring
// XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kanri")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kanri"
	}
	return filepath.Join(home, ".config", "kanri")
}

// File returns the path to the config file.
func File() string {
	return filepath.Join(Dir(), "config.toml")
}

// TemplatesFile returns the path to the templates store file.
func TemplatesFile() string {
	return filepath.Join(Dir(), "templates.json")
}
