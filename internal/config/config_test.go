package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/kanri-dev/kanri/internal/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	if errs := cfg.Validate(); len(errs) > 0 {
		t.Fatalf("default config is invalid: %v", ValidationErrors(errs))
	}
	if _, err := cfg.CurrentProfile(); err != nil {
		t.Errorf("default current profile not resolvable: %v", err)
	}
	if !cfg.Recent.Enabled || !cfg.Autocomplete.Enabled {
		t.Error("recent and autocomplete should default to enabled")
	}
}

func TestDefaultShellArgs(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")

	cfg := Default()
	p := cfg.Profiles[DefaultProfileName]
	if p.Shell != "zsh" {
		t.Errorf("shell = %q, want zsh", p.Shell)
	}
	if len(p.ShellArgs) != 1 || p.ShellArgs[0] != "-c" {
		t.Errorf("shell args = %v, want [-c]", p.ShellArgs)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Options.CurrentProfile != DefaultProfileName {
		t.Errorf("current profile = %q, want %q", cfg.Options.CurrentProfile, DefaultProfileName)
	}
}

func TestLoadRejectsUnknownProfile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("options.current_profile", "missing")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation failure for unknown current profile")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Options.DisplayHidden = true
	cfg.Recent.RecentProject = "api"
	cfg.Profiles["work"] = Profile{
		Editor: "nvim",
		Shell:  "fish",
		ShellArgs: []string{
			"-c",
		},
	}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("saved config is not valid TOML: %v", err)
	}
	if !loaded.Options.DisplayHidden {
		t.Error("display_hidden lost in round trip")
	}
	if loaded.Recent.RecentProject != "api" {
		t.Errorf("recent project = %q, want api", loaded.Recent.RecentProject)
	}
	if loaded.Profiles["work"].Editor != "nvim" {
		t.Error("added profile lost in round trip")
	}
}

func TestProfileLookup(t *testing.T) {
	cfg := Default()

	if _, err := cfg.Profile("nope"); !errors.Is(err, errors.ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileNamesSorted(t *testing.T) {
	cfg := Default()
	cfg.Profiles["zz"] = Profile{}
	cfg.Profiles["aa"] = Profile{}

	names := cfg.ProfileNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("profile names not sorted: %v", names)
		}
	}
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"

	errs := cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "logging.level" {
		t.Fatalf("expected single logging.level error, got %v", errs)
	}
	if !strings.Contains(errs[0].Error(), "verbose") {
		t.Errorf("offending value missing from %q", errs[0].Error())
	}
}

func TestDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	if got := Dir(); got != filepath.Join("/tmp/xdg-test", "kanri") {
		t.Errorf("Dir() = %q", got)
	}
	if got := File(); !strings.HasSuffix(got, "config.toml") {
		t.Errorf("File() = %q", got)
	}
	if got := TemplatesFile(); !strings.HasSuffix(got, "templates.json") {
		t.Errorf("TemplatesFile() = %q", got)
	}
}
