package backup

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/template"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanri_backup.json")

	cfg := config.Default()
	cfg.Recent.RecentProject = "api"
	store := template.New()
	if err := store.Add("go", []string{"go mod init example"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := Save(path, Bundle{Config: cfg, Templates: store}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Config.Recent.RecentProject != "api" {
		t.Errorf("recent project = %q, want api", loaded.Config.Recent.RecentProject)
	}
	commands, ok := loaded.Templates.Get("go")
	if !ok || !reflect.DeepEqual(commands, []string{"go mod init example"}) {
		t.Errorf("templates lost in round trip: %v, %v", commands, ok)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := Save(path, Bundle{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := Load(path); err != nil {
		t.Fatalf("Load of empty bundle failed: %v", err)
	}
}
