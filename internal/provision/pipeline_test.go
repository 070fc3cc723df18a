package provision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/launcher"
	"github.com/kanri-dev/kanri/internal/library"
	"github.com/kanri-dev/kanri/internal/template"
	"github.com/kanri-dev/kanri/internal/testutil"
)

func testProfile() config.Profile {
	return config.Profile{Shell: "sh", ShellArgs: []string{"-c"}}
}

func testStore(t *testing.T, name string, commands []string) *template.Store {
	t.Helper()
	store := template.New()
	if err := store.Add(name, commands); err != nil {
		t.Fatalf("failed to add template: %v", err)
	}
	return store
}

func newLibrary(t *testing.T, root string) *library.Library {
	t.Helper()
	lib, err := library.New(root, false)
	if err != nil {
		t.Fatalf("library.New failed: %v", err)
	}
	return lib
}

func TestRunCompletes(t *testing.T) {
	root := testutil.SetupProjectsRoot(t)
	lib := newLibrary(t, root)

	var launched []launcher.Options
	pipeline := &Pipeline{
		Library: lib,
		Store:   testStore(t, "web", []string{"cmd1", "cmd2"}),
		Profile: testProfile(),
		Runner: RunnerFunc(func(opts launcher.Options) error {
			launched = append(launched, opts)
			return nil
		}),
	}

	result, err := pipeline.Run("site", "web")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.State != StateCompleted {
		t.Errorf("state = %v, want %v", result.State, StateCompleted)
	}
	if !lib.Contains("site") {
		t.Error("completed project missing from library")
	}

	if len(launched) != 2 {
		t.Fatalf("launched %d commands, want 2", len(launched))
	}
	// Strict sequential order, shell invocation shape, cwd and env wiring.
	for i, want := range []string{"cmd1", "cmd2"} {
		opts := launched[i]
		if opts.Program != "sh" {
			t.Errorf("step %d program = %q", i, opts.Program)
		}
		if len(opts.Args) != 2 || opts.Args[0] != "-c" || opts.Args[1] != want {
			t.Errorf("step %d args = %v, want [-c %s]", i, opts.Args, want)
		}
		if opts.Dir != filepath.Join(root, "site") {
			t.Errorf("step %d dir = %q", i, opts.Dir)
		}
		if len(opts.Env) != 1 || opts.Env[0].Name != ProjectEnvVar || opts.Env[0].Value != "site" {
			t.Errorf("step %d env = %v", i, opts.Env)
		}
		if opts.Fork {
			t.Errorf("step %d launched in fork mode", i)
		}
	}
}

func TestRunRollsBackOnFailure(t *testing.T) {
	root := testutil.SetupProjectsRoot(t)
	lib := newLibrary(t, root)

	pipeline := &Pipeline{
		Library: lib,
		Store:   testStore(t, "web", []string{"cmd1", "cmd2", "cmd3"}),
		Profile: testProfile(),
		Runner: RunnerFunc(func(opts launcher.Options) error {
			if opts.Args[len(opts.Args)-1] == "cmd2" {
				return &errors.ExitCodeError{Code: 1}
			}
			return nil
		}),
	}

	result, err := pipeline.Run("site", "web")
	if err == nil {
		t.Fatal("expected failure")
	}
	if result.State != StateRolledBack {
		t.Errorf("state = %v, want %v", result.State, StateRolledBack)
	}

	var perr *errors.ProvisionError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProvisionError, got %T", err)
	}
	if perr.Command != "cmd2" {
		t.Errorf("failing command = %q, want cmd2", perr.Command)
	}

	if _, statErr := os.Stat(filepath.Join(root, "site")); !os.IsNotExist(statErr) {
		t.Error("project directory still exists after rollback")
	}
	if lib.Contains("site") {
		t.Error("rolled-back project still in library index")
	}
}

func TestRunFailFast(t *testing.T) {
	root := testutil.SetupProjectsRoot(t)
	lib := newLibrary(t, root)

	var ran []string
	pipeline := &Pipeline{
		Library: lib,
		Store:   testStore(t, "web", []string{"cmd1", "cmd2", "cmd3"}),
		Profile: testProfile(),
		Runner: RunnerFunc(func(opts launcher.Options) error {
			command := opts.Args[len(opts.Args)-1]
			ran = append(ran, command)
			if command == "cmd1" {
				return &errors.ExitCodeError{Code: 2}
			}
			return nil
		}),
	}

	if _, err := pipeline.Run("site", "web"); err == nil {
		t.Fatal("expected failure")
	}
	if len(ran) != 1 {
		t.Errorf("commands after the failure were executed: %v", ran)
	}
}

func TestRunCleanupFailureIsAdditive(t *testing.T) {
	root := testutil.SetupProjectsRoot(t)
	lib := newLibrary(t, root)

	pipeline := &Pipeline{
		Library: lib,
		Store:   testStore(t, "web", []string{"cmd1"}),
		Profile: testProfile(),
		Runner: RunnerFunc(func(opts launcher.Options) error {
			// Make the subsequent rollback fail too: the project directory
			// vanishes before the compensating delete runs.
			if err := os.RemoveAll(filepath.Join(root, "site")); err != nil {
				t.Fatalf("setup removal failed: %v", err)
			}
			return &errors.ExitCodeError{Code: 1}
		}),
	}

	_, err := pipeline.Run("site", "web")
	var perr *errors.ProvisionError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProvisionError, got %v", err)
	}
	if perr.Command != "cmd1" {
		t.Errorf("original failure must be preserved, got command %q", perr.Command)
	}
	if perr.Cleanup == nil {
		t.Error("cleanup failure not reported")
	}
	// Delete did not succeed, so the index entry stays.
	if !lib.Contains("site") {
		t.Error("index entry dropped despite failed cleanup")
	}
}

func TestRunTemplateNotFound(t *testing.T) {
	root := testutil.SetupProjectsRoot(t)
	lib := newLibrary(t, root)

	pipeline := &Pipeline{
		Library: lib,
		Store:   template.New(),
		Profile: testProfile(),
		Runner:  RunnerFunc(func(launcher.Options) error { return nil }),
	}

	if _, err := pipeline.Run("site", "nope"); !errors.Is(err, errors.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if lib.Contains("site") {
		t.Error("project created despite missing template")
	}
}

func TestRunShellNotConfigured(t *testing.T) {
	root := testutil.SetupProjectsRoot(t)
	lib := newLibrary(t, root)

	pipeline := &Pipeline{
		Library: lib,
		Store:   testStore(t, "web", []string{"cmd1"}),
		Profile: config.Profile{},
		Runner:  RunnerFunc(func(launcher.Options) error { return nil }),
	}

	if _, err := pipeline.Run("site", "web"); !errors.Is(err, errors.ErrShellNotConfigured) {
		t.Fatalf("expected ErrShellNotConfigured, got %v", err)
	}
}

func TestRunCreateFailureAbortsBeforeProvisioning(t *testing.T) {
	root := testutil.SetupProjectsRoot(t, "site")
	lib := newLibrary(t, root)

	ran := false
	pipeline := &Pipeline{
		Library: lib,
		Store:   testStore(t, "web", []string{"cmd1"}),
		Profile: testProfile(),
		Runner: RunnerFunc(func(launcher.Options) error {
			ran = true
			return nil
		}),
	}

	if _, err := pipeline.Run("site", "web"); !errors.Is(err, errors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if ran {
		t.Error("commands ran despite failed create")
	}
	// The pre-existing directory must survive.
	if _, err := os.Stat(filepath.Join(root, "site")); err != nil {
		t.Errorf("pre-existing directory touched: %v", err)
	}
}

func TestRunProgressReporting(t *testing.T) {
	root := testutil.SetupProjectsRoot(t)
	lib := newLibrary(t, root)

	type step struct {
		command        string
		current, total int
	}
	var steps []step
	pipeline := &Pipeline{
		Library: lib,
		Store:   testStore(t, "web", []string{"a", "b"}),
		Profile: testProfile(),
		Runner:  RunnerFunc(func(launcher.Options) error { return nil }),
		Progress: func(command string, current, total int) {
			steps = append(steps, step{command, current, total})
		},
	}

	if _, err := pipeline.Run("site", "web"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []step{{"a", 1, 2}, {"b", 2, 2}}
	if len(steps) != len(want) {
		t.Fatalf("got %d progress calls, want %d", len(steps), len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, steps[i], want[i])
		}
	}
}

func TestStateString(t *testing.T) {
	states := map[State]string{
		StateCreated:      "created",
		StateProvisioning: "provisioning",
		StateCompleted:    "completed",
		StateRolledBack:   "rolled back",
		State(99):         "unknown",
	}
	for state, want := range states {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
