// Package provision applies a named template to a freshly created
// project: each template command runs sequentially in the new project
// directory through the configured shell, and a failure rolls the
// directory back.
//
// Each application is an explicit state machine:
//
//	StateCreated -> StateProvisioning -> {StateCompleted, StateRolledBack}
//
// so the rollback-on-failure contract is testable independent of the
// command-running mechanics.
package provision

import (
	"time"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/launcher"
	"github.com/kanri-dev/kanri/internal/library"
	"github.com/kanri-dev/kanri/internal/logging"
	"github.com/kanri-dev/kanri/internal/template"
)

// ProjectEnvVar is set in the environment of every template command,
// carrying the name of the project being provisioned.
const ProjectEnvVar = "KANRI_PROJECT"

// State is the position of one template application in its lifecycle.
type State int

const (
	// StateCreated: the project directory has been created, no commands
	// have run yet.
	StateCreated State = iota
	// StateProvisioning: template commands are executing.
	StateProvisioning
	// StateCompleted: all commands succeeded; the project stays in the
	// library.
	StateCompleted
	// StateRolledBack: a command failed and the compensating delete was
	// attempted.
	StateRolledBack
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateProvisioning:
		return "provisioning"
	case StateCompleted:
		return "completed"
	case StateRolledBack:
		return "rolled back"
	default:
		return "unknown"
	}
}

// Runner abstracts program launching for testability.
type Runner interface {
	Launch(opts launcher.Options) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(opts launcher.Options) error

// Launch calls f.
func (f RunnerFunc) Launch(opts launcher.Options) error {
	return f(opts)
}

// ProgressFunc is called before each command runs, with the command text
// and its 1-based position.
type ProgressFunc func(command string, current, total int)

// Pipeline orchestrates the library and the launcher to materialize a
// project from a template.
type Pipeline struct {
	Library *library.Library
	Store   *template.Store
	Profile config.Profile
	// Quiet discards the output of template commands.
	Quiet bool
	// Progress, when set, reports each command before it runs.
	Progress ProgressFunc
	// Runner defaults to the real launcher when nil.
	Runner Runner
	// Log defaults to a no-op logger when nil.
	Log *logging.Logger
}

// Result reports the outcome of one template application.
type Result struct {
	State   State
	Elapsed time.Duration
}

// Run creates the project and applies the template. Commands execute
// strictly sequentially, each fully completing before the next starts.
// On the first command failure the remaining commands are abandoned and
// the just-created directory is deleted; if that compensating delete also
// fails, the returned error reports both failures, never only the
// cleanup one. On a failed rollback the project stays in the library
// index, since the directory is still on disk.
func (p *Pipeline) Run(project, templateName string) (Result, error) {
	runner := p.Runner
	if runner == nil {
		runner = RunnerFunc(launcher.Launch)
	}
	log := p.Log
	if log == nil {
		log = logging.Nop()
	}

	commands, ok := p.Store.Get(templateName)
	if !ok {
		return Result{}, errors.NewProvisionError("cannot apply template", errors.ErrTemplateNotFound).
			WithTemplate(templateName)
	}
	if p.Profile.Shell == "" {
		return Result{}, errors.NewProvisionError("cannot apply template", errors.ErrShellNotConfigured).
			WithTemplate(templateName)
	}

	if err := p.Library.Create(project); err != nil {
		// Nothing was created, so there is nothing to roll back.
		return Result{}, err
	}
	state := StateCreated
	log.Info("project created", "project", project, "template", templateName)

	proj, _ := p.Library.Get(project)
	started := time.Now()
	state = StateProvisioning

	for i, command := range commands {
		if p.Progress != nil {
			p.Progress(command, i+1, len(commands))
		}
		log.Debug("running template command", "command", command, "step", i+1)

		err := runner.Launch(launcher.Options{
			Program: p.Profile.Shell,
			Args:    append(append([]string{}, p.Profile.ShellArgs...), command),
			Dir:     proj.Path,
			Env:     []launcher.EnvVar{{Name: ProjectEnvVar, Value: project}},
			Quiet:   p.Quiet,
		})
		if err == nil {
			continue
		}

		state = StateRolledBack
		perr := errors.NewProvisionError("template command failed", err).
			WithTemplate(templateName).
			WithCommand(command)
		if cleanupErr := p.Library.Delete(project); cleanupErr != nil {
			perr = perr.WithCleanup(cleanupErr)
			log.Error("rollback failed", "project", project, "error", cleanupErr)
		} else {
			log.Warn("project rolled back", "project", project, "command", command)
		}
		return Result{State: state, Elapsed: time.Since(started)}, perr
	}

	state = StateCompleted
	log.Info("template applied", "project", project, "template", templateName,
		"elapsed", time.Since(started))
	return Result{State: state, Elapsed: time.Since(started)}, nil
}
