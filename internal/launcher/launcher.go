// Package launcher runs external programs on behalf of kanri: editors,
// shells, git, and template commands. Invocations are synchronous and
// blocking unless fork mode is requested.
package launcher

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"syscall"

	"github.com/kanri-dev/kanri/internal/errors"
)

// EnvVar is a single environment variable override passed to a child
// process. Overrides are merged on top of the inherited environment;
// a duplicate name wins over the inherited value.
type EnvVar struct {
	Name  string
	Value string
}

// Options describes a one-shot program invocation.
type Options struct {
	// Program is the executable name, resolved against PATH.
	Program string
	// Args is the argument vector, not including the program name.
	Args []string
	// Dir is the working directory. Empty means the caller's current
	// directory.
	Dir string
	// Env holds environment overrides merged on top of the inherited
	// environment.
	Env []EnvVar
	// Quiet discards all three standard streams instead of inheriting
	// them from the parent.
	Quiet bool
	// Fork spawns the child and returns immediately without waiting.
	// Fork-mode invocations can only fail with spawn-time errors; the
	// child's eventual exit status is never reported.
	Fork bool
}

// Launch runs a program according to opts. In the default mode it blocks
// until the child exits and returns an ExitCodeError if the exit status
// is non-zero. Stream visibility follows opts.Quiet: either all three
// standard streams are inherited so the child behaves like a directly
// invoked interactive program, or all three are discarded.
func Launch(opts Options) error {
	cmd := exec.Command(opts.Program, opts.Args...)

	if !opts.Quiet {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		env := os.Environ()
		for _, v := range opts.Env {
			env = append(env, fmt.Sprintf("%s=%s", v.Name, v.Value))
		}
		cmd.Env = env
	}

	if opts.Fork {
		if err := cmd.Start(); err != nil {
			return classifySpawnError(opts.Program, err)
		}
		// Detach so the child keeps running after kanri exits.
		return cmd.Process.Release()
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return &errors.ExitCodeError{Code: code}
		}
		// Negative exit code means the child was terminated by a signal.
		return errors.NewLaunchError("program did not exit normally", errors.ErrInterrupted).
			WithProgram(opts.Program)
	}

	return classifySpawnError(opts.Program, err)
}

// classifySpawnError maps OS-level launch failures onto the launcher's
// error taxonomy.
func classifySpawnError(program string, err error) error {
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return errors.NewLaunchError("failed to launch program", errors.ErrProgramNotFound).
			WithProgram(program)
	case errors.Is(err, fs.ErrPermission):
		return errors.NewLaunchError("failed to launch program", errors.ErrNoPermission).
			WithProgram(program)
	case errors.Is(err, syscall.EINTR):
		return errors.NewLaunchError("failed to launch program", errors.ErrInterrupted).
			WithProgram(program)
	default:
		return errors.NewLaunchError("unexpected error launching program", err).
			WithProgram(program)
	}
}
