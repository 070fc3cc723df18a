package library

import (
	"runtime"
	"strings"

	"github.com/kanri-dev/kanri/internal/errors"
)

// invalidNameChars are characters that are unsafe in a directory name on
// at least one supported platform.
const invalidNameChars = `/\:*?"<>|`

// systemNames are directory names owned by the operating system or by
// kanri itself. They are never listed as projects and never accepted as
// new project names. Matching is case-insensitive.
var systemNames = []string{
	".",
	"..",
	"$RECYCLE.BIN",
	"System Volume Information",
	"msdownld.tmp",
	".Trash-1000",
	"-",
}

// windowsReservedNames are the classic reserved device names that cannot
// be used as file names on Windows.
var windowsReservedNames = []string{
	"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
}

// isSystemName reports whether name matches the system-exclusion set,
// ignoring case.
func isSystemName(name string) bool {
	for _, s := range systemNames {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

// ValidateName checks whether name is legal as a new project directory
// name. It is pure and deterministic; it never touches the filesystem.
// Callers must invoke it before every mutation that introduces a new
// name (create, rename destination), not before lookups.
func ValidateName(name string) error {
	if name == "" {
		return errors.NewLibraryError("project name cannot be empty", errors.ErrInvalidProjectName)
	}

	if strings.ContainsAny(name, invalidNameChars) {
		return errors.NewLibraryError("project name contains invalid characters", errors.ErrInvalidProjectName).
			WithProject(name)
	}

	if isSystemName(name) {
		return errors.NewLibraryError("project name is reserved", errors.ErrInvalidProjectName).
			WithProject(name)
	}

	if runtime.GOOS == "windows" {
		for _, reserved := range windowsReservedNames {
			if strings.EqualFold(name, reserved) {
				return errors.NewLibraryError("project name is reserved on Windows", errors.ErrInvalidProjectName).
					WithProject(name)
			}
		}
	}

	return nil
}
