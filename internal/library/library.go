// Package library implements the project library: a scan-backed, ordered
// collection of project directories under a configured root.
//
// A Library is a snapshot of one directory scan performed at construction
// time. External changes to the root (by the user, by git, by spawned
// shells) are invisible until a new Library is constructed; callers rescan
// by reconstructing rather than assuming long-lived freshness. The index
// is not safe for concurrent mutation and is not meant to be: one command
// invocation owns the root for its duration.
package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/launcher"
)

// ignoreFileName is the per-root exclusion list: newline-delimited project
// names, with blank lines and #-prefixed lines skipped.
const ignoreFileName = ".ignore"

// Project is one managed directory under the library root. It is a view
// into the library's index, not an independent resource: the directory is
// only guaranteed to have existed at the last scan.
type Project struct {
	Name string
	Path string
}

// CloneOptions describes a git clone into the library root.
type CloneOptions struct {
	Remote string
	Branch string
	Name   string
}

// Library is the in-memory, insertion-ordered collection of projects
// produced by a single scan of the root directory.
type Library struct {
	basePath string
	index    map[string]Project
	order    []string
}

// New constructs a Library over basePath, performing exactly one directory
// scan. It fails with ErrInvalidPath if basePath is not an existing
// directory, and with a classified scan error if the scan itself fails;
// there is no partial Library.
//
// Direct children are included only if they are directories, their name is
// not in the system-exclusion set, and (displayHidden is true OR the name
// does not start with a dot). Entries listed in the root's .ignore file
// are excluded regardless of the hidden-display setting.
func New(basePath string, displayHidden bool) (*Library, error) {
	info, err := os.Stat(basePath)
	if err != nil || !info.IsDir() {
		return nil, errors.NewLibraryError("cannot use projects directory", errors.ErrInvalidPath)
	}

	lib := &Library{
		basePath: basePath,
		index:    make(map[string]Project),
	}
	if err := lib.scan(displayHidden); err != nil {
		return nil, err
	}
	return lib, nil
}

// scan populates the index from one enumeration of the root.
func (l *Library) scan(displayHidden bool) error {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return classifyScanError(err)
	}

	ignored, err := l.readIgnoreFile()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || isSystemName(name) {
			continue
		}
		if !displayHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := ignored[name]; skip {
			continue
		}
		l.insert(Project{Name: name, Path: filepath.Join(l.basePath, name)})
	}

	return nil
}

// readIgnoreFile loads the root's .ignore entries. A missing file is not
// an error.
func (l *Library) readIgnoreFile() (map[string]struct{}, error) {
	content, err := os.ReadFile(filepath.Join(l.basePath, ignoreFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.NewLibraryError("failed to read ignore file", err)
	}

	ignored := make(map[string]struct{})
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		ignored[trimmed] = struct{}{}
	}
	return ignored, nil
}

// classifyScanError maps a scan-level I/O failure onto the library's
// error taxonomy.
func classifyScanError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.NewLibraryError("failed to scan projects directory", errors.ErrRootNotFound)
	case errors.Is(err, fs.ErrPermission):
		return errors.NewLibraryError("failed to scan projects directory", errors.ErrPermission)
	case errors.Is(err, syscall.ENOTDIR):
		return errors.NewLibraryError("failed to scan projects directory", errors.ErrNotADirectory)
	default:
		return errors.NewLibraryError("failed to scan projects directory", err)
	}
}

// insert appends a project to the index, preserving insertion order.
func (l *Library) insert(p Project) {
	if _, exists := l.index[p.Name]; !exists {
		l.order = append(l.order, p.Name)
	}
	l.index[p.Name] = p
}

// BasePath returns the configured projects root.
func (l *Library) BasePath() string {
	return l.basePath
}

// Create makes a new project directory under the root. It fails with
// ErrAlreadyExists if any filesystem entry occupies the name, and with a
// validation error if the name is illegal. On success the project is
// appended to the index.
func (l *Library) Create(name string) error {
	path := filepath.Join(l.basePath, name)
	if _, err := os.Lstat(path); err == nil {
		return errors.NewLibraryError("cannot create project", errors.ErrAlreadyExists).
			WithProject(name)
	}

	if err := ValidateName(name); err != nil {
		return err
	}

	if err := os.Mkdir(path, 0755); err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			return errors.NewLibraryError("cannot create project", errors.ErrAlreadyExists).
				WithProject(name)
		case errors.Is(err, fs.ErrPermission):
			return errors.NewLibraryError("cannot create project", errors.ErrPermission).
				WithProject(name)
		default:
			return errors.NewLibraryError("cannot create project", err).WithProject(name)
		}
	}

	l.insert(Project{Name: name, Path: path})
	return nil
}

// Delete recursively removes the project directory and its contents. The
// index entry is dropped only on reported success; a failed removal
// leaves the index unchanged.
func (l *Library) Delete(name string) error {
	path := filepath.Join(l.basePath, name)
	if err := removeAll(path); err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			return errors.NewLibraryError("cannot remove project", errors.ErrPermission).
				WithProject(name)
		default:
			return errors.NewLibraryError("cannot remove project", err).WithProject(name)
		}
	}

	l.remove(name)
	return nil
}

// removeAll removes path recursively, failing if it does not exist.
// os.RemoveAll treats a missing path as success, which would let a delete
// of a vanished project silently update the index.
func removeAll(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// remove drops a name from the index.
func (l *Library) remove(name string) {
	if _, exists := l.index[name]; !exists {
		return
	}
	delete(l.index, name)
	for i, n := range l.order {
		if n == name {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Rename moves a project directory to a new name. The two index
// mutations (remove old, insert new) are one logical step: if the
// underlying rename fails, the index is left exactly as it was.
func (l *Library) Rename(oldName, newName string) error {
	if _, ok := l.index[oldName]; !ok {
		return errors.NewLibraryError("cannot rename project", errors.ErrProjectNotFound).
			WithProject(oldName)
	}
	if _, ok := l.index[newName]; ok {
		return errors.NewLibraryError("cannot rename project", errors.ErrAlreadyExists).
			WithProject(newName)
	}

	if err := ValidateName(newName); err != nil {
		return err
	}

	oldPath := filepath.Join(l.basePath, oldName)
	newPath := filepath.Join(l.basePath, newName)
	if err := os.Rename(oldPath, newPath); err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			return errors.NewLibraryError("cannot rename project", errors.ErrPermission).
				WithProject(oldName)
		default:
			return errors.NewLibraryError("cannot rename project", err).WithProject(oldName)
		}
	}

	l.index[newName] = Project{Name: newName, Path: newPath}
	delete(l.index, oldName)
	for i, n := range l.order {
		if n == oldName {
			l.order[i] = newName
			break
		}
	}
	return nil
}

// Clone runs git clone inside the library root. The clone target is not
// added to the index; callers reconstruct the Library to pick it up.
func (l *Library) Clone(opts CloneOptions) error {
	args := []string{"clone", opts.Remote}
	if opts.Name != "" {
		args = append(args, opts.Name)
	}
	if opts.Branch != "" {
		args = append(args, "-b", opts.Branch)
	}

	err := launcher.Launch(launcher.Options{
		Program: "git",
		Args:    args,
		Dir:     l.basePath,
	})
	if err != nil {
		return errors.NewLibraryError("failed to clone repository", err)
	}
	return nil
}

// Get returns the project with the given name from the cached index.
func (l *Library) Get(name string) (Project, bool) {
	p, ok := l.index[name]
	return p, ok
}

// Contains reports whether a project name is present in the cached index.
func (l *Library) Contains(name string) bool {
	_, ok := l.index[name]
	return ok
}

// Names returns all project names in scan/insertion order.
func (l *Library) Names() []string {
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}

// All returns all projects in scan/insertion order.
func (l *Library) All() []Project {
	projects := make([]Project, 0, len(l.order))
	for _, name := range l.order {
		projects = append(projects, l.index[name])
	}
	return projects
}

// IsEmpty reports whether the index has zero entries.
func (l *Library) IsEmpty() bool {
	return len(l.index) == 0
}

// IsProjectEmpty reports whether the project directory currently contains
// zero entries. Unlike the lookups this is a live filesystem check, used
// by deletion confirmation.
func (l *Library) IsProjectEmpty(name string) (bool, error) {
	p, ok := l.index[name]
	if !ok {
		return false, errors.NewLibraryError("cannot inspect project", errors.ErrProjectNotFound).
			WithProject(name)
	}

	entries, err := os.ReadDir(p.Path)
	if err != nil {
		return false, errors.NewLibraryError("cannot inspect project", err).WithProject(name)
	}
	return len(entries) == 0, nil
}
