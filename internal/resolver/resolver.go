// Package resolver maps a typed project token to a concrete project name,
// with a recent-project sentinel and fuzzy-prefix assistance.
package resolver

import "strings"

// RecentSentinel is the token that resolves to the most recently opened
// project when recent tracking is enabled.
const RecentSentinel = "-"

// Confirm is the confirmation collaborator: a synchronous yes/no prompt.
// It is invoked at most once per resolution, before the call returns.
type Confirm func(prompt string, defaultYes bool) bool

// Options controls resolution behavior. The flags mirror the recent and
// autocomplete sections of the configuration.
type Options struct {
	RecentEnabled bool
	Recent        string

	AutocompleteEnabled bool
	// AlwaysAccept accepts the first prefix suggestion without prompting.
	AlwaysAccept bool
	Confirm      Confirm
}

// suggestion is the outcome of a completion search.
type suggestion int

const (
	found suggestion = iota
	foundSimilar
	nothing
)

// Resolve maps typed to a concrete project name. Resolution order:
//
//  1. The "-" sentinel returns the recent project when recent tracking is
//     enabled. The result may be empty; callers treat that as not found.
//  2. With autocomplete enabled, an exact match is returned unchanged;
//     otherwise the first case-insensitive prefix match (in the given
//     order of names) is returned after confirmation.
//  3. Otherwise typed is returned unchanged, with no resolution attempted.
//
// The second return value is false when no name could be resolved.
func Resolve(typed string, names []string, opts Options) (string, bool) {
	if typed == RecentSentinel && opts.RecentEnabled {
		return opts.Recent, opts.Recent != ""
	}

	if !opts.AutocompleteEnabled {
		return typed, true
	}

	match, kind := suggest(typed, names)
	switch kind {
	case found:
		return typed, true
	case foundSimilar:
		if opts.AlwaysAccept {
			return match, true
		}
		if opts.Confirm != nil && opts.Confirm("Did you mean '"+match+"'?", true) {
			return match, true
		}
		return "", false
	default:
		return "", false
	}
}

// suggest searches names for typed: an exact hit, then the first
// case-insensitive prefix match.
func suggest(typed string, names []string) (string, suggestion) {
	for _, name := range names {
		if name == typed {
			return name, found
		}
	}

	lower := strings.ToLower(typed)
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return name, foundSimilar
		}
	}
	return "", nothing
}
