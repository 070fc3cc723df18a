package resolver

import "testing"

func TestRecentSentinel(t *testing.T) {
	// The sentinel must resolve without consulting the known names at all.
	name, ok := Resolve("-", nil, Options{RecentEnabled: true, Recent: "foo"})
	if !ok || name != "foo" {
		t.Errorf("Resolve(-) = %q, %v; want foo, true", name, ok)
	}
}

func TestRecentSentinelUnset(t *testing.T) {
	name, ok := Resolve("-", []string{"foo"}, Options{RecentEnabled: true})
	if ok || name != "" {
		t.Errorf("empty recent must resolve to not-found, got %q, %v", name, ok)
	}
}

func TestRecentDisabledFallsThrough(t *testing.T) {
	// With recent tracking off, "-" is treated as an ordinary token. It is
	// never a legal project name, so autocomplete finds nothing.
	name, ok := Resolve("-", []string{"foo"}, Options{AutocompleteEnabled: true})
	if ok {
		t.Errorf("expected no resolution, got %q", name)
	}
}

func TestExactMatch(t *testing.T) {
	confirmCalled := false
	opts := Options{
		AutocompleteEnabled: true,
		Confirm: func(string, bool) bool {
			confirmCalled = true
			return false
		},
	}

	name, ok := Resolve("foo", []string{"foo", "bar"}, opts)
	if !ok || name != "foo" {
		t.Errorf("Resolve(foo) = %q, %v; want foo, true", name, ok)
	}
	if confirmCalled {
		t.Error("exact match must not prompt")
	}
}

func TestPrefixMatchConfirmed(t *testing.T) {
	var prompted string
	opts := Options{
		AutocompleteEnabled: true,
		Confirm: func(prompt string, _ bool) bool {
			prompted = prompt
			return true
		},
	}

	name, ok := Resolve("fo", []string{"foo", "bar"}, opts)
	if !ok || name != "foo" {
		t.Errorf("Resolve(fo) = %q, %v; want foo, true", name, ok)
	}
	if prompted == "" {
		t.Error("expected a confirmation prompt")
	}
}

func TestPrefixMatchDeclined(t *testing.T) {
	opts := Options{
		AutocompleteEnabled: true,
		Confirm:             func(string, bool) bool { return false },
	}

	if name, ok := Resolve("fo", []string{"foo"}, opts); ok {
		t.Errorf("declined suggestion must not resolve, got %q", name)
	}
}

func TestPrefixMatchAlwaysAccept(t *testing.T) {
	opts := Options{
		AutocompleteEnabled: true,
		AlwaysAccept:        true,
		Confirm: func(string, bool) bool {
			t.Error("always-accept must bypass the prompt")
			return false
		},
	}

	name, ok := Resolve("fo", []string{"foo", "bar"}, opts)
	if !ok || name != "foo" {
		t.Errorf("Resolve(fo) = %q, %v; want foo, true", name, ok)
	}
}

func TestPrefixMatchCaseInsensitiveFirstWins(t *testing.T) {
	opts := Options{AutocompleteEnabled: true, AlwaysAccept: true}

	name, ok := Resolve("WEB", []string{"backend", "Website", "web-tools"}, opts)
	if !ok || name != "Website" {
		t.Errorf("Resolve(WEB) = %q, %v; want Website (first match in order), true", name, ok)
	}
}

func TestNoMatch(t *testing.T) {
	opts := Options{AutocompleteEnabled: true, AlwaysAccept: true}

	if name, ok := Resolve("zzz", []string{"foo", "bar"}, opts); ok {
		t.Errorf("expected no resolution, got %q", name)
	}
}

func TestAutocompleteDisabledReturnsInput(t *testing.T) {
	name, ok := Resolve("whatever", []string{"foo"}, Options{})
	if !ok || name != "whatever" {
		t.Errorf("Resolve with autocomplete off = %q, %v; want input unchanged", name, ok)
	}
}
