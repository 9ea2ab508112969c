package overrides

import (
	"fmt"

	"brytekit/internal/slot"
)

// Ambiguity decides how Discover treats several candidates for one slot.
type Ambiguity int

const (
	// KeepLast uses the last candidate in snapshot order.
	KeepLast Ambiguity = iota
	// RejectAmbiguous fails with *AmbiguousOverrideError.
	RejectAmbiguous
)

// ParseAmbiguity maps the config values "last" and "error".
func ParseAmbiguity(value string) (Ambiguity, error) {
	switch value {
	case "", "last":
		return KeepLast, nil
	case "error":
		return RejectAmbiguous, nil
	default:
		return KeepLast, fmt.Errorf("override ambiguity: unsupported value %q", value)
	}
}

// Candidate is the override chosen for one slot.
type Candidate struct {
	Slot      slot.Slot
	Canonical string
	Override  string
	// Shadowed lists earlier matches that lost to Override.
	Shadowed []string
}

// Discover scans names for override candidates, in ascending slot order.
// It does not touch the filesystem.
func Discover(names []string, r slot.Range, match Matcher, policy Ambiguity) ([]Candidate, error) {
	if match == nil {
		match = SubstringMatcher
	}
	var out []Candidate
	for _, s := range r.Slots() {
		var matches []string
		for _, name := range names {
			if match(name, s) {
				matches = append(matches, name)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 && policy == RejectAmbiguous {
			return nil, &AmbiguousOverrideError{Slot: s, Candidates: matches}
		}
		last := len(matches) - 1
		c := Candidate{Slot: s, Canonical: slot.MapName(s), Override: matches[last]}
		if last > 0 {
			c.Shadowed = matches[:last]
		}
		out = append(out, c)
	}
	return out, nil
}
