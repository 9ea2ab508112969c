package overrides

import (
	"strings"

	"brytekit/internal/slot"
)

// Matcher reports whether name is an override candidate for s.
type Matcher func(name string, s slot.Slot) bool

// SubstringMatcher is the content directory's historical rule: the name
// contains the slot's three digits anywhere, contains ".bm" anywhere, and is
// not the canonical name itself. "100_backup.bmX" therefore matches slot 100,
// and "1007.bm" matches both slot 7 and slot 100.
func SubstringMatcher(name string, s slot.Slot) bool {
	return name != slot.MapName(s) &&
		strings.Contains(name, s.String()) &&
		strings.Contains(name, slot.MapExt)
}
