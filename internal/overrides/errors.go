package overrides

import (
	"fmt"
	"strings"

	"brytekit/internal/slot"
)

// DirectoryAccessError reports that the content directory could not be listed.
type DirectoryAccessError struct {
	Dir string
	Err error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("list content directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error { return e.Err }

// AmbiguousOverrideError reports a slot with more than one override candidate
// under the RejectAmbiguous policy.
type AmbiguousOverrideError struct {
	Slot       slot.Slot
	Candidates []string
}

func (e *AmbiguousOverrideError) Error() string {
	return fmt.Sprintf("slot %s has %d override candidates (%s); remove all but one",
		e.Slot, len(e.Candidates), strings.Join(e.Candidates, ", "))
}
