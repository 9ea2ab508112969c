package slot

import "fmt"

const (
	// MapExt is the extension of map files.
	MapExt = ".bm"
	// DemoExt is the extension of recorded demo files.
	DemoExt = ".bd"
	// StagedSuffix marks a freshly recorded demo awaiting promotion.
	StagedSuffix = "_new"

	// DefaultFirst and DefaultEnd bound the slots shipped with the game.
	DefaultFirst Slot = 1
	DefaultEnd   Slot = 250

	maxEnd Slot = 1000
)

// Slot identifies one map/demo pairing.
type Slot int

// String returns the three digit rendering used in file names.
func (s Slot) String() string {
	return fmt.Sprintf("%03d", int(s))
}

// MapName returns the canonical map file name for the slot.
func MapName(s Slot) string {
	return s.String() + MapExt
}

// DemoName returns the canonical demo file name for the slot.
func DemoName(s Slot) string {
	return s.String() + DemoExt
}

// StagedDemoName returns the name the game records a replacement demo to.
func StagedDemoName(s Slot) string {
	return s.String() + StagedSuffix + DemoExt
}

// Range is the half-open interval [First, End).
type Range struct {
	First Slot
	End   Slot
}

// DefaultRange returns [1, 250).
func DefaultRange() Range {
	return Range{First: DefaultFirst, End: DefaultEnd}
}

// Validate reports ranges that are empty or would not render as three digits.
func (r Range) Validate() error {
	switch {
	case r.First < 0:
		return fmt.Errorf("slot range: first %d is negative", r.First)
	case r.End <= r.First:
		return fmt.Errorf("slot range: end %d must be greater than first %d", r.End, r.First)
	case r.End > maxEnd:
		return fmt.Errorf("slot range: end %d exceeds %d", r.End, maxEnd)
	}
	return nil
}

// Len returns the number of slots in the range.
func (r Range) Len() int {
	if r.End <= r.First {
		return 0
	}
	return int(r.End - r.First)
}

// Contains reports whether s falls inside the range.
func (r Range) Contains(s Slot) bool {
	return s >= r.First && s < r.End
}

// Slots returns every slot in ascending order.
func (r Range) Slots() []Slot {
	out := make([]Slot, 0, r.Len())
	for s := r.First; s < r.End; s++ {
		out = append(out, s)
	}
	return out
}

// String renders the range in interval notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.First, r.End)
}
