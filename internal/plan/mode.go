package plan

import (
	"fmt"
	"strings"
)

// Mode selects whether planned operations are only reported or also applied.
type Mode int

const (
	// ModePlan reports operations without mutating anything.
	ModePlan Mode = iota
	// ModeExecute reports each operation and then performs it.
	ModeExecute
)

// ParseMode accepts "plan"/"dry-run" and "execute"/"live". Empty means ModePlan.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "plan", "dry-run", "dryrun":
		return ModePlan, nil
	case "execute", "live":
		return ModeExecute, nil
	default:
		return ModePlan, fmt.Errorf("execution mode: unsupported value %q", value)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeExecute:
		return "execute"
	default:
		return "plan"
	}
}
