package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"brytekit/internal/plan"
)

const (
	formatAuto  = "auto"
	formatPlain = "plain"
	formatTable = "table"
)

func parseFormat(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", formatAuto:
		return formatAuto, nil
	case formatPlain:
		return formatPlain, nil
	case formatTable:
		return formatTable, nil
	default:
		return "", fmt.Errorf("unsupported --format %q (want auto, plain, or table)", value)
	}
}

// useTable reports whether a plan should be rendered as a table. Execute mode
// always streams one command per line so progress stays visible.
func useTable(format string, mode plan.Mode, out io.Writer) bool {
	if mode == plan.ModeExecute {
		return false
	}
	switch format {
	case formatTable:
		return true
	case formatPlain:
		return false
	default:
		return isTerminal(out)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runBatch prints ops (as lines or a table) and, in execute mode, applies them.
func runBatch(cmd *cobra.Command, format string, runner *plan.Runner, ops []plan.Operation) (plan.Summary, error) {
	out := cmd.OutOrStdout()
	table := useTable(format, runner.Mode, out)
	if table {
		runner.Out = io.Discard
	} else {
		runner.Out = out
	}

	summary, err := runner.Run(cmd.Context(), ops)
	if table && len(ops) > 0 {
		fmt.Fprintln(out, renderPlanTable(ops))
	}
	fmt.Fprintln(cmd.ErrOrStderr(), summaryLine(summary))
	return summary, err
}

func summaryLine(s plan.Summary) string {
	if s.Mode != plan.ModeExecute {
		if s.Planned == 0 {
			return "Nothing to do"
		}
		return fmt.Sprintf("Planned %d operation(s); dry run, nothing changed (use --execute to apply)", s.Planned)
	}
	line := fmt.Sprintf("Planned %d, executed %d, skipped %d, failed %d", s.Planned, s.Executed, s.Skipped, len(s.Failures))
	if failed := s.FailedSlots(); len(failed) > 0 {
		labels := make([]string, len(failed))
		for i, sl := range failed {
			labels[i] = sl.String()
		}
		line += " (slots " + strings.Join(labels, ", ") + ")"
	}
	return line
}
