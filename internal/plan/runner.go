package plan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"brytekit/internal/logging"
	"brytekit/internal/slot"
)

// Executor performs a single operation.
type Executor interface {
	Execute(ctx context.Context, op Operation) error
}

// Dispatch routes operations to a handler per Kind.
type Dispatch struct {
	Rename func(ctx context.Context, src, dst string) error
	Invoke func(ctx context.Context, op Operation) error
}

// Execute implements Executor.
func (d Dispatch) Execute(ctx context.Context, op Operation) error {
	switch op.Kind {
	case KindRename:
		if d.Rename == nil {
			return fmt.Errorf("no rename handler configured")
		}
		return d.Rename(ctx, op.Source, op.Destination)
	case KindInvoke:
		if d.Invoke == nil {
			return fmt.Errorf("no invoke handler configured")
		}
		return d.Invoke(ctx, op)
	default:
		return fmt.Errorf("unsupported operation kind %q", op.Kind)
	}
}

// OpError reports which operation failed.
type OpError struct {
	Op  Operation
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("slot %s: %s %q: %v", e.Op.Slot, e.Op.Kind, e.Op.Command(), e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Summary counts what a Run did.
type Summary struct {
	Mode     Mode
	Planned  int
	Executed int
	Skipped  int
	Failures []*OpError
}

// FailedSlots returns the distinct slots that recorded a failure, in order.
func (s Summary) FailedSlots() []slot.Slot {
	seen := make(map[slot.Slot]struct{}, len(s.Failures))
	var out []slot.Slot
	for _, f := range s.Failures {
		if _, ok := seen[f.Op.Slot]; ok {
			continue
		}
		seen[f.Op.Slot] = struct{}{}
		out = append(out, f.Op.Slot)
	}
	return out
}

// Runner walks a plan in order.
//
// Every operation's Command is written to Out before anything else happens.
// In ModeExecute the operation then runs through Executor. The first failure
// aborts the batch unless ContinueOnError is set, in which case the remaining
// operations of the failed slot are skipped and the next slot proceeds.
type Runner struct {
	Mode            Mode
	Out             io.Writer
	Executor        Executor
	Logger          *slog.Logger
	ContinueOnError bool
}

// Run reports and, in ModeExecute, applies ops.
func (r *Runner) Run(ctx context.Context, ops []Operation) (Summary, error) {
	summary := Summary{Mode: r.Mode, Planned: len(ops)}
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	if r.Mode == ModeExecute && r.Executor == nil {
		return summary, errors.New("execute mode requires an executor")
	}

	failed := make(map[slot.Slot]struct{})
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if _, ok := failed[op.Slot]; ok {
			summary.Skipped++
			logger.Debug("operation skipped after slot failure",
				logging.String("slot", op.Slot.String()),
				logging.String("kind", string(op.Kind)),
			)
			continue
		}

		if _, err := fmt.Fprintln(out, op.Command()); err != nil {
			return summary, fmt.Errorf("report operation: %w", err)
		}
		if r.Mode != ModeExecute {
			continue
		}

		if err := r.Executor.Execute(ctx, op); err != nil {
			opErr := &OpError{Op: op, Err: err}
			summary.Failures = append(summary.Failures, opErr)
			if !r.ContinueOnError || errors.Is(err, context.Canceled) {
				return summary, opErr
			}
			failed[op.Slot] = struct{}{}
			logger.Warn("operation failed; skipping rest of slot",
				logging.String("slot", op.Slot.String()),
				logging.String("kind", string(op.Kind)),
				logging.Error(err),
				logging.Alert("slot_failed"),
			)
			continue
		}
		summary.Executed++
		logger.Debug("operation applied",
			logging.String("slot", op.Slot.String()),
			logging.String("kind", string(op.Kind)),
		)
	}

	if len(summary.Failures) > 0 {
		errs := make([]error, len(summary.Failures))
		for i, f := range summary.Failures {
			errs[i] = f
		}
		return summary, errors.Join(errs...)
	}
	return summary, nil
}
