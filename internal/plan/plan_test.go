package plan

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type recordingExecutor struct {
	seen   []Operation
	failOn func(Operation) error
}

func (r *recordingExecutor) Execute(_ context.Context, op Operation) error {
	r.seen = append(r.seen, op)
	if r.failOn != nil {
		return r.failOn(op)
	}
	return nil
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"":        ModePlan,
		"plan":    ModePlan,
		"Dry-Run": ModePlan,
		"execute": ModeExecute,
		" live ":  ModeExecute,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRenameCommand(t *testing.T) {
	op := Rename(7, "content/007_override.bm", "content/007.bm")
	if got, want := op.Command(), "mv -f content/007_override.bm content/007.bm"; got != want {
		t.Fatalf("Command() = %q, want %q", got, want)
	}
}

func TestInvokeCommand(t *testing.T) {
	args := []string{"-map", "7", "-play", "content/007.bd", "-record", "content/007_new.bd", "-winw", "1500", "-winh", "1500", "-speed", "5"}
	op := Invoke(7, "./game", args)
	want := "./game -map 7 -play content/007.bd -record content/007_new.bd -winw 1500 -winh 1500 -speed 5"
	if got := op.Command(); got != want {
		t.Fatalf("Command() = %q, want %q", got, want)
	}

	args[1] = "mutated"
	if op.Args[1] != "7" {
		t.Fatal("Invoke must copy its arguments")
	}
}

func TestCommandQuotesSpaces(t *testing.T) {
	op := Rename(3, "my content/003 override.bm", "my content/003.bm")
	got := op.Command()
	if strings.Count(got, "'") < 4 {
		t.Fatalf("expected quoted words, got %q", got)
	}
}

func TestRunnerPlanModeNeverExecutes(t *testing.T) {
	exec := &recordingExecutor{}
	var out bytes.Buffer
	r := &Runner{Mode: ModePlan, Out: &out, Executor: exec}
	ops := []Operation{
		Rename(1, "a", "b"),
		Invoke(2, "./game", []string{"-map", "2"}),
	}

	summary, err := r.Run(context.Background(), ops)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(exec.seen) != 0 {
		t.Fatalf("plan mode executed %d operations", len(exec.seen))
	}
	if summary.Planned != 2 || summary.Executed != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || lines[0] != "mv -f a b" || lines[1] != "./game -map 2" {
		t.Fatalf("unexpected report %q", out.String())
	}
}

func TestRunnerExecuteStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	exec := &recordingExecutor{failOn: func(op Operation) error {
		if op.Slot == 2 {
			return boom
		}
		return nil
	}}
	r := &Runner{Mode: ModeExecute, Executor: exec}
	ops := []Operation{Rename(1, "a", "b"), Rename(2, "c", "d"), Rename(3, "e", "f")}

	summary, err := r.Run(context.Background(), ops)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op.Slot != 2 {
		t.Fatalf("expected OpError for slot 2, got %v", err)
	}
	if len(exec.seen) != 2 {
		t.Fatalf("expected batch to stop after slot 2, saw %d", len(exec.seen))
	}
	if summary.Executed != 1 || len(summary.Failures) != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRunnerContinueOnErrorSkipsRestOfSlot(t *testing.T) {
	boom := errors.New("game crashed")
	exec := &recordingExecutor{failOn: func(op Operation) error {
		if op.Slot == 1 && op.Kind == KindInvoke {
			return boom
		}
		return nil
	}}
	var out bytes.Buffer
	r := &Runner{Mode: ModeExecute, Out: &out, Executor: exec, ContinueOnError: true}
	ops := []Operation{
		Invoke(1, "./game", nil),
		Rename(1, "new", "old"),
		Invoke(2, "./game", nil),
		Rename(2, "new2", "old2"),
	}

	summary, err := r.Run(context.Background(), ops)
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined failure, got %v", err)
	}
	if len(exec.seen) != 3 {
		t.Fatalf("expected 3 executions, got %d", len(exec.seen))
	}
	if summary.Skipped != 1 || summary.Executed != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if slots := summary.FailedSlots(); len(slots) != 1 || slots[0] != 1 {
		t.Fatalf("unexpected failed slots %v", slots)
	}
	if strings.Contains(out.String(), "mv -f new old") {
		t.Fatal("skipped promotion must not be reported")
	}
}

func TestRunnerHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{Mode: ModeExecute, Executor: &recordingExecutor{}}
	if _, err := r.Run(ctx, []Operation{Rename(1, "a", "b")}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDispatchRoutesByKind(t *testing.T) {
	var renamed, invoked bool
	d := Dispatch{
		Rename: func(_ context.Context, src, dst string) error {
			renamed = src == "a" && dst == "b"
			return nil
		},
		Invoke: func(_ context.Context, op Operation) error {
			invoked = op.Executable == "./game"
			return nil
		},
	}
	if err := d.Execute(context.Background(), Rename(1, "a", "b")); err != nil {
		t.Fatal(err)
	}
	if err := d.Execute(context.Background(), Invoke(1, "./game", nil)); err != nil {
		t.Fatal(err)
	}
	if !renamed || !invoked {
		t.Fatalf("renamed=%v invoked=%v", renamed, invoked)
	}
	if err := (Dispatch{}).Execute(context.Background(), Rename(1, "a", "b")); err == nil {
		t.Fatal("expected error without rename handler")
	}
}
