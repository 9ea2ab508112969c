package demos

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"brytekit/internal/game"
	"brytekit/internal/plan"
	"brytekit/internal/slot"
)

var defaultSettings = game.Settings{Binary: "./game", WindowWidth: 1500, WindowHeight: 1500, Speed: 5}

// fakePlayer writes a recording for every session except those in fail.
type fakePlayer struct {
	sessions []game.Session
	fail     map[slot.Slot]error
	noWrite  map[slot.Slot]bool
}

func (p *fakePlayer) PlayAndRecord(_ context.Context, s game.Session) error {
	p.sessions = append(p.sessions, s)
	if err := p.fail[s.Map]; err != nil {
		return err
	}
	if p.noWrite[s.Map] {
		return nil
	}
	return os.WriteFile(s.RecordPath, []byte(fmt.Sprintf("new demo %s", s.Map)), 0o644)
}

func writeDemo(t *testing.T, dir string, s slot.Slot, content string) string {
	t.Helper()
	path := filepath.Join(dir, slot.DemoName(s))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(got)
}

func TestPlanIsUnconditionalForEverySlot(t *testing.T) {
	d := &Driver{ContentDir: filepath.Join(t.TempDir(), "does-not-exist"), Range: slot.DefaultRange(), Settings: defaultSettings}

	ops := d.Plan()
	if len(ops) != 2*249 {
		t.Fatalf("expected %d operations, got %d", 2*249, len(ops))
	}
	for i := 0; i < len(ops); i += 2 {
		want := slot.Slot(i/2 + 1)
		if ops[i].Kind != plan.KindInvoke || ops[i+1].Kind != plan.KindRename {
			t.Fatalf("slot %s: unexpected kinds %s, %s", want, ops[i].Kind, ops[i+1].Kind)
		}
		if ops[i].Slot != want || ops[i+1].Slot != want {
			t.Fatalf("operations out of order at %d: %s/%s want %s", i, ops[i].Slot, ops[i+1].Slot, want)
		}
	}
	if last := ops[len(ops)-1].Slot; last != 249 {
		t.Fatalf("last slot = %s, want 249", last)
	}
}

func TestPlanCommandsMatchGameInvocation(t *testing.T) {
	d := &Driver{ContentDir: "content", Range: slot.Range{First: 7, End: 8}, Settings: defaultSettings}
	ops := d.Plan()
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	if got, want := ops[0].Command(), filepath.FromSlash("./game -map 7 -play content/007.bd -record content/007_new.bd -winw 1500 -winh 1500 -speed 5"); got != want {
		t.Fatalf("invoke = %q, want %q", got, want)
	}
	if got, want := ops[1].Command(), filepath.FromSlash("mv -f content/007_new.bd content/007.bd"); got != want {
		t.Fatalf("promote = %q, want %q", got, want)
	}
}

func TestExecutePromotesNewRecording(t *testing.T) {
	dir := t.TempDir()
	old := writeDemo(t, dir, 1, "old demo 001")
	writeDemo(t, dir, 2, "old demo 002")
	player := &fakePlayer{}
	d := &Driver{ContentDir: dir, Range: slot.Range{First: 1, End: 3}, Settings: defaultSettings, Player: player}

	r := &plan.Runner{Mode: plan.ModeExecute, Executor: d.Executor()}
	summary, err := r.Run(context.Background(), d.Plan())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Executed != 4 {
		t.Fatalf("expected 4 executed operations, got %+v", summary)
	}
	if got := readFile(t, old); got != "new demo 001" {
		t.Fatalf("old demo not replaced: %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, slot.StagedDemoName(1))); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("staged demo should be gone, stat err=%v", err)
	}
	if len(player.sessions) != 2 || player.sessions[0].PlaybackPath != old {
		t.Fatalf("unexpected sessions %+v", player.sessions)
	}
}

func TestExecuteFailedPlaybackKeepsOldDemoAndStops(t *testing.T) {
	dir := t.TempDir()
	first := writeDemo(t, dir, 1, "old demo 001")
	second := writeDemo(t, dir, 2, "old demo 002")
	crash := fmt.Errorf("%w: exited with status 1", game.ErrPlaybackFailed)
	player := &fakePlayer{fail: map[slot.Slot]error{1: crash}}
	d := &Driver{ContentDir: dir, Range: slot.Range{First: 1, End: 3}, Settings: defaultSettings, Player: player}

	r := &plan.Runner{Mode: plan.ModeExecute, Executor: d.Executor()}
	_, err := r.Run(context.Background(), d.Plan())
	if !errors.Is(err, game.ErrPlaybackFailed) {
		t.Fatalf("expected playback failure, got %v", err)
	}
	if got := readFile(t, first); got != "old demo 001" {
		t.Fatalf("failed run must not promote: %q", got)
	}
	if got := readFile(t, second); got != "old demo 002" {
		t.Fatalf("batch should have stopped before slot 2: %q", got)
	}
	if len(player.sessions) != 1 {
		t.Fatalf("expected one game run, got %d", len(player.sessions))
	}
}

func TestExecuteSkipPolicyContinuesPastFailure(t *testing.T) {
	dir := t.TempDir()
	first := writeDemo(t, dir, 1, "old demo 001")
	second := writeDemo(t, dir, 2, "old demo 002")
	player := &fakePlayer{noWrite: map[slot.Slot]bool{1: true}}
	d := &Driver{ContentDir: dir, Range: slot.Range{First: 1, End: 3}, Settings: defaultSettings, Player: player}

	r := &plan.Runner{Mode: plan.ModeExecute, Executor: d.Executor(), ContinueOnError: true}
	summary, err := r.Run(context.Background(), d.Plan())
	if !errors.Is(err, ErrNoRecording) {
		t.Fatalf("expected ErrNoRecording, got %v", err)
	}
	if got := readFile(t, first); got != "old demo 001" {
		t.Fatalf("slot 1 must keep its demo: %q", got)
	}
	if got := readFile(t, second); got != "new demo 002" {
		t.Fatalf("slot 2 should be regenerated: %q", got)
	}
	if summary.Skipped != 1 || len(summary.Failures) != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestLeftoverStagedDemoIsNotPromoted(t *testing.T) {
	dir := t.TempDir()
	old := writeDemo(t, dir, 1, "old demo 001")
	staged := filepath.Join(dir, slot.StagedDemoName(1))
	if err := os.WriteFile(staged, []byte("stale leftover"), 0o644); err != nil {
		t.Fatal(err)
	}
	player := &fakePlayer{noWrite: map[slot.Slot]bool{1: true}}
	d := &Driver{ContentDir: dir, Range: slot.Range{First: 1, End: 2}, Settings: defaultSettings, Player: player}

	r := &plan.Runner{Mode: plan.ModeExecute, Executor: d.Executor()}
	_, err := r.Run(context.Background(), d.Plan())
	if !errors.Is(err, ErrNoRecording) {
		t.Fatalf("expected ErrNoRecording, got %v", err)
	}
	if got := readFile(t, old); got != "old demo 001" {
		t.Fatalf("leftover recording was promoted: %q", got)
	}
	if _, err := os.Stat(staged); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("leftover staged demo should be cleared, stat err=%v", err)
	}
}

func TestStaleRecordingRemovalFailureStopsSlot(t *testing.T) {
	dir := t.TempDir()
	player := &fakePlayer{}
	blocked := errors.New("permission denied")
	d := &Driver{
		ContentDir: dir,
		Range:      slot.Range{First: 1, End: 2},
		Settings:   defaultSettings,
		Player:     player,
		Remove:     func(string) error { return blocked },
	}

	err := d.Executor().Execute(context.Background(), d.Plan()[0])
	if !errors.Is(err, blocked) {
		t.Fatalf("expected removal error, got %v", err)
	}
	if len(player.sessions) != 0 {
		t.Fatal("game must not run when the staged path cannot be cleared")
	}
}

func TestPlanModeTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	old := writeDemo(t, dir, 1, "old demo 001")
	player := &fakePlayer{}
	renamed := false
	d := &Driver{
		ContentDir: dir,
		Range:      slot.Range{First: 1, End: 2},
		Settings:   defaultSettings,
		Player:     player,
		Rename: func(string, string) error {
			renamed = true
			return nil
		},
	}

	r := &plan.Runner{Mode: plan.ModePlan, Executor: d.Executor()}
	if _, err := r.Run(context.Background(), d.Plan()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(player.sessions) != 0 || renamed {
		t.Fatal("plan mode must not run the game or rename")
	}
	if got := readFile(t, old); got != "old demo 001" {
		t.Fatalf("demo changed in plan mode: %q", got)
	}
}

func TestPromotionFailureIsWrapped(t *testing.T) {
	dir := t.TempDir()
	d := &Driver{ContentDir: dir, Range: slot.Range{First: 4, End: 5}, Settings: defaultSettings}

	err := d.Executor().Execute(context.Background(), d.Plan()[1])
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing staged demo error, got %v", err)
	}
}
