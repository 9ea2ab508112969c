package demos

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"brytekit/internal/fileutil"
	"brytekit/internal/game"
	"brytekit/internal/logging"
	"brytekit/internal/plan"
	"brytekit/internal/slot"
)

// ErrNoRecording means the game exited cleanly but left no staged demo.
var ErrNoRecording = errors.New("game produced no recording")

// Player runs one playback-and-record session and reports whether it
// succeeded.
type Player interface {
	PlayAndRecord(ctx context.Context, s game.Session) error
}

// Driver plans and executes demo regeneration for a slot range.
type Driver struct {
	ContentDir string
	Range      slot.Range
	Settings   game.Settings
	Player     Player
	Logger     *slog.Logger

	// Rename promotes the staged demo; defaults to fileutil.Replace.
	Rename func(src, dst string) error
	// Stat checks the staged demo before promotion; defaults to os.Stat.
	Stat func(path string) (fs.FileInfo, error)
	// Remove clears a staged demo left by an earlier run; defaults to os.Remove.
	Remove func(path string) error
}

// Session returns the run planned for s.
func (d *Driver) Session(s slot.Slot) game.Session {
	return game.NewSession(d.ContentDir, s, d.Settings)
}

// Plan returns invoke + promote for every slot, in ascending order.
func (d *Driver) Plan() []plan.Operation {
	ops := make([]plan.Operation, 0, 2*d.Range.Len())
	for _, s := range d.Range.Slots() {
		session := d.Session(s)
		ops = append(ops,
			plan.Invoke(s, d.Settings.Binary, session.Args()),
			plan.Rename(s, session.RecordPath, session.PlaybackPath),
		)
	}
	return ops
}

// Executor performs planned operations against the game and filesystem.
func (d *Driver) Executor() plan.Executor {
	return plan.Dispatch{
		Invoke: d.invoke,
		Rename: d.promote,
	}
}

func (d *Driver) invoke(ctx context.Context, op plan.Operation) error {
	if d.Player == nil {
		return errors.New("no game player configured")
	}
	session := d.Session(op.Slot)
	logger := d.logger().With(logging.String(logging.FieldSlot, op.Slot.String()))
	logger.Info("replaying demo", logging.String("play", session.PlaybackPath), logging.String("record", session.RecordPath))

	// A leftover staged demo must not pass for this run's recording.
	if err := d.remove(session.RecordPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear stale recording %s: %w", session.RecordPath, err)
	}
	if err := d.Player.PlayAndRecord(ctx, session); err != nil {
		return err
	}
	if _, err := d.stat(session.RecordPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoRecording, session.RecordPath)
		}
		return fmt.Errorf("check recording %s: %w", session.RecordPath, err)
	}
	return nil
}

func (d *Driver) promote(_ context.Context, src, dst string) error {
	rename := d.Rename
	if rename == nil {
		rename = fileutil.Replace
	}
	if err := rename(src, dst); err != nil {
		return fmt.Errorf("promote %s: %w", filepath.Base(src), err)
	}
	d.logger().Debug("demo promoted", logging.String("demo", dst))
	return nil
}

func (d *Driver) stat(path string) (fs.FileInfo, error) {
	if d.Stat != nil {
		return d.Stat(path)
	}
	return os.Stat(path)
}

func (d *Driver) remove(path string) error {
	if d.Remove != nil {
		return d.Remove(path)
	}
	return os.Remove(path)
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return logging.NewNop()
	}
	return d.Logger
}
