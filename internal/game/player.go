package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"brytekit/internal/logging"
)

// ErrPlaybackFailed marks a run whose process could not start, exited
// non-zero, or exceeded its timeout.
var ErrPlaybackFailed = errors.New("playback failed")

// ExecPlayer runs the game binary as a child process and waits for it.
type ExecPlayer struct {
	// Dir is the working directory for the game; empty inherits ours.
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// PlayAndRecord runs one session to completion.
func (p ExecPlayer) PlayAndRecord(ctx context.Context, s Session) error {
	logger := p.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	if s.Settings.Binary == "" {
		return fmt.Errorf("%w: game binary not configured", ErrPlaybackFailed)
	}

	runCtx := ctx
	if s.Settings.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.Settings.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, s.Settings.Binary, s.Args()...)
	cmd.Dir = p.Dir
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	started := time.Now()
	err := cmd.Run()
	elapsed := time.Since(started)

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: map %s timed out after %s", ErrPlaybackFailed, s.Map, s.Settings.Timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: map %s exited with status %d: %w", ErrPlaybackFailed, s.Map, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("%w: start %s: %w", ErrPlaybackFailed, s.Settings.Binary, err)
	}

	logger.Debug("game run finished",
		logging.String(logging.FieldSlot, s.Map.String()),
		logging.Duration("elapsed", elapsed),
	)
	return nil
}
