package overrides

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"brytekit/internal/fileutil"
	"brytekit/internal/logging"
	"brytekit/internal/plan"
	"brytekit/internal/slot"
)

// Resolver plans override promotions for one content directory.
type Resolver struct {
	// Dir prefixes the paths in planned operations.
	Dir   string
	Range slot.Range
	// FS is the view of Dir used for listing and existence checks; nil
	// means os.DirFS(Dir).
	FS        fs.FS
	Matcher   Matcher
	Ambiguity Ambiguity
	Logger    *slog.Logger
}

// Resolve lists the directory once, discovers candidates, and confirms
// them against the live filesystem.
func (r *Resolver) Resolve(ctx context.Context) ([]plan.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fsys := r.fs()

	names, err := Snapshot(fsys)
	if err != nil {
		return nil, &DirectoryAccessError{Dir: r.Dir, Err: err}
	}

	candidates, err := Discover(names, r.Range, r.Matcher, r.Ambiguity)
	if err != nil {
		return nil, err
	}

	logger := r.logger()
	for _, c := range candidates {
		if len(c.Shadowed) > 0 {
			logger.Warn("several override candidates; using the last",
				logging.String(logging.FieldSlot, c.Slot.String()),
				logging.String("override", c.Override),
				logging.Strings("shadowed", c.Shadowed),
				logging.Alert("ambiguous_override"),
			)
		}
	}

	ops := Confirm(fsys, r.Dir, candidates)
	logger.Debug("overrides resolved",
		logging.Int("entries", len(names)),
		logging.Int("candidates", len(candidates)),
		logging.Int("planned", len(ops)),
	)
	return ops, nil
}

// Executor applies planned override renames.
func (r *Resolver) Executor() plan.Executor {
	return plan.Dispatch{
		Rename: func(_ context.Context, src, dst string) error {
			return fileutil.Replace(src, dst)
		},
	}
}

// Snapshot returns every entry name in fsys's root, in lexical order.
func Snapshot(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// Confirm keeps candidates whose canonical and override files both exist in
// fsys and plans renaming dir/override over dir/canonical.
func Confirm(fsys fs.FS, dir string, candidates []Candidate) []plan.Operation {
	var ops []plan.Operation
	for _, c := range candidates {
		if !exists(fsys, c.Canonical) || !exists(fsys, c.Override) {
			continue
		}
		ops = append(ops, plan.Rename(c.Slot, filepath.Join(dir, c.Override), filepath.Join(dir, c.Canonical)))
	}
	return ops
}

func exists(fsys fs.FS, name string) bool {
	_, err := fs.Stat(fsys, name)
	return err == nil
}

func (r *Resolver) fs() fs.FS {
	if r.FS != nil {
		return r.FS
	}
	return os.DirFS(r.Dir)
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.NewNop()
	}
	return r.Logger
}
