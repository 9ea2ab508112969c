package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"brytekit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory with an
// empty content/ directory and a log directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ContentDir = filepath.Join(base, "content")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	if err := os.MkdirAll(cfgVal.Paths.ContentDir, 0o755); err != nil {
		t.Fatalf("mkdir content dir: %v", err)
	}

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithSlots narrows the slot range to [first, end).
func WithSlots(first, end int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Slots.First = first
		b.cfg.Slots.End = end
	}
}

// RecordingGameScript is a stub game that writes "recorded <map>" to the
// path following -record and exits 0.
const RecordingGameScript = `#!/bin/sh
map=""
while [ $# -gt 0 ]; do
  case "$1" in
    -map) map="$2" ;;
    -record) printf 'recorded %s' "$map" > "$2" ;;
  esac
  shift
done
exit 0
`

// FailingGameScript is a stub game that exits 1 without recording.
const FailingGameScript = "#!/bin/sh\nexit 1\n"

// WithStubbedGame writes script as an executable and points game.binary at it.
func WithStubbedGame(script string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		target := filepath.Join(binDir, "game")
		if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
			b.t.Fatalf("write stub game: %v", err)
		}
		b.cfg.Game.Binary = target
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ContentDir)
}

// WriteConfigFile serializes cfg as TOML under the base directory and
// returns its path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
