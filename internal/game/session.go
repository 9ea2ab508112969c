package game

import (
	"path/filepath"
	"strconv"
	"time"

	"brytekit/internal/slot"
)

// Settings are the display and speed options passed through to every run.
type Settings struct {
	Binary       string
	WindowWidth  int
	WindowHeight int
	Speed        float64
	Timeout      time.Duration
}

// Session describes one playback-and-record run for a map.
type Session struct {
	Map          slot.Slot
	PlaybackPath string
	RecordPath   string
	Settings     Settings
}

// NewSession builds the session that replays dir/NNN.bd into dir/NNN_new.bd.
func NewSession(contentDir string, s slot.Slot, settings Settings) Session {
	return Session{
		Map:          s,
		PlaybackPath: filepath.Join(contentDir, slot.DemoName(s)),
		RecordPath:   filepath.Join(contentDir, slot.StagedDemoName(s)),
		Settings:     settings,
	}
}

// Args returns the game's command-line arguments in the order it documents.
func (s Session) Args() []string {
	return []string{
		"-map", strconv.Itoa(int(s.Map)),
		"-play", s.PlaybackPath,
		"-record", s.RecordPath,
		"-winw", strconv.Itoa(s.Settings.WindowWidth),
		"-winh", strconv.Itoa(s.Settings.WindowHeight),
		"-speed", strconv.FormatFloat(s.Settings.Speed, 'f', -1, 64),
	}
}
