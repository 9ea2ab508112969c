package config

const (
	defaultContentDir     = "content"
	defaultSlotFirst      = 1
	defaultSlotEnd        = 250
	defaultGameBinary     = "./game"
	defaultWindowWidth    = 1500
	defaultWindowHeight   = 1500
	defaultPlaybackSpeed  = 5.0
	defaultExecutionMode  = ModePlan
	defaultAmbiguity      = AmbiguityLast
	defaultFailurePolicy  = FailureStop
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigRelative = "brytekit/config.toml"
	projectConfigName     = "brytekit.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ContentDir: defaultContentDir,
		},
		Slots: Slots{
			First: defaultSlotFirst,
			End:   defaultSlotEnd,
		},
		Game: Game{
			Binary:       defaultGameBinary,
			WindowWidth:  defaultWindowWidth,
			WindowHeight: defaultWindowHeight,
			Speed:        defaultPlaybackSpeed,
		},
		Overrides: Overrides{
			Ambiguity: defaultAmbiguity,
		},
		Demos: Demos{
			OnFailure: defaultFailurePolicy,
		},
		Execution: Execution{
			Mode: defaultExecutionMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
