// Package config loads, normalizes, and validates brytekit configuration.
//
// Configuration lives in TOML (see sample_config.toml). Every value has a
// default matching the game's shipped layout, so the commands run without a
// file at all: content/ under the working directory, slots [1, 250), and the
// ./game binary replayed at 1500x1500 and speed 5.
package config
