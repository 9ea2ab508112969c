// Package main hosts the brytekit CLI entrypoint and command graph.
//
// The Cobra command tree exposes the two content maintenance batches
// (override map promotion and demo regeneration) plus preflight checks and
// configuration scaffolding. Every batch is dry-run unless --execute is given
// or the config sets [execution] mode = "execute": planned commands are
// printed and nothing is changed.
//
// Keep this package lean: the planning and execution logic lives in the
// internal packages; commands here only resolve configuration, build the
// collaborators, and render output.
package main
