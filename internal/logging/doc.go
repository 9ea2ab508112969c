// Package logging assembles the slog loggers used by the brytekit commands.
//
// It owns the console and JSON handlers and the level/output plumbing. Log
// lines go to stderr (and optionally a log file) so stdout stays reserved for
// the planned command listing. NewNop serves tests and wiring code that has
// no logger.
package logging
