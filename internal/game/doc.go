// Package game wraps the external game executable as a playback-and-record
// collaborator.
//
// The game replays a recorded demo from -play while recording the same run to
// -record, then exits. Session captures one such run; ExecPlayer performs it
// with os/exec and reports failure when the process cannot start or exits
// non-zero.
package game
