// Package preflight checks that a content directory and the game binary are
// ready before a live batch mutates anything.
//
// The CLI "brytekit check" command prints every result. Live runs of
// "overrides" and "demos" call the relevant checks first and refuse to start
// when one fails, since the batch is not transactional and a late failure
// leaves earlier slots already changed.
package preflight
