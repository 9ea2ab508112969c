// Package plan describes filesystem and process operations before they run.
//
// Both maintenance commands build an ordered []Operation first and hand it to
// a Runner. In ModePlan the runner only reports each operation's shell form;
// in ModeExecute it reports and then performs it through an Executor. Keeping
// the two apart lets tests assert on plans without touching a real content
// directory or spawning the game.
package plan
