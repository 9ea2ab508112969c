// Package demos regenerates recorded demos by replaying each one through the
// game while recording a fresh copy, then promoting the fresh copy over the
// original.
//
// Planning is unconditional: every slot in the range yields one invoke and
// one promotion, whether or not the demo files exist yet. Execution gates the
// promotion on the game reporting success and the staged recording being
// present, so a crashed run never replaces a good demo.
package demos
