// Package slot models the numbered slots that join map and demo files in the
// game's content directory.
//
// A slot renders as a zero-padded three digit string ("007"); every file the
// maintenance commands touch is named from that rendering. Range describes the
// half-open span of slots a batch walks.
package slot
