// Package overrides promotes override map files into their canonical slots.
//
// A content directory may hold, next to the canonical 007.bm, a file such as
// 007_override.bm. Resolving happens in two phases. Discover works on a
// directory snapshot and picks at most one override name per slot. Confirm
// re-checks the live filesystem and plans a rename of the override over the
// canonical file only when both still exist. Slots without a usable pair are
// skipped silently.
package overrides
