// Package pathfmt normalizes slash-delimited path strings without touching
// the filesystem.
//
// Normalization is a fixed pipeline of textual transforms, each controlled
// by a Config toggle: terminal escape-sequence stripping, backslash
// unification, duplicate-slash collapsing, disallowed-character removal
// (the characters Windows forbids in filenames), and string-level
// parent-directory resolution. A trailing slash present on the input is
// preserved on the output.
//
//	s, err := pathfmt.Normalize(`C:\Users\\test`)
//	// s == "C:/Users/test"
//
// Parent-directory resolution operates purely on the string: ".." pops the
// most recently seen component and never escapes above the start of the
// string, and "." components are dropped. Paths are never checked for
// existence.
//
// The only failure mode is ErrInvalidText: with escape stripping enabled,
// the bytes left after removing escape sequences must be valid UTF-8. Every
// other transform is total.
package pathfmt
