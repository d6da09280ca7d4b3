// Package vfs implements the in-memory file system tree that backs the
// ninjafiles simulator.
//
// The tree is built from two node variants, File and Directory, joined by
// parent back-references and name-indexed child maps. A FileSystem owns the
// root directory and a current-directory cursor, and exposes the mutating
// and read-only operations the shell dispatches to: mkdir (with optional
// parent creation), touch, write, rm (plain and recursive), cd, pwd, ls,
// tree, du, and content search.
//
// Path resolution walks child maps from either the root (absolute paths) or
// the current directory (relative paths), handling "." and ".." components.
// Resolution is read-only; a path that cannot be resolved never mutates the
// tree.
//
// All operations report failures as sentinel errors (ErrNotFound,
// ErrIsADirectory, ...) wrapped in a *PathError carrying the offending name,
// matched by callers with errors.Is and errors.As.
//
// The package is not safe for concurrent use: a FileSystem is owned by a
// single shell session and every operation runs to completion before the
// next begins.
package vfs
