// Package platform provides the filesystem primitives the editor relies on:
// writing a document without losing its permissions, renaming without
// clobbering an existing file, and Unix-style chmod that is a no-op on Windows.
package platform
