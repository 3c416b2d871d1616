// Package ioutils provides file system utilities.
//
// # File Operations
//
//	// Write data atomically, creating parent directories
//	err := ioutils.WriteFile(ctx, "/path/to/file.txt", []byte("content"))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Scale: Part 1/2") // Returns "Scale_ Part 1_2"
package ioutils
