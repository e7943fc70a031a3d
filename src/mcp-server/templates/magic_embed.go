// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.md
var embeddedFS embed.FS

// Template file names.
const (
	// Instructions is the text/template rendered into the server instructions.
	Instructions = "instructions.md"
	// WrapperFormats documents the byte layout of each launcher format.
	WrapperFormats = "wrapper-formats.md"
)

// EmbedFS defines the interface for accessing embedded template files.
// It abstracts the [embed.FS] type so the server can be built against
// another file set in tests.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)
	// ReadDir reads the named directory and returns a list of directory entries.
	ReadDir(name string) ([]fs.DirEntry, error)
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

// embedFS wraps [embed.FS] to implement EmbedFS interface.
type embedFS struct{ fs embed.FS }

// ReadFile reads the named file and returns the contents.
func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

// ReadDir reads the named directory and returns a list of directory entries.
func (e *embedFS) ReadDir(name string) ([]fs.DirEntry, error) { return e.fs.ReadDir(name) }

// Open opens the named file for reading.
func (e *embedFS) Open(name string) (fs.File, error) { return e.fs.Open(name) }

// MagicEmbed is the embedded filesystem used for accessing template files.
//
// Example usage:
//
//	content, err := templates.MagicEmbed.ReadFile(templates.WrapperFormats)
//	if err != nil {
//		return fmt.Errorf("failed to read wrapper formats: %w", err)
//	}
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}
