// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package stub

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

//go:embed assets
var embeddedFS embed.FS

// AssetName is the path of the launcher inside the embedded filesystem.
const AssetName = "assets/launcher.exe"

// EmbedFS defines the interface for reading the embedded launcher assets.
// It abstracts the [embed.FS] type so tests can substitute their own files.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

// embedFS wraps [embed.FS] to implement EmbedFS interface.
type embedFS struct{ fs embed.FS }

// ReadFile reads the named file and returns the contents.
func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

// Open opens the named file for reading.
func (e *embedFS) Open(name string) (fs.File, error) { return e.fs.Open(name) }

// MagicEmbed is the embedded filesystem the default launcher is read from.
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}

// cache holds every launcher read so far. Entries are immutable once stored.
type cache struct {
	once     sync.Once
	embedded []byte
	embedErr error

	mu    sync.Mutex
	files map[string][]byte
}

var loaded = &cache{files: make(map[string][]byte)}

// Load returns the embedded launcher, reading it on first use.
//
// A build that ships without the launcher asset yields an error satisfying
// errors.Is(err, fs.ErrNotExist). The error is cached like the bytes are.
//
// The returned slice is shared; callers must not modify it.
func Load() ([]byte, error) {
	loaded.once.Do(func() {
		loaded.embedded, loaded.embedErr = MagicEmbed.ReadFile(AssetName)
	})
	return loaded.embedded, loaded.embedErr
}

// LoadFile returns the launcher stored at path, reading it on first use.
// Paths are cached by their absolute form. Failed reads are not cached, so a
// launcher dropped in place later is picked up by the next call.
//
// The returned slice is shared; callers must not modify it.
func LoadFile(path string) ([]byte, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	if blob, ok := loaded.files[key]; ok {
		return blob, nil
	}

	blob, err := os.ReadFile(key)
	if err != nil {
		return nil, err
	}
	loaded.files[key] = blob
	return blob, nil
}
