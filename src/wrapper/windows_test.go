// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper_test

import (
	"archive/zip"
	"bytes"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/exec-wrapper/src/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakeLauncher = []byte("MZ\x90\x00\x03\x00fake-launcher-stub\x00\xff")

func windowsOpts(interpreter string) []wrapper.Option {
	return []wrapper.Option{
		wrapper.WithPlatform(wrapper.Windows),
		wrapper.WithInterpreter(interpreter),
		wrapper.WithLauncher(fakeLauncher),
	}
}

// openPayload splits a Windows artifact into its header line and the archive
// that follows it.
func openPayload(t *testing.T, artifact []byte) (string, *zip.Reader) {
	t.Helper()

	require.True(t, bytes.HasPrefix(artifact, fakeLauncher), "artifact must start with the launcher stub")
	rest := artifact[len(fakeLauncher):]

	nl := bytes.IndexByte(rest, '\n')
	require.GreaterOrEqual(t, nl, 0, "missing header line")
	header := string(rest[:nl+1])
	archive := rest[nl+1:]

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	return header, zr
}

func readEntry(t *testing.T, f *zip.File) string {
	t.Helper()

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(body)
}

func TestBuildWindows(t *testing.T) {
	interpreter := `C:\Python313\python.exe`
	args := []string{`C:\tools\lint.exe`, "--strict"}

	artifact, err := wrapper.Build(args, windowsOpts(interpreter)...)
	require.NoError(t, err)

	header, zr := openPayload(t, artifact)
	assert.Equal(t, "#!\"C:\\Python313\\python.exe\"\n", header)

	require.Len(t, zr.File, 1)
	entry := zr.File[0]
	assert.Equal(t, wrapper.MainEntry, entry.Name)
	assert.Equal(t, zip.Store, entry.Method)

	want := "import sys\n" +
		"import subprocess\n" +
		`sys.exit(subprocess.run(["C:\\tools\\lint.exe", "--strict"] + sys.argv[1:]).returncode)` + "\n"
	assert.Equal(t, want, readEntry(t, entry))
}

func TestBuildWindowsLiterals(t *testing.T) {
	args := []string{"prog", "", `say "hi"`, "it's", "tab\there", "line\nbreak", "héllo"}

	artifact, err := wrapper.Build(args, windowsOpts("python")...)
	require.NoError(t, err)

	_, zr := openPayload(t, artifact)
	require.Len(t, zr.File, 1)

	script := readEntry(t, zr.File[0])
	assert.Contains(t, script, `["prog", "", "say \"hi\"", "it's", "tab\there", "line\nbreak", "héllo"]`)
	assert.Contains(t, script, " + sys.argv[1:]")
}

func TestBuildWindowsDeterministic(t *testing.T) {
	args := []string{"prog", "--flag"}

	first, err := wrapper.Build(args, windowsOpts("python")...)
	require.NoError(t, err)
	second, err := wrapper.Build(args, windowsOpts("python")...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildWindowsInvalidInterpreter(t *testing.T) {
	// The interpreter is checked before the launcher is read, so an
	// unreadable launcher must not mask the error.
	opts := []wrapper.Option{
		wrapper.WithPlatform(wrapper.Windows),
		wrapper.WithInterpreter(`C:\Program Files\"py"\python.exe`),
		wrapper.WithLauncherFile(filepath.Join(t.TempDir(), "missing.exe")),
	}

	artifact, err := wrapper.Build([]string{"prog"}, opts...)
	assert.ErrorIs(t, err, wrapper.ErrInvalidInterpreterPath)
	assert.Nil(t, artifact)

	dest := filepath.Join(t.TempDir(), "prog.exe")
	err = wrapper.Write(dest, []string{"prog"}, opts...)
	assert.ErrorIs(t, err, wrapper.ErrInvalidInterpreterPath)
	assert.NoFileExists(t, dest)
}

func TestBuildWindowsInvalidUTF8(t *testing.T) {
	opts := []wrapper.Option{
		wrapper.WithPlatform(wrapper.Windows),
		wrapper.WithInterpreter("python"),
		wrapper.WithLauncherFile(filepath.Join(t.TempDir(), "missing.exe")),
	}

	artifact, err := wrapper.Build([]string{"prog", "caf\xe9"}, opts...)
	assert.ErrorIs(t, err, wrapper.ErrInvalidArgumentEncoding)
	assert.Contains(t, err.Error(), "argument 1")
	assert.Nil(t, artifact)

	dest := filepath.Join(t.TempDir(), "prog.exe")
	err = wrapper.Write(dest, []string{"prog", "\xff"}, opts...)
	assert.ErrorIs(t, err, wrapper.ErrInvalidArgumentEncoding)
	assert.NoFileExists(t, dest)

	// POSIX scripts carry bytes verbatim.
	script, err := wrapper.Build([]string{"caf\xe9"}, wrapper.WithPlatform(wrapper.POSIX))
	require.NoError(t, err)
	assert.Contains(t, string(script), "caf\xe9")
}

func TestBuildWindowsLauncherFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.exe")
	require.NoError(t, writeFile(path, fakeLauncher))

	artifact, err := wrapper.Build([]string{"prog"},
		wrapper.WithPlatform(wrapper.Windows),
		wrapper.WithInterpreter("python"),
		wrapper.WithLauncherFile(path),
	)
	require.NoError(t, err)

	header, _ := openPayload(t, artifact)
	assert.Equal(t, "#!\"python\"\n", header)
}

func TestBuildWindowsMissingLauncherFile(t *testing.T) {
	_, err := wrapper.Build([]string{"prog"},
		wrapper.WithPlatform(wrapper.Windows),
		wrapper.WithInterpreter("python"),
		wrapper.WithLauncherFile(filepath.Join(t.TempDir(), "missing.exe")),
	)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
