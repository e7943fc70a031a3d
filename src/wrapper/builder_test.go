// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/exec-wrapper/src/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func TestBuildPOSIX(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect string
	}{
		{
			name:   "cat with flag",
			args:   []string{"/bin/cat", "-n"},
			expect: "#!/usr/bin/env bash\nexec /bin/cat -n \"$@\"\n",
		},
		{
			name:   "argument with spaces",
			args:   []string{"prog", "arg with spaces"},
			expect: "#!/usr/bin/env bash\nexec prog 'arg with spaces' \"$@\"\n",
		},
		{
			name:   "program only",
			args:   []string{"/usr/bin/true"},
			expect: "#!/usr/bin/env bash\nexec /usr/bin/true \"$@\"\n",
		},
		{
			name:   "empty argument",
			args:   []string{"prog", ""},
			expect: "#!/usr/bin/env bash\nexec prog '' \"$@\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact, err := wrapper.Build(tt.args, wrapper.WithPlatform(wrapper.POSIX))
			require.NoError(t, err)
			assert.Equal(t, tt.expect, string(artifact))
		})
	}
}

func TestBuildPOSIXIgnoresInterpreter(t *testing.T) {
	plain, err := wrapper.Build([]string{"prog"}, wrapper.WithPlatform(wrapper.POSIX))
	require.NoError(t, err)

	// A quote in the interpreter only matters for the Windows header.
	withInterp, err := wrapper.Build([]string{"prog"},
		wrapper.WithPlatform(wrapper.POSIX),
		wrapper.WithInterpreter(`bad"path`),
	)
	require.NoError(t, err)

	assert.Equal(t, plain, withInterp)
}

func TestBuildFreshSlice(t *testing.T) {
	first, err := wrapper.Build([]string{"prog"}, wrapper.WithPlatform(wrapper.POSIX))
	require.NoError(t, err)
	first[0] = 'X'

	second, err := wrapper.Build([]string{"prog"}, wrapper.WithPlatform(wrapper.POSIX))
	require.NoError(t, err)
	assert.Equal(t, byte('#'), second[0])
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		opts   []wrapper.Option
		expect error
	}{
		{
			name:   "unsupported platform",
			args:   []string{"prog"},
			opts:   []wrapper.Option{wrapper.WithPlatform(wrapper.Unsupported)},
			expect: wrapper.ErrUnsupportedPlatform,
		},
		{
			name:   "unsupported wins over empty args",
			args:   nil,
			opts:   []wrapper.Option{wrapper.WithPlatform(wrapper.ParsePlatform("plan9"))},
			expect: wrapper.ErrUnsupportedPlatform,
		},
		{
			name:   "no arguments posix",
			args:   []string{},
			opts:   []wrapper.Option{wrapper.WithPlatform(wrapper.POSIX)},
			expect: wrapper.ErrNoArguments,
		},
		{
			name:   "no arguments windows",
			args:   nil,
			opts:   windowsOpts("python"),
			expect: wrapper.ErrNoArguments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact, err := wrapper.Build(tt.args, tt.opts...)
			assert.ErrorIs(t, err, tt.expect)
			assert.Nil(t, artifact)
		})
	}
}

func TestWriteNothingOnError(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "wrapper")

	err := wrapper.Write(dest, []string{"prog"}, wrapper.WithPlatform(wrapper.Unsupported))
	assert.ErrorIs(t, err, wrapper.ErrUnsupportedPlatform)
	assert.NoFileExists(t, dest)

	err = wrapper.Write(dest, nil, wrapper.WithPlatform(wrapper.POSIX))
	assert.ErrorIs(t, err, wrapper.ErrNoArguments)
	assert.NoFileExists(t, dest)
}

func TestWriteMissingDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "no", "such", "dir", "wrapper")

	err := wrapper.Write(dest, []string{"prog"}, wrapper.WithPlatform(wrapper.POSIX))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestWriteWindowsArtifact(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "prog"+wrapper.Windows.ExecutableSuffix())

	args := []string{"prog", "--flag"}
	require.NoError(t, wrapper.Write(dest, args, windowsOpts("python")...))

	want, err := wrapper.Build(args, windowsOpts("python")...)
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
