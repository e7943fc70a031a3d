// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package wrapper generates exec wrappers: tiny launcher files that run another
// program with a fixed list of leading arguments followed by whatever arguments
// the wrapper itself receives.
//
// Two artifact formats exist, selected by [Platform]:
//
//   - [POSIX]: a bash script, "#!/usr/bin/env bash" followed by
//     `exec <shell-escaped args> "$@"`.
//   - [Windows]: a native launcher stub, a `#!"<interpreter>"` line and a stored
//     zip archive whose only entry, __main__.py, re-runs the fixed arguments
//     plus its own arguments as a subprocess and exits with its exit code.
//
// Build returns the artifact bytes, Write puts them on disk and marks the file
// executable on POSIX hosts, and Inspect describes the artifact layout.
//
// Example usage:
//
//	if err := wrapper.Write("bin/cat-n", []string{"/bin/cat", "-n"}); err != nil {
//		return err
//	}
//
//	exe, err := wrapper.Build(
//		[]string{`C:\tools\lint.exe`, "--strict"},
//		wrapper.WithPlatform(wrapper.Windows),
//		wrapper.WithInterpreter(`C:\Python313\python.exe`),
//	)
package wrapper
