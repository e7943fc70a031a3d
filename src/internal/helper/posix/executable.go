// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FallbackExecutableName is used when os.Args carries no program name.
const FallbackExecutableName = "execwrap"

// ExecBits are the owner, group and other execute permission bits.
const ExecBits fs.FileMode = 0o111

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix so usage
// strings read the same on every operating system:
//   - Linux/macOS: "execwrap" from "/usr/local/bin/execwrap"
//   - Windows: "execwrap" from "C:\bin\execwrap.exe"
//   - Fallback: FallbackExecutableName if os.Args[0] is unavailable
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackExecutableName
	}

	name := filepath.Base(os.Args[0])

	// A Windows path seen on a Unix host is not split by filepath.Base.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}

// withExecBits returns mode with the execute bits added. Type, setuid,
// setgid and sticky bits are carried through untouched.
func withExecBits(mode fs.FileMode) fs.FileMode {
	return mode | ExecBits
}
