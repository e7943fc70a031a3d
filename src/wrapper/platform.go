// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

import (
	"runtime"
	"strings"
)

// Platform is the family of operating systems an artifact is built for.
type Platform int

const (
	// Unsupported covers every target without a wrapper format.
	Unsupported Platform = iota
	// POSIX targets get a bash script.
	POSIX
	// Windows targets get a native launcher with an embedded zip payload.
	Windows
)

// WindowsExecutableSuffix is the file name suffix Windows requires for launchers.
const WindowsExecutableSuffix = ".exe"

// unixGOOS lists the GOOS values satisfying the "unix" build constraint.
var unixGOOS = map[string]bool{
	"aix":       true,
	"android":   true,
	"darwin":    true,
	"dragonfly": true,
	"freebsd":   true,
	"hurd":      true,
	"illumos":   true,
	"ios":       true,
	"linux":     true,
	"netbsd":    true,
	"openbsd":   true,
	"solaris":   true,
}

// ParsePlatform maps a GOOS value or a family name to a Platform.
// Family names are "posix", "unix", "windows" and "nt"; matching is
// case-insensitive. Anything else is Unsupported.
func ParsePlatform(name string) Platform {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "posix" || name == "unix" || unixGOOS[name]:
		return POSIX
	case name == "windows" || name == "nt":
		return Windows
	default:
		return Unsupported
	}
}

// HostPlatform returns the platform family of the running process.
func HostPlatform() Platform { return ParsePlatform(runtime.GOOS) }

// ExecutableSuffix returns the conventional suffix for executables generated
// on the running host: "" on POSIX and ".exe" on Windows.
func ExecutableSuffix() string { return HostPlatform().ExecutableSuffix() }

// ExecutableSuffix returns the conventional executable suffix for p.
func (p Platform) ExecutableSuffix() string {
	if p == Windows {
		return WindowsExecutableSuffix
	}
	return ""
}

// String returns the lower-case family name.
func (p Platform) String() string {
	switch p {
	case POSIX:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unsupported"
	}
}
