// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//   - AddExecutableBits: Adds owner/group/other execute bits to a file, keeping every
//     other permission bit as it was
//
// # Usage Examples
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName(),
//	}
//
//	if err := os.WriteFile(dest, script, 0o666); err != nil {
//	    return err
//	}
//	if err := posix.AddExecutableBits(dest); err != nil {
//	    return err
//	}
//
// Cross-Platform Behavior:
//
//   - Unix-like systems: AddExecutableBits performs chmod(mode | 0111)
//   - Windows and other non-Unix systems: AddExecutableBits is a no-op, executability
//     there comes from the file name, not from permission bits
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
