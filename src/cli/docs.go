// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for exec-wrapper.
// It implements a Cobra-based CLI with four commands: build prints or saves
// the launcher bytes, write installs a launcher and marks it executable,
// suffix reports the file suffix launchers need, and inspect describes the
// layout of a launcher as markdown tables or JSON.
//
// Defaults come from the configuration file named by --config or by the
// EXECWRAP_CONFIG_FILE environment variable; flags override them.
package cli
