// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the settings shared by the execwrap command and the
// MCP server: the default interpreter recorded in Windows launchers, the
// target platform, an override for the native launcher stub, and whether
// written wrappers get the executable bits.
//
// Files are JSON or YAML, chosen by extension (.json, .yaml, .yml). Values
// missing from the file keep their defaults. When no path is given the
// EXECWRAP_CONFIG_FILE environment variable is consulted.
//
// Example configuration (YAML):
//
//	defaults:
//	  interpreter: C:\Python313\python.exe
//	  platform: windows
//	  executable: true
//	launcher:
//	  path: ./dist/t64.exe
package config
