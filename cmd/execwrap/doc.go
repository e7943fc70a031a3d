// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// execwrap generates launchers: tiny executables that run another program
// with a fixed list of leading arguments, followed by whatever arguments the
// launcher itself receives.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/exec-wrapper/cmd/execwrap@latest
//
// # Usage
//
//	execwrap build   [FLAGS] -- PROGRAM [ARGS...]
//	execwrap write   [FLAGS] DEST -- PROGRAM [ARGS...]
//	execwrap inspect [FLAGS] -- PROGRAM [ARGS...]
//	execwrap suffix  [-p PLATFORM]
//
// # Flags
//
//	-c, --config       Configuration file (default: $EXECWRAP_CONFIG_FILE)
//	-p, --platform     Target platform: posix, windows or a GOOS name (default: host)
//	-i, --interpreter  Interpreter recorded in Windows launchers
//	-l, --launcher     Native launcher stub replacing the embedded one
//	-o, --output       build: destination file (default: stdout)
//	    --no-exec      write: leave the permission bits unchanged
//	    --json         inspect: print the report as JSON
//
// # Examples
//
// Install a launcher that numbers the lines of its input:
//
//	execwrap write ~/bin/ncat -- /bin/cat -n
//
// Build a Windows launcher for a Python tool:
//
//	execwrap write -p windows -i 'C:\Python313\python.exe' lint.exe -- 'C:\tools\lint.py' --strict
//
// Show how each argument is quoted:
//
//	execwrap inspect -- prog 'arg with spaces'
package main
