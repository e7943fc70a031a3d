// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

import "errors"

var (
	// ErrUnsupportedPlatform indicates a target that is neither POSIX nor Windows.
	ErrUnsupportedPlatform = errors.New("wrapper: unsupported platform")

	// ErrInvalidInterpreterPath indicates an interpreter path containing a double
	// quote, which cannot be represented on the Windows shebang line.
	ErrInvalidInterpreterPath = errors.New("wrapper: interpreter path must not contain a double quote")

	// ErrInvalidArgumentEncoding indicates a Windows wrapper argument that is not
	// valid UTF-8. Python string literals hold code points, not raw bytes, so
	// such an argument could not be forwarded unchanged.
	ErrInvalidArgumentEncoding = errors.New("wrapper: argument is not valid UTF-8")

	// ErrNoArguments indicates an empty argument list; there is nothing to exec.
	ErrNoArguments = errors.New("wrapper: no arguments to exec")
)
