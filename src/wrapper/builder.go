// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

import (
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/exec-wrapper/src/internal/helper/posix"
)

// Segment names, in the order they appear in an artifact.
const (
	SegmentLauncher = "launcher"
	SegmentShebang  = "shebang"
	SegmentCommand  = "command"
	SegmentArchive  = "archive"
)

// segment is one contiguous part of an artifact.
type segment struct {
	name string
	data []byte
}

// assemble validates the request and returns the artifact in pieces.
// Checks run in a fixed order: platform, arguments, then format specifics.
func assemble(args []string, o *options) ([]segment, error) {
	if o.platform != POSIX && o.platform != Windows {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, o.platform)
	}
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	if o.platform == POSIX {
		return posixSegments(args), nil
	}
	return windowsSegments(args, o)
}

// Build returns the wrapper artifact that runs args followed by the wrapper's
// own arguments. The artifact targets the running host unless [WithPlatform]
// says otherwise.
//
// Build is deterministic: the same arguments and options always produce the
// same bytes. The returned slice is owned by the caller.
//
// Errors:
//   - [ErrUnsupportedPlatform] for targets other than POSIX and Windows
//   - [ErrNoArguments] for an empty args
//   - [ErrInvalidInterpreterPath] for a Windows interpreter containing '"'
//   - launcher stub read errors, wrapped, for Windows targets
func Build(args []string, opts ...Option) ([]byte, error) {
	return build(args, newOptions(opts))
}

func build(args []string, o *options) ([]byte, error) {
	segments, err := assemble(args, o)
	if err != nil {
		return nil, err
	}

	size := 0
	for _, s := range segments {
		size += len(s.data)
	}
	out := make([]byte, 0, size)
	for _, s := range segments {
		out = append(out, s.data...)
	}
	return out, nil
}

// Write builds the artifact and writes it verbatim to dest, replacing any
// existing file. Nothing is written when Build fails.
//
// On POSIX hosts the owner, group and other execute bits are then added to
// the file's existing mode, unless [WithExecBit](false) is given. On Windows
// hosts the file name decides executability and permissions are left alone.
//
// File system errors are returned unchanged.
func Write(dest string, args []string, opts ...Option) error {
	o := newOptions(opts)

	data, err := build(args, o)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dest, data, 0o666); err != nil {
		return err
	}

	if o.noExec || HostPlatform() != POSIX {
		return nil
	}
	return posix.AddExecutableBits(dest)
}
