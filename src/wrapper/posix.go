// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

import (
	"github.com/H0llyW00dzZ/exec-wrapper/src/internal/helper/gc"
	"github.com/alessio/shellescape"
)

const (
	// posixShebang is the first line of every POSIX wrapper.
	posixShebang = "#!/usr/bin/env bash\n"
	// forwardArgs expands to the arguments the wrapper was invoked with.
	forwardArgs = `"$@"`
)

// quotePOSIX renders arg as a single POSIX shell word. Words made only of
// safe characters stay bare, everything else is single-quoted.
func quotePOSIX(arg string) string { return shellescape.Quote(arg) }

// posixSegments returns the shebang line and the exec line of a POSIX wrapper.
func posixSegments(args []string) []segment {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString("exec ")
	for _, arg := range args {
		buf.WriteString(quotePOSIX(arg))
		buf.WriteByte(' ')
	}
	buf.WriteString(forwardArgs)
	buf.WriteByte('\n')

	return []segment{
		{name: SegmentShebang, data: []byte(posixShebang)},
		{name: SegmentCommand, data: gc.Clone(buf)},
	}
}
